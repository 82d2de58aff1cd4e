package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmNoteCmd struct {
	id string
}

func (*rmNoteCmd) Name() string     { return "rm-note" }
func (*rmNoteCmd) Synopsis() string { return "delete a note from the notepad" }
func (*rmNoteCmd) Usage() string {
	return `rm-note -id <id>

  Deletes the note with the given id (shown by the notes command).
`
}

func (c *rmNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Note id (required)")
}

func (c *rmNoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()

	if err := book.DeleteNote(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Deleted note %s\n", c.id)
	return subcommands.ExitSuccess
}
