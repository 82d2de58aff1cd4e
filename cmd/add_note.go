package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addNoteCmd struct {
	title   string
	content string
}

func (*addNoteCmd) Name() string     { return "add-note" }
func (*addNoteCmd) Synopsis() string { return "add a note to the notepad" }
func (*addNoteCmd) Usage() string {
	return `add-note -title <title> -content <content>

  Adds a freestanding note to the notepad, stamped with the current time.
  Both title and content are required.
`
}

func (c *addNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Note title (required)")
	f.StringVar(&c.content, "content", "", "Note content (required)")
}

func (c *addNoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	note, err := book.AddNote(c.title, c.content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Added note %s: %s\n", note.ID, note.Title)
	return subcommands.ExitSuccess
}
