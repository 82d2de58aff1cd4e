package cmd

import (
	"context"
	"flag"

	"github.com/etnz/khata"
	"github.com/etnz/khata/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct {
	query string
}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list notepad notes" }
func (*notesCmd) Usage() string {
	return `notes [-q <query>]

  Lists all notes, most recent first. The optional query filters by title
  or content substring, case-insensitive.
`
}

func (c *notesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by title or content substring")
}

func (c *notesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	var notes []khata.Note
	for _, n := range book.Notes() {
		if n.Matches(c.query) {
			notes = append(notes, n)
		}
	}

	printMarkdown(renderer.NotesMarkdown(notes))
	return subcommands.ExitSuccess
}
