package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/khata"
)

// NotesMarkdown renders the notepad, most recent note first.
func NotesMarkdown(notes []khata.Note) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Notes\n\n")
	if len(notes) == 0 {
		fmt.Fprintln(&b, "No notes yet.")
		return b.String()
	}

	for _, n := range notes {
		fmt.Fprintf(&b, "## %s\n\n", n.Title)
		fmt.Fprintf(&b, "%s · `%s`\n\n", n.Date.Format("2006-01-02 15:04"), n.ID)
		fmt.Fprintf(&b, "%s\n\n", n.Content)
	}
	return b.String()
}
