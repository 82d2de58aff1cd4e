// Package cmd implements the CLI application to manage a digital khata.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/khata"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCustomerCmd{},
	&customersCmd{},
	&addEntryCmd{},
	&ledgerCmd{},
	&paidCmd{},
	&addNoteCmd{},
	&notesCmd{},
	&rmNoteCmd{},
	&settingsCmd{},
	&summaryCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var khataDir = flag.String("khata-dir", defaultKhataDir(), "Path to the khata data directory")

// defaultKhataDir resolves the data directory from the KHATA_DIR environment
// variable, honoring a .env file in the working directory.
func defaultKhataDir() string {
	godotenv.Load()
	if dir := os.Getenv("KHATA_DIR"); dir != "" {
		return dir
	}
	return ".khata"
}

// LoadBook reads the whole book from the khata directory. Missing or
// unreadable documents fall back to their defaults, so it always succeeds.
func LoadBook() *khata.Book {
	return khata.Load(*khataDir)
}

// SaveBook persists the whole book back into the khata directory.
func SaveBook(b *khata.Book) subcommands.ExitStatus {
	if err := khata.Save(*khataDir, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving khata to %q: %v\n", *khataDir, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
