package cmd

import (
	"context"
	"flag"

	"github.com/etnz/khata"
	"github.com/etnz/khata/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the shop dashboard" }
func (*summaryCmd) Usage() string {
	return `summary

  Shows the shop dashboard: total receivable across all accounts, who owes
  what, and the entries overdue as of today.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	report := renderer.NewSummary(book.Customers(), book.Notes(), book.Settings(), khata.Today())
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
