package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/khata"
	"github.com/etnz/khata/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	customer string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "show a customer's full khata" }
func (*ledgerCmd) Usage() string {
	return `ledger -c <customer>

  Shows every entry of a customer's account: product lines with their paid
  ticks, entry totals, cash paid and due amounts. Entries past their due
  date with unticked lines are flagged overdue, with the reminder message.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required)")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customer == "" {
		fmt.Fprintln(os.Stderr, "Error: -c flag is required.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()

	customer, err := book.Resolve(c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgerMarkdown(customer, book.Settings(), khata.Today()))
	return subcommands.ExitSuccess
}
