package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type paidCmd struct {
	customer string
	entry    string
	index    int
	undo     bool
}

func (*paidCmd) Name() string     { return "paid" }
func (*paidCmd) Synopsis() string { return "tick a product line as paid" }
func (*paidCmd) Usage() string {
	return `paid -c <customer> -e <entry> -i <index> [-undo]

  Ticks one product line of an entry as paid, or unticks it with -undo.
  The tick is a checklist mark for the shopkeeper: it does not change the
  balance, which only cash paid settles.
  - c: the customer id or exact name.
  - e: the entry id (shown by the ledger command).
  - i: the product line index within the entry, starting at 0.
`
}

func (c *paidCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required)")
	f.StringVar(&c.entry, "e", "", "Entry id (required)")
	f.IntVar(&c.index, "i", 0, "Product line index within the entry")
	f.BoolVar(&c.undo, "undo", false, "Untick the line instead")
}

func (c *paidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customer == "" || c.entry == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -e flags are required.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()

	customer, err := book.Resolve(c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.UpdatePaidStatus(customer.ID, c.entry, c.index, !c.undo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	state := "paid"
	if c.undo {
		state = "unpaid"
	}
	fmt.Printf("Marked line %d of entry %s as %s\n", c.index, c.entry, state)
	return subcommands.ExitSuccess
}
