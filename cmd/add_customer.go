package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCustomerCmd struct {
	name  string
	phone string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "open a new customer account" }
func (*addCustomerCmd) Usage() string {
	return `add-customer -name <name> [-phone <phone>]

  Opens a new khata account with an empty entry list and a zero balance:
  - name: the customer name (required).
  - phone: a phone number, also usable to search for the customer.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required)")
	f.StringVar(&c.phone, "phone", "", "Customer phone number")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	customer, err := book.AddCustomer(c.name, c.phone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Opened account %s for %s\n", customer.ID, customer.Name)
	return subcommands.ExitSuccess
}
