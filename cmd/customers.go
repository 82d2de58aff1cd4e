package cmd

import (
	"context"
	"flag"

	"github.com/etnz/khata"
	"github.com/etnz/khata/renderer"
	"github.com/google/subcommands"
)

type customersCmd struct {
	query string
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list customer accounts" }
func (*customersCmd) Usage() string {
	return `customers [-q <query>]

  Lists all customer accounts with their balance, most recently active
  first. The optional query filters by name substring or phone substring.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by name or phone substring")
}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	var customers []khata.Customer
	for _, cust := range book.Customers() {
		if cust.Matches(c.query) {
			customers = append(customers, cust)
		}
	}

	printMarkdown(renderer.CustomersMarkdown(customers, book.Settings()))
	return subcommands.ExitSuccess
}
