package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/khata"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// productsFlag parses repeated -product flags of the form
// "name:quantity:price[:paid]".
type productsFlag []khata.Product

func (p *productsFlag) String() string {
	parts := make([]string, 0, len(*p))
	for _, prod := range *p {
		parts = append(parts, fmt.Sprintf("%s:%d:%s:%t", prod.Name, prod.Quantity, prod.Price, prod.Paid))
	}
	return strings.Join(parts, ",")
}

func (p *productsFlag) Set(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return fmt.Errorf("want name:quantity:price[:paid], got %q", value)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("product name is empty in %q", value)
	}
	quantity, err := strconv.Atoi(parts[1])
	if err != nil || quantity <= 0 {
		return fmt.Errorf("invalid quantity %q in %q", parts[1], value)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fmt.Errorf("invalid price %q in %q", parts[2], value)
	}
	paid := false
	if len(parts) == 4 {
		paid, err = strconv.ParseBool(parts[3])
		if err != nil {
			return fmt.Errorf("invalid paid flag %q in %q", parts[3], value)
		}
	}
	*p = append(*p, khata.Product{Name: name, Quantity: quantity, Price: price, Paid: paid})
	return nil
}

type addEntryCmd struct {
	customer string
	products productsFlag
	paid     string
	due      string
}

func (*addEntryCmd) Name() string     { return "add-entry" }
func (*addEntryCmd) Synopsis() string { return "record a credit entry on a customer's khata" }
func (*addEntryCmd) Usage() string {
	return `add-entry -c <customer> -product <name:qty:price[:paid]> [-product ...] [-paid <amount>] [-due <date>]

  Records one transaction on a customer's account and recomputes the
  balance:
  - c: the customer id or exact name.
  - product: one product line, repeatable (e.g. -product "Bulb:2:25").
  - paid: the cash paid on the spot (default 0).
  - due: the due date for the remainder, YYYY-MM-DD.
`
}

func (c *addEntryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required)")
	f.Var(&c.products, "product", "Product line as name:quantity:price[:paid] (repeatable)")
	f.StringVar(&c.paid, "paid", "0", "Cash paid on the spot")
	f.StringVar(&c.due, "due", "", "Due date for the remainder (YYYY-MM-DD)")
}

func (c *addEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customer == "" {
		fmt.Fprintln(os.Stderr, "Error: -c flag is required.")
		return subcommands.ExitUsageError
	}

	cashPaid, err := decimal.NewFromString(c.paid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -paid amount %q: %v\n", c.paid, err)
		return subcommands.ExitUsageError
	}

	var due khata.Date
	if c.due != "" {
		due, err = khata.ParseDate(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -due date %q: %v\n", c.due, err)
			return subcommands.ExitUsageError
		}
	}

	book := LoadBook()

	customer, err := book.Resolve(c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	entry, err := book.AddEntry(customer.ID, c.products, cashPaid, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	settings := book.Settings()
	customer, _ = book.Customer(customer.ID)
	fmt.Printf("Recorded entry %s for %s: total %s, paid %s, due %s. New balance: %s\n",
		entry.ID, customer.Name,
		khata.FormatMoney(entry.Total(), settings.Currency),
		khata.FormatMoney(entry.CashPaid, settings.Currency),
		khata.FormatMoney(entry.Due(), settings.Currency),
		khata.FormatMoney(customer.Balance, settings.Currency))
	return subcommands.ExitSuccess
}
