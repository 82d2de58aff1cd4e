// Package renderer formats khata data as markdown, ready to be printed on a
// terminal by the cmd package.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/khata"
)

// CustomersMarkdown renders the account list as a markdown table, in the
// order it is given (most recently active first).
func CustomersMarkdown(customers []khata.Customer, s khata.Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Customers\n\n", s.ShopName)
	if len(customers) == 0 {
		fmt.Fprintln(&b, "No customers yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Phone | Last Entry | Balance |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, c := range customers {
		last := ""
		if !c.LastEntryDate.IsZero() {
			last = c.LastEntryDate.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			c.Name, c.Phone, last, khata.FormatMoney(c.Balance, s.Currency))
	}
	return b.String()
}
