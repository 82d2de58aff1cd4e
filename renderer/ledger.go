package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/khata"
)

// LedgerMarkdown renders one customer's full khata: every entry with its
// product lines, paid ticks, totals and due amounts. Entries whose due date
// has passed with unticked lines are flagged overdue, with the reminder
// message ready to forward to the customer.
func LedgerMarkdown(c khata.Customer, s khata.Settings, today khata.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Khata of %s\n\n", c.Name)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n\n", c.Phone)
	}
	fmt.Fprintf(&b, "Net Balance: **%s**\n\n", khata.FormatMoney(c.Balance, s.Currency))

	if len(c.Entries) == 0 {
		fmt.Fprintln(&b, "No entries yet.")
		return b.String()
	}

	for _, e := range c.Entries {
		fmt.Fprintf(&b, "## %s\n\n", e.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "Entry `%s`\n\n", e.ID)

		fmt.Fprintln(&b, "| # | Product | Qty | Price | Total | Paid |")
		fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|:---:|")
		for i, p := range e.Products {
			tick := " "
			if p.Paid {
				tick = "✓"
			}
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s | %s |\n",
				i, p.Name, p.Quantity,
				khata.FormatMoney(p.Price, s.Currency),
				khata.FormatMoney(p.Total(), s.Currency),
				tick)
		}
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "Total: %s · Cash Paid: %s · Due: **%s**\n\n",
			khata.FormatMoney(e.Total(), s.Currency),
			khata.FormatMoney(e.CashPaid, s.Currency),
			khata.FormatMoney(e.Due(), s.Currency))
		if !e.DueDate.IsZero() {
			fmt.Fprintf(&b, "Due date: %s\n\n", e.DueDate)
		}
		if e.Overdue(today) {
			fmt.Fprintf(&b, "**OVERDUE**\n\n> %s\n\n", ReminderMessage(c, e, s))
		}
	}
	return b.String()
}

// ReminderMessage builds the payment reminder text for an overdue entry, to
// be sent to the customer as-is.
func ReminderMessage(c khata.Customer, e khata.Entry, s khata.Settings) string {
	return fmt.Sprintf("Reminder: Dear %s, a payment of %s for your purchase on %s was due on %s. Please clear your balance at %s. Powered by %s.",
		c.Name,
		khata.FormatMoney(e.Due(), s.Currency),
		e.Date.Format("2006-01-02"),
		e.DueDate,
		s.ShopName,
		s.Developer)
}
