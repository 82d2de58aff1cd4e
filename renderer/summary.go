package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/khata"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard view of the whole book on a given day.
type Summary struct {
	Date            khata.Date
	Settings        khata.Settings
	Customers       int
	Notes           int
	TotalReceivable string
	Debtors         []DebtorLine
	Overdue         []OverdueLine
}

// DebtorLine is one customer with an outstanding balance.
type DebtorLine struct {
	Name    string
	Balance string
}

// OverdueLine is one overdue entry, with its reminder message.
type OverdueLine struct {
	Customer string
	Due      string
	DueDate  khata.Date
	Reminder string
}

// NewSummary computes the dashboard over all customers and notes: the total
// receivable, who owes what, and which entries are overdue as of today.
func NewSummary(customers []khata.Customer, notes []khata.Note, s khata.Settings, today khata.Date) *Summary {
	sum := &Summary{
		Date:      today,
		Settings:  s,
		Customers: len(customers),
		Notes:     len(notes),
	}
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.Balance)
		if c.Balance.IsPositive() {
			sum.Debtors = append(sum.Debtors, DebtorLine{
				Name:    c.Name,
				Balance: khata.FormatMoney(c.Balance, s.Currency),
			})
		}
		for _, e := range c.Entries {
			if e.Overdue(today) {
				sum.Overdue = append(sum.Overdue, OverdueLine{
					Customer: c.Name,
					Due:      khata.FormatMoney(e.Due(), s.Currency),
					DueDate:  e.DueDate,
					Reminder: ReminderMessage(c, e, s),
				})
			}
		}
	}
	sum.TotalReceivable = khata.FormatMoney(total, s.Currency)
	return sum
}

// SummaryMarkdown renders the dashboard to a markdown string.
func SummaryMarkdown(s *Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Summary on %s", s.Settings.ShopName, s.Date))
	doc.PlainText(fmt.Sprintf("Total Receivable: %s", s.TotalReceivable))
	doc.PlainText(fmt.Sprintf("Customers: %d · Notes: %d", s.Customers, s.Notes))

	if len(s.Debtors) > 0 {
		doc.H2("Outstanding Balances")
		rows := make([][]string, 0, len(s.Debtors))
		for _, d := range s.Debtors {
			rows = append(rows, []string{d.Name, d.Balance})
		}
		doc.Table(md.TableSet{
			Header: []string{"Customer", "Balance"},
			Rows:   rows,
		})
	}

	if len(s.Overdue) > 0 {
		doc.H2("Overdue Entries")
		rows := make([][]string, 0, len(s.Overdue))
		for _, o := range s.Overdue {
			rows = append(rows, []string{o.Customer, o.Due, o.DueDate.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Customer", "Due", "Due Date"},
			Rows:   rows,
		})
	}

	return doc.String()
}
