package khata

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is one line of an entry: a quantity of a named product at a unit
// price. The paid flag is a per-line checklist mark for the shopkeeper; it
// never enters the balance computation (cashPaid is the settlement amount).
type Product struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Paid     bool            `json:"paid"`
}

// Total returns quantity × price for this line.
func (p Product) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Entry is one recorded transaction: one or more product lines plus a cash
// payment against them, and an optional due date for the remainder.
type Entry struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Products []Product       `json:"products"`
	CashPaid decimal.Decimal `json:"cashPaid"`
	DueDate  Date            `json:"dueDate"`
}

// Total returns the sum of all line totals.
func (e Entry) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Products {
		total = total.Add(p.Total())
	}
	return total
}

// Due returns the amount still owed on this entry: total minus cash paid.
// Per-line paid flags do not reduce it.
func (e Entry) Due() decimal.Decimal { return e.Total().Sub(e.CashPaid) }

// AllPaid reports whether every product line is ticked as paid.
func (e Entry) AllPaid() bool {
	for _, p := range e.Products {
		if !p.Paid {
			return false
		}
	}
	return true
}

// Overdue reports whether the entry's due date has passed while some lines
// remain unticked.
func (e Entry) Overdue(today Date) bool {
	return !e.DueDate.IsZero() && e.DueDate.Before(today) && !e.AllPaid()
}

func (e Entry) clone() Entry {
	e.Products = append([]Product(nil), e.Products...)
	return e
}

// Customer is one khata account: identity, its ordered entries, and the
// derived running balance.
type Customer struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Entries []Entry         `json:"entries"`
	Balance decimal.Decimal `json:"balance"`
	// LastEntryDate is the timestamp of the most recent entry; customers are
	// listed most recently active first. Absent until the first entry.
	LastEntryDate time.Time `json:"lastEntryDate,omitzero"`
}

// ComputeBalance recomputes the balance from scratch: the sum over all
// entries of (entry total − cash paid). The Balance field must always equal
// this value.
func (c Customer) ComputeBalance() decimal.Decimal {
	balance := decimal.Zero
	for _, e := range c.Entries {
		balance = balance.Add(e.Due())
	}
	return balance
}

// Matches reports whether the customer matches a search query, by
// case-insensitive name substring or by phone substring.
func (c Customer) Matches(query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
		return true
	}
	return strings.Contains(c.Phone, query)
}

func (c Customer) clone() Customer {
	entries := make([]Entry, len(c.Entries))
	for i, e := range c.Entries {
		entries[i] = e.clone()
	}
	c.Entries = entries
	return c
}
