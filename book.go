package khata

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the single source of truth for customers, notes and settings.
//
// All mutations serialize behind one mutex and run to completion before the
// next is accepted; reads return copies so callers never alias internal
// state. Every successful mutation notifies the subscribers registered with
// Subscribe, after the state change is applied.
type Book struct {
	mu        sync.Mutex
	customers []Customer
	notes     []Note
	settings  Settings

	newID func() string    // injectable id generator, uuid by default
	now   func() time.Time // injectable clock
	subs  []func()
}

// NewBook creates an empty book with default settings.
func NewBook() *Book {
	return &Book{
		customers: make([]Customer, 0),
		notes:     make([]Note, 0),
		settings:  DefaultSettings(),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Subscribe registers fn to be called after every successful mutation.
// Subscribers run synchronously, outside the critical section, in
// registration order.
func (b *Book) Subscribe(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Book) publish() {
	for _, fn := range b.subs {
		fn()
	}
}

// lookup returns a pointer into the internal customer slice. Callers must
// hold the mutex.
func (b *Book) lookup(id string) *Customer {
	for i := range b.customers {
		if b.customers[i].ID == id {
			return &b.customers[i]
		}
	}
	return nil
}

// AddCustomer opens a new account with an empty entry list and zero balance.
func (b *Book) AddCustomer(name, phone string) (Customer, error) {
	if strings.TrimSpace(name) == "" {
		return Customer{}, fmt.Errorf("customer name is required: %w", ErrInvalidArgument)
	}
	b.mu.Lock()
	c := Customer{
		ID:      b.newID(),
		Name:    name,
		Phone:   phone,
		Entries: make([]Entry, 0),
		Balance: decimal.Zero,
	}
	b.customers = append(b.customers, c)
	out := c.clone()
	b.mu.Unlock()

	b.publish()
	return out, nil
}

// AddEntry records one transaction on a customer's account: the product
// lines, the cash paid against them, and an optional due date. The
// customer's balance is recomputed from scratch over all entries and the
// last-entry timestamp is set to the operation time.
func (b *Book) AddEntry(customerID string, products []Product, cashPaid decimal.Decimal, due Date) (Entry, error) {
	if len(products) == 0 {
		return Entry{}, fmt.Errorf("entry needs at least one product: %w", ErrInvalidArgument)
	}
	if cashPaid.IsNegative() {
		return Entry{}, fmt.Errorf("cash paid cannot be negative: %w", ErrInvalidArgument)
	}

	b.mu.Lock()
	c := b.lookup(customerID)
	if c == nil {
		b.mu.Unlock()
		return Entry{}, fmt.Errorf("customer %q: %w", customerID, ErrNotFound)
	}
	now := b.now()
	e := Entry{
		ID:       b.newID(),
		Date:     now,
		Products: append([]Product(nil), products...),
		CashPaid: cashPaid,
		DueDate:  due,
	}
	c.Entries = append(c.Entries, e)
	// Full recomputation, not an increment: the balance can never drift from
	// its defining sum.
	c.Balance = c.ComputeBalance()
	c.LastEntryDate = now
	out := e.clone()
	b.mu.Unlock()

	b.publish()
	return out, nil
}

// UpdatePaidStatus sets the paid flag of one product line, located by
// customer id, entry id and positional index. The balance is intentionally
// left untouched: the flag is a checklist mark, cashPaid is the settlement
// amount.
func (b *Book) UpdatePaidStatus(customerID, entryID string, productIndex int, paid bool) error {
	b.mu.Lock()
	c := b.lookup(customerID)
	if c == nil {
		b.mu.Unlock()
		return fmt.Errorf("customer %q: %w", customerID, ErrNotFound)
	}
	var entry *Entry
	for i := range c.Entries {
		if c.Entries[i].ID == entryID {
			entry = &c.Entries[i]
			break
		}
	}
	if entry == nil {
		b.mu.Unlock()
		return fmt.Errorf("entry %q of customer %q: %w", entryID, customerID, ErrNotFound)
	}
	if productIndex < 0 || productIndex >= len(entry.Products) {
		b.mu.Unlock()
		return fmt.Errorf("product index %d of entry %q: %w", productIndex, entryID, ErrNotFound)
	}
	entry.Products[productIndex].Paid = paid
	b.mu.Unlock()

	b.publish()
	return nil
}

// AddNote appends a freestanding note. Both title and content are required.
func (b *Book) AddNote(title, content string) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, fmt.Errorf("note title is required: %w", ErrInvalidArgument)
	}
	if strings.TrimSpace(content) == "" {
		return Note{}, fmt.Errorf("note content is required: %w", ErrInvalidArgument)
	}

	b.mu.Lock()
	n := Note{
		ID:      b.newID(),
		Title:   title,
		Content: content,
		Date:    b.now(),
	}
	b.notes = append(b.notes, n)
	b.mu.Unlock()

	b.publish()
	return n, nil
}

// DeleteNote removes the note with the given id.
func (b *Book) DeleteNote(id string) error {
	b.mu.Lock()
	for i := range b.notes {
		if b.notes[i].ID == id {
			b.notes = append(b.notes[:i], b.notes[i+1:]...)
			b.mu.Unlock()
			b.publish()
			return nil
		}
	}
	b.mu.Unlock()
	return fmt.Errorf("note %q: %w", id, ErrNotFound)
}

// UpdateSettings shallow-merges the patch into the settings record and
// returns the merged result. An unsupported language or an empty shop name
// is rejected.
func (b *Book) UpdateSettings(patch SettingsPatch) (Settings, error) {
	if patch.ShopName != nil && strings.TrimSpace(*patch.ShopName) == "" {
		return Settings{}, fmt.Errorf("shop name cannot be empty: %w", ErrInvalidArgument)
	}
	if patch.Language != nil {
		if _, err := ParseLanguage(string(*patch.Language)); err != nil {
			return Settings{}, err
		}
	}

	b.mu.Lock()
	b.settings = b.settings.merge(patch)
	out := b.settings
	b.mu.Unlock()

	b.publish()
	return out, nil
}

// Settings returns the current settings record.
func (b *Book) Settings() Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.settings
}

// Customers returns copies of all accounts, most recently active first.
// Accounts with no entries sort as oldest, keeping their insertion order.
func (b *Book) Customers() []Customer {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Customer, 0, len(b.customers))
	for _, c := range b.customers {
		out = append(out, c.clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastEntryDate.After(out[j].LastEntryDate)
	})
	return out
}

// Customer returns a copy of the account with the given id.
func (b *Book) Customer(id string) (Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.lookup(id)
	if c == nil {
		return Customer{}, fmt.Errorf("customer %q: %w", id, ErrNotFound)
	}
	return c.clone(), nil
}

// Resolve finds a customer by id, or failing that by exact case-insensitive
// name. A name shared by several accounts is an error rather than a guess.
func (b *Book) Resolve(query string) (Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c := b.lookup(query); c != nil {
		return c.clone(), nil
	}
	var matches []*Customer
	for i := range b.customers {
		if strings.EqualFold(b.customers[i].Name, query) {
			matches = append(matches, &b.customers[i])
		}
	}
	switch len(matches) {
	case 0:
		return Customer{}, fmt.Errorf("customer %q: %w", query, ErrNotFound)
	case 1:
		return matches[0].clone(), nil
	default:
		return Customer{}, fmt.Errorf("customer name %q matches %d accounts, use the id", query, len(matches))
	}
}

// Notes returns copies of all notes, most recent first.
func (b *Book) Notes() []Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := append([]Note(nil), b.notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// TotalReceivable returns the running sum of all customer balances.
func (b *Book) TotalReceivable() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := decimal.Zero
	for _, c := range b.customers {
		total = total.Add(c.Balance)
	}
	return total
}
