package khata

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSnapshotQuery(t *testing.T) {
	b := newTestBook()
	ali, _ := b.AddCustomer("Ali", "0300-1234567")
	b.AddCustomer("Bashir", "")
	b.AddEntry(ali.ID, []Product{{Name: "Bulb", Quantity: 2, Price: dec("25")}}, decimal.Zero, Date{})
	b.AddNote("Order stock", "Call the supplier")

	snapshot := b.Snapshot()

	got, err := snapshot.Query("$.settings.shopName")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got != "Digital Khata" {
		t.Errorf("shopName = %v, want Digital Khata", got)
	}

	got, err = snapshot.Query("$.customers[*].name")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	names, ok := got.([]interface{})
	if !ok || len(names) != 2 {
		t.Fatalf("customer names = %#v, want 2 names", got)
	}

	got, err = snapshot.Query("$.customers[0].balance")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	// Amounts persist as plain JSON numbers.
	if balance, ok := got.(float64); !ok || balance != 50 {
		t.Errorf("balance = %#v, want the number 50", got)
	}

	if _, err := snapshot.Query("$.["); err == nil {
		t.Error("Query on a malformed path should fail")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := newTestBook()
	ali, _ := b.AddCustomer("Ali", "")
	b.AddEntry(ali.ID, []Product{{Name: "Bulb", Quantity: 1, Price: dec("25")}}, decimal.Zero, Date{})

	snapshot := b.Snapshot()
	snapshot.Customers[0].Name = "mutated"
	snapshot.Customers[0].Entries[0].Products[0].Name = "mutated"

	got, _ := b.Customer(ali.ID)
	if got.Name != "Ali" || got.Entries[0].Products[0].Name != "Bulb" {
		t.Error("mutating the snapshot leaked into the book")
	}
}
