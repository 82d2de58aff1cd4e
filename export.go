package khata

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Snapshot is the whole persisted state as one document, for export and
// ad-hoc queries.
type Snapshot struct {
	Customers []Customer `json:"customers"`
	Notes     []Note     `json:"notes"`
	Settings  Settings   `json:"settings"`
}

// Snapshot returns a copy of the whole book state.
func (b *Book) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	customers := make([]Customer, 0, len(b.customers))
	for _, c := range b.customers {
		customers = append(customers, c.clone())
	}
	return Snapshot{
		Customers: customers,
		Notes:     append([]Note(nil), b.notes...),
		Settings:  b.settings,
	}
}

// Query evaluates a JSONPath expression against the snapshot, e.g.
// "$.customers[*].name" or "$.settings.shopName".
func (s Snapshot) Query(path string) (any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not rebuild snapshot document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
