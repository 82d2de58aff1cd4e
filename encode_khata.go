package khata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts persist as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// The khata directory holds three independently-keyed JSON documents.
const (
	CustomersFile = "customers.json"
	NotesFile     = "notes.json"
	SettingsFile  = "settings.json"
)

// EncodeCustomers writes the customer collection as an indented JSON document.
func EncodeCustomers(w io.Writer, customers []Customer) error {
	return encodeDocument(w, customers)
}

// DecodeCustomers reads a customer collection document.
func DecodeCustomers(r io.Reader) ([]Customer, error) {
	var customers []Customer
	if err := json.NewDecoder(r).Decode(&customers); err != nil {
		return nil, fmt.Errorf("could not decode customers: %w", err)
	}
	return customers, nil
}

// EncodeNotes writes the note collection as an indented JSON document.
func EncodeNotes(w io.Writer, notes []Note) error {
	return encodeDocument(w, notes)
}

// DecodeNotes reads a note collection document.
func DecodeNotes(r io.Reader) ([]Note, error) {
	var notes []Note
	if err := json.NewDecoder(r).Decode(&notes); err != nil {
		return nil, fmt.Errorf("could not decode notes: %w", err)
	}
	return notes, nil
}

// EncodeSettings writes the settings record as an indented JSON document.
func EncodeSettings(w io.Writer, s Settings) error {
	return encodeDocument(w, s)
}

// DecodeSettings reads a settings record document.
func DecodeSettings(r io.Reader) (Settings, error) {
	var s Settings
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}
	return s, nil
}

func encodeDocument(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Load reads a book from dir. A missing or unparsable document falls back
// to its documented default (empty collections, default settings) with a
// logged warning; malformed persisted data is never fatal.
func Load(dir string) *Book {
	b := NewBook()
	if customers, ok := loadDocument(filepath.Join(dir, CustomersFile), DecodeCustomers); ok {
		b.customers = customers
	}
	if notes, ok := loadDocument(filepath.Join(dir, NotesFile), DecodeNotes); ok {
		b.notes = notes
	}
	if settings, ok := loadDocument(filepath.Join(dir, SettingsFile), DecodeSettings); ok {
		b.settings = settings
	}
	return b
}

// loadDocument opens and decodes one document. It reports false when the
// caller should keep the default: silently for a document that does not
// exist yet, with a warning for one that cannot be read.
func loadDocument[T any](path string, decode func(io.Reader) (T, error)) (T, bool) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open %q: %v, using defaults", path, err)
		}
		return zero, false
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		log.Printf("warning: cannot read %q: %v, using defaults", path, err)
		return zero, false
	}
	return v, true
}

// Save writes the whole book state into dir, one document per collection,
// not a delta. Each document is written atomically: first to a temporary
// file, then renamed over the previous one, so an interrupted write never
// corrupts the stored data.
func Save(dir string, b *Book) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create khata directory %q: %w", dir, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := saveDocument(filepath.Join(dir, CustomersFile), func(w io.Writer) error {
		return EncodeCustomers(w, b.customers)
	}); err != nil {
		return err
	}
	if err := saveDocument(filepath.Join(dir, NotesFile), func(w io.Writer) error {
		return EncodeNotes(w, b.notes)
	}); err != nil {
		return err
	}
	return saveDocument(filepath.Join(dir, SettingsFile), func(w io.Writer) error {
		return EncodeSettings(w, b.settings)
	})
}

func saveDocument(path string, encode func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", tmp, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return os.Rename(tmp, path)
}
