// Package ledger exposes the expense record store: an ordered list of
// records and the user settings, both persisted as whole documents.
package ledger

import (
	"encoding/json"
	"fmt"

	"expenseai/internal/model"
	"expenseai/internal/store"
)

// Ledger reads and replaces the expense list and settings. Reads return
// the full collection; every mutation rewrites the whole document. List
// order is insertion order, most recent first.
type Ledger struct {
	store *store.Store
}

// New wraps a document store.
func New(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// Records returns all expense records. A missing or unparseable document
// is treated as an empty ledger rather than an error.
func (l *Ledger) Records() ([]model.Record, error) {
	raw, ok, err := l.store.Get(store.KeyExpenses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []model.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Corrupt document: fail soft with an empty ledger.
		return nil, nil
	}
	return records, nil
}

// ReplaceAll overwrites the expense document with the given records.
func (l *Ledger) ReplaceAll(records []model.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	return l.store.Put(store.KeyExpenses, string(data))
}

// Add inserts a record at the head of the list.
func (l *Ledger) Add(r model.Record) error {
	records, err := l.Records()
	if err != nil {
		return err
	}
	records = append([]model.Record{r}, records...)
	return l.ReplaceAll(records)
}

// RemoveAt deletes the record at the given position. Positional deletes
// against a ledger mutated since it was listed may remove a different
// record; only out-of-range indices are detected.
func (l *Ledger) RemoveAt(idx int) (model.Record, error) {
	records, err := l.Records()
	if err != nil {
		return model.Record{}, err
	}
	if idx < 0 || idx >= len(records) {
		return model.Record{}, fmt.Errorf("no expense at index %d (ledger has %d)", idx, len(records))
	}
	removed := records[idx]
	records = append(records[:idx], records[idx+1:]...)
	return removed, l.ReplaceAll(records)
}

// Settings returns the saved settings, or the defaults when the document
// is missing or unparseable.
func (l *Ledger) Settings() (model.Settings, error) {
	raw, ok, err := l.store.Get(store.KeySettings)
	if err != nil {
		return model.DefaultSettings(), err
	}
	if !ok {
		return model.DefaultSettings(), nil
	}

	var s model.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.DefaultSettings(), nil
	}
	return s, nil
}

// SaveSettings replaces the settings document wholesale.
func (l *Ledger) SaveSettings(s model.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return l.store.Put(store.KeySettings, string(data))
}
