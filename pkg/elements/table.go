package elements

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidIsotopeTable is returned by Load/Update when a record has
	// mismatched abundance/mass lengths, no isotopes, or no positive
	// abundance. The existing model is left untouched.
	ErrInvalidIsotopeTable = errors.New("invalid isotope table")

	// ErrUnknownElement is returned by queries for a symbol that is not
	// present in the currently loaded table.
	ErrUnknownElement = errors.New("unknown element")
)

// Record holds the raw isotope data for one element symbol as loaded from a
// configuration source. Abundance[i] and Mass[i] describe the same isotope.
// The symbol may denote an isotopically labeled variant (e.g. "15N").
type Record struct {
	Abundance []float64
	Mass      []float64
}

func (r Record) clone() Record {
	return Record{
		Abundance: append([]float64(nil), r.Abundance...),
		Mass:      append([]float64(nil), r.Mass...),
	}
}

func (r Record) validate(symbol string) error {
	if len(r.Abundance) == 0 || len(r.Mass) == 0 {
		return fmt.Errorf("%w: element %s has no isotopes", ErrInvalidIsotopeTable, symbol)
	}
	if len(r.Abundance) != len(r.Mass) {
		return fmt.Errorf("%w: element %s has %d abundances but %d masses",
			ErrInvalidIsotopeTable, symbol, len(r.Abundance), len(r.Mass))
	}
	for _, a := range r.Abundance {
		if a > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: element %s has no positive abundance", ErrInvalidIsotopeTable, symbol)
}

// Table owns the element records and the isotope model derived from them.
// Mutations validate first, rebuild the entire model, and swap it in under
// the lock; readers always observe a complete model, never a partial
// rebuild.
type Table struct {
	mu      sync.RWMutex
	records map[string]Record
	model   *Model
}

// NewTable returns a table loaded with the built-in NIST element data.
func NewTable() *Table {
	t := &Table{}
	if err := t.Load(defaultRecords()); err != nil {
		// The built-in dataset is covered by tests; this cannot happen at
		// runtime.
		panic(err)
	}
	return t
}

// Load replaces the entire element set and rebuilds the model. On
// validation failure the existing records and model are left untouched.
func (t *Table) Load(records map[string]Record) error {
	for sym, rec := range records {
		if err := rec.validate(sym); err != nil {
			return err
		}
	}
	copied := make(map[string]Record, len(records))
	for sym, rec := range records {
		copied[sym] = rec.clone()
	}
	model := buildModel(copied)

	t.mu.Lock()
	t.records = copied
	t.model = model
	t.mu.Unlock()
	return nil
}

// Update overwrites or inserts a single element's record. The whole model
// is rebuilt, not just the changed element: composite masses depend on
// several elements at once, so a partial rebuild is unsafe.
func (t *Table) Update(symbol string, rec Record) error {
	return t.UpdateAll(map[string]Record{symbol: rec})
}

// UpdateAll applies a batch of per-symbol overwrites followed by a single
// rebuild. Either every record validates and the new model is swapped in,
// or nothing changes.
func (t *Table) UpdateAll(updates map[string]Record) error {
	for sym, rec := range updates {
		if err := rec.validate(sym); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	merged := make(map[string]Record, len(t.records)+len(updates))
	for sym, rec := range t.records {
		merged[sym] = rec
	}
	for sym, rec := range updates {
		merged[sym] = rec.clone()
	}
	t.records = merged
	t.model = buildModel(merged)
	return nil
}

// Model returns the current immutable model snapshot. The snapshot stays
// valid after later Load/Update calls but no longer reflects the table.
func (t *Table) Model() *Model {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.model
}

// MonoMass returns the monoisotopic mass of the element under the current
// model.
func (t *Table) MonoMass(symbol string) (float64, error) {
	return t.Model().MonoMass(symbol)
}

// Distribution returns the element's isotope envelope under the current
// model.
func (t *Table) Distribution(symbol string) (Distribution, error) {
	return t.Model().Distribution(symbol)
}
