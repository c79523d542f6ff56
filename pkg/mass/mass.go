// Package mass computes monoisotopic masses of chemical formulas against
// the active element model.
package mass

import (
	"github.com/ChrisMcGann/ChemKey/pkg/elements"
	"github.com/ChrisMcGann/ChemKey/pkg/formula"
)

const (
	// Proton mass for charge state calculations.
	Proton = 1.00727646688

	// IsotopeGap is the averaged mass spacing between neighboring isotope
	// peaks.
	IsotopeGap = 1.00335
)

// FormulaMass sums count x monoisotopic mass over every element in f. It
// returns elements.ErrUnknownElement if any symbol is absent from the
// model. Pure: no side effects, deterministic for a given model.
func FormulaMass(m *elements.Model, f formula.Formula) (float64, error) {
	var total float64
	for _, sym := range f.Symbols() {
		mono, err := m.MonoMass(sym)
		if err != nil {
			return 0, err
		}
		total += float64(f.Count(sym)) * mono
	}
	return total, nil
}
