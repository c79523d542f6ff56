// Package elements maintains the chemical element table and the isotope
// model derived from it: per-element isotope envelopes, monoisotopic masses,
// and the composite masses (water, ammonia) used by peptide calculations.
package elements

import (
	"fmt"
	"math"
	"sort"
)

// MaxIsotopeLen bounds the stored length of any isotope envelope. Envelopes
// with a wider natural span are truncated around the monoisotopic peak.
const MaxIsotopeLen = 10

// Distribution is one element's derived isotope envelope. Envelope is dense:
// index i holds the abundance at integer mass offset i from the lightest
// stored isotope, zero where no isotope exists.
type Distribution struct {
	Envelope []float64
	MonoIdx  int     // position of the monoisotopic peak in Envelope
	MonoMass float64 // exact mass of the isotope at MonoIdx

	// Diagnostics for truncated envelopes: isotopes dropped outside the
	// stored window. Zero for elements within MaxIsotopeLen.
	ClippedIsotopes  int
	ClippedAbundance float64
}

// Model is an immutable snapshot of the derived isotope data for every
// loaded element. A Model is never modified after construction; Table
// mutations build a new Model and swap it in.
type Model struct {
	index    map[string]int
	symbols  []string
	dists    []Distribution
	monoMass []float64

	water   float64
	ammonia float64
}

func buildModel(records map[string]Record) *Model {
	symbols := make([]string, 0, len(records))
	for sym := range records {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	m := &Model{
		index:    make(map[string]int, len(symbols)),
		symbols:  symbols,
		dists:    make([]Distribution, len(symbols)),
		monoMass: make([]float64, len(symbols)),
	}
	for i, sym := range symbols {
		d := buildDistribution(records[sym])
		m.index[sym] = i
		m.dists[i] = d
		m.monoMass[i] = d.MonoMass
	}

	// Composite masses depend on several elements at once, so they are
	// recomputed on every rebuild. Custom tables may omit H/O/N entirely;
	// the composites stay zero in that case.
	h, okH := m.lookup("H")
	o, okO := m.lookup("O")
	n, okN := m.lookup("N")
	if okH && okO {
		m.water = 2*h + o
	}
	if okH && okN {
		m.ammonia = 3*h + n
	}
	return m
}

func (m *Model) lookup(symbol string) (float64, bool) {
	i, ok := m.index[symbol]
	if !ok {
		return 0, false
	}
	return m.monoMass[i], true
}

// MonoMass returns the monoisotopic mass of the element.
func (m *Model) MonoMass(symbol string) (float64, error) {
	mass, ok := m.lookup(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownElement, symbol)
	}
	return mass, nil
}

// Distribution returns the element's isotope envelope. The returned slice
// is shared with the model and must not be modified.
func (m *Model) Distribution(symbol string) (Distribution, error) {
	i, ok := m.index[symbol]
	if !ok {
		return Distribution{}, fmt.Errorf("%w: %s", ErrUnknownElement, symbol)
	}
	return m.dists[i], nil
}

// ID resolves a symbol to the model's dense integer id, for callers that
// loop over masses without repeated string lookups.
func (m *Model) ID(symbol string) (int, bool) {
	i, ok := m.index[symbol]
	return i, ok
}

// MonoMassByID returns the monoisotopic mass for an id obtained from ID.
func (m *Model) MonoMassByID(id int) float64 {
	return m.monoMass[id]
}

// Symbols returns all loaded element symbols in lexicographic order.
func (m *Model) Symbols() []string {
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Water returns the monoisotopic mass of H2O under the current table.
func (m *Model) Water() float64 { return m.water }

// Ammonia returns the monoisotopic mass of NH3 under the current table.
func (m *Model) Ammonia() float64 { return m.ammonia }

// buildDistribution converts a raw record into a dense envelope, locates the
// monoisotopic peak, and truncates envelopes wider than MaxIsotopeLen.
func buildDistribution(rec Record) Distribution {
	n := len(rec.Mass)
	type isotope struct {
		mass      float64
		abundance float64
	}
	isos := make([]isotope, n)
	for i := range isos {
		isos[i] = isotope{rec.Mass[i], rec.Abundance[i]}
	}
	sort.Slice(isos, func(i, j int) bool { return isos[i].mass < isos[j].mass })

	base := int(math.Round(isos[0].mass))
	span := int(math.Round(isos[n-1].mass)) - base + 1

	envelope := make([]float64, span)
	massAt := make([]float64, span)
	for _, iso := range isos {
		off := int(math.Round(iso.mass)) - base
		envelope[off] = iso.abundance
		massAt[off] = iso.mass
	}

	monoIdx := 0
	for i, a := range envelope {
		if a > envelope[monoIdx] {
			monoIdx = i
		}
	}

	d := Distribution{
		Envelope: envelope,
		MonoIdx:  monoIdx,
		MonoMass: massAt[monoIdx],
	}
	if span <= MaxIsotopeLen {
		return d
	}

	newMono, start, end := truncateIsotopes(envelope, monoIdx, MaxIsotopeLen)
	for i, a := range envelope {
		if (i < start || i >= end) && a > 0 {
			d.ClippedIsotopes++
			d.ClippedAbundance += a
		}
	}
	d.Envelope = envelope[start:end]
	d.MonoIdx = newMono
	return d
}

// truncateIsotopes picks the maxLen-wide window of neighboring isotopes that
// contains the monoisotopic peak. At each step the window grows toward
// whichever neighbor holds the greater abundance; equal neighbors grow the
// upper side. If one side reaches the array edge before the window is full,
// the window is re-anchored against the far edge. Returns the mono position
// inside the window and the window's half-open bounds.
func truncateIsotopes(envelope []float64, monoIdx, maxLen int) (newMono, start, end int) {
	truncStart := monoIdx - 1
	truncEnd := monoIdx + 1
	for truncStart >= 0 && truncEnd < len(envelope) && truncEnd-truncStart-1 < maxLen {
		if envelope[truncEnd] >= envelope[truncStart] {
			truncEnd++
		} else {
			truncStart--
		}
	}
	if truncEnd-truncStart-1 < maxLen {
		if truncStart == -1 {
			truncEnd = maxLen
		} else if truncEnd == len(envelope) {
			truncStart = len(envelope) - maxLen - 1
		}
	}
	return monoIdx - truncStart - 1, truncStart + 1, truncEnd
}
