// Package peptide derives amino acid residue masses from the element model
// and computes peptide neutral masses and m/z values.
package peptide

import (
	"fmt"
	"sort"

	"github.com/ChrisMcGann/ChemKey/pkg/elements"
	"github.com/ChrisMcGann/ChemKey/pkg/formula"
	"github.com/ChrisMcGann/ChemKey/pkg/mass"
)

// residueFormulas holds the elemental composition of each amino acid
// residue (the amino acid minus water) in canonical formula notation.
var residueFormulas = map[byte]string{
	'A': "C(3)H(5)N(1)O(1)",
	'C': "C(3)H(5)N(1)O(1)S(1)",
	'D': "C(4)H(5)N(1)O(3)",
	'E': "C(5)H(7)N(1)O(3)",
	'F': "C(9)H(9)N(1)O(1)",
	'G': "C(2)H(3)N(1)O(1)",
	'H': "C(6)H(7)N(3)O(1)",
	'I': "C(6)H(11)N(1)O(1)",
	'K': "C(6)H(12)N(2)O(1)",
	'L': "C(6)H(11)N(1)O(1)",
	'M': "C(5)H(9)N(1)O(1)S(1)",
	'N': "C(4)H(6)N(2)O(2)",
	'P': "C(5)H(7)N(1)O(1)",
	'Q': "C(5)H(8)N(2)O(2)",
	'R': "C(6)H(12)N(4)O(1)",
	'S': "C(3)H(5)N(1)O(2)",
	'T': "C(4)H(7)N(1)O(2)",
	'V': "C(5)H(9)N(1)O(1)",
	'W': "C(11)H(10)N(2)O(1)",
	'Y': "C(9)H(9)N(1)O(2)",
}

// Residue pairs an amino acid code with its composition and resolved mass.
type Residue struct {
	Code    byte
	Formula string
	Mass    float64
}

// Calculator holds residue masses resolved once against a model snapshot,
// indexed by ASCII code so the per-sequence loop does no map lookups.
// Build a new Calculator after any element table mutation.
type Calculator struct {
	residue [128]float64
	known   [128]bool
	water   float64
}

// NewCalculator resolves the amino acid composition table against m.
func NewCalculator(m *elements.Model) (*Calculator, error) {
	c := &Calculator{water: m.Water()}
	for aa, text := range residueFormulas {
		f, err := formula.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("residue %c: %w", aa, err)
		}
		monoMass, err := mass.FormulaMass(m, f)
		if err != nil {
			return nil, fmt.Errorf("residue %c: %w", aa, err)
		}
		c.residue[aa] = monoMass
		c.known[aa] = true
	}
	return c, nil
}

// NeutralMass computes the neutral monoisotopic mass of a peptide sequence
// plus its modifications: sum of residue masses plus one water.
func (c *Calculator) NeutralMass(sequence string, mods []Modification) (float64, error) {
	total := c.water
	for i := 0; i < len(sequence); i++ {
		aa := sequence[i]
		if aa >= 128 || !c.known[aa] {
			return 0, fmt.Errorf("unknown amino acid %q in sequence %s", aa, sequence)
		}
		total += c.residue[aa]
	}
	for _, mod := range mods {
		total += mod.Mass
	}
	return total, nil
}

// MZ returns the peptide's m/z at the given charge state:
// (neutral + charge*proton) / charge.
func (c *Calculator) MZ(sequence string, charge int, mods []Modification) (float64, error) {
	if charge <= 0 {
		return 0, fmt.Errorf("charge must be positive, got %d", charge)
	}
	neutral, err := c.NeutralMass(sequence, mods)
	if err != nil {
		return 0, err
	}
	return (neutral + float64(charge)*mass.Proton) / float64(charge), nil
}

// Residues lists the resolved residue table sorted by amino acid code.
func (c *Calculator) Residues() []Residue {
	out := make([]Residue, 0, len(residueFormulas))
	for aa, text := range residueFormulas {
		out = append(out, Residue{Code: aa, Formula: text, Mass: c.residue[aa]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
