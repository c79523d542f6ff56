package peptide

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/ChemKey/pkg/elements"
	"github.com/ChrisMcGann/ChemKey/pkg/formula"
	"github.com/ChrisMcGann/ChemKey/pkg/mass"
)

// Modification represents a peptide modification: a mass shift at a
// sequence position (0-based; -1 for N-term).
type Modification struct {
	Mass     float64
	Position int
	Name     string
}

// modFormulas holds the elemental composition of common modifications.
// Labeled symbols ("13C", "15N") key the enriched isotopes of isobaric
// tags separately from the natural-abundance elements.
var modFormulas = map[string]string{
	"Acetyl":          "C(2)H(2)O(1)",
	"Amidated":        "H(1)N(1)O(-1)",
	"Carbamidomethyl": "C(2)H(3)N(1)O(1)",
	"Carbamyl":        "C(1)H(1)N(1)O(1)",
	"Deamidated":      "H(-1)N(-1)O(1)",
	"Dehydrated":      "H(-2)O(-1)",
	"Dimethyl":        "C(2)H(4)",
	"Gln->pyro-Glu":   "H(-3)N(-1)",
	"Glu->pyro-Glu":   "H(-2)O(-1)",
	"Methyl":          "C(1)H(2)",
	"Methylthio":      "C(1)H(2)S(1)",
	"Oxidation":       "O(1)",
	"Phospho":         "H(1)O(3)P(1)",
	"Propionamide":    "C(3)H(5)N(1)O(1)",
	"Propionyl":       "C(3)H(4)O(1)",
	"Trimethyl":       "C(3)H(6)",
	"TMT6plex":        "C(8)13C(4)H(20)N(1)15N(1)O(2)",
	"TMTPro":          "C(8)13C(7)H(25)N(1)15N(2)O(3)",
}

// ModDatabase stores modification definitions as name -> mass shift.
type ModDatabase struct {
	mods map[string]float64
}

// NewModDatabase creates an empty modification database.
func NewModDatabase() *ModDatabase {
	return &ModDatabase{mods: make(map[string]float64)}
}

// DefaultModDatabase resolves the built-in modification compositions
// against m. Masses follow the element model, so a table with overridden
// isotope data (e.g. full 15N labeling) shifts every derived modification
// mass consistently.
func DefaultModDatabase(m *elements.Model) (*ModDatabase, error) {
	db := NewModDatabase()
	for name, text := range modFormulas {
		f, err := formula.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("modification %s: %w", name, err)
		}
		shift, err := mass.FormulaMass(m, f)
		if err != nil {
			return nil, fmt.Errorf("modification %s: %w", name, err)
		}
		db.mods[name] = shift
	}
	return db, nil
}

// Add adds or updates a modification with a bare mass shift.
func (db *ModDatabase) Add(name string, shift float64) {
	db.mods[name] = shift
}

// GetMass returns the mass shift for a modification name.
func (db *ModDatabase) GetMass(name string) (float64, bool) {
	shift, ok := db.mods[name]
	return shift, ok
}

// ParseModString parses a modification string like
// "57.021464@2;15.994915@8" or "Carbamidomethyl@C2;Oxidation@M8" into a
// list of modifications. Position tokens may carry the amino acid letter;
// positions are 1-based in the string and 0-based in the result, with -1
// for the N-terminus.
func (db *ModDatabase) ParseModString(modStr string, sequence string) ([]Modification, error) {
	if modStr == "" {
		return nil, nil
	}

	var mods []Modification
	for _, part := range strings.Split(modStr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		nameAndPos := strings.Split(part, "@")
		if len(nameAndPos) != 2 {
			return nil, fmt.Errorf("invalid modification %q, expected 'name@position' or 'mass@position'", part)
		}
		name := strings.TrimSpace(nameAndPos[0])
		posStr := strings.TrimSpace(nameAndPos[1])

		shift, err := strconv.ParseFloat(name, 64)
		if err != nil {
			var ok bool
			if shift, ok = db.GetMass(name); !ok {
				return nil, fmt.Errorf("unknown modification %q", name)
			}
		}

		position, err := parsePosition(posStr)
		if err != nil {
			return nil, fmt.Errorf("modification %q: %w", part, err)
		}
		if position >= len(sequence) {
			return nil, fmt.Errorf("modification %q: position past end of sequence %s", part, sequence)
		}

		mods = append(mods, Modification{Mass: shift, Position: position, Name: name})
	}
	return mods, nil
}

// parsePosition reads a position token that may include the amino acid
// letter, e.g. "2", "C2", or "-1" for the N-terminus.
func parsePosition(posStr string) (int, error) {
	if posStr == "-1" {
		return -1, nil
	}
	posStr = strings.TrimLeft(posStr, "ACDEFGHIKLMNPQRSTVWY")

	pos, err := strconv.Atoi(posStr)
	if err != nil {
		return 0, fmt.Errorf("invalid position number: %w", err)
	}
	if pos > 0 {
		pos-- // 1-based in mod strings
	}
	return pos, nil
}
