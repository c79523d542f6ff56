package peptide

import (
	"math"
	"testing"

	"github.com/ChrisMcGann/ChemKey/pkg/elements"
)

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(elements.NewTable().Model())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestNeutralMass(t *testing.T) {
	calc := newCalculator(t)

	tests := []struct {
		name      string
		sequence  string
		mods      []Modification
		wantMass  float64
		tolerance float64
	}{
		{
			name:      "simple tripeptide",
			sequence:  "AAA",
			mods:      nil,
			wantMass:  231.121907,
			tolerance: 1e-4,
		},
		{
			name:     "with modification",
			sequence: "AAA",
			mods: []Modification{
				{Mass: 57.021464, Position: 0},
			},
			wantMass:  288.143371,
			tolerance: 1e-4,
		},
		{
			name:      "glycine is the smallest residue",
			sequence:  "G",
			mods:      nil,
			wantMass:  75.032028,
			tolerance: 1e-4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.NeutralMass(tt.sequence, tt.mods)
			if err != nil {
				t.Fatalf("NeutralMass: %v", err)
			}
			if math.Abs(got-tt.wantMass) > tt.tolerance {
				t.Errorf("NeutralMass() = %.6f, want %.6f (within %g)", got, tt.wantMass, tt.tolerance)
			}
		})
	}
}

func TestMZ(t *testing.T) {
	calc := newCalculator(t)

	tests := []struct {
		name      string
		sequence  string
		charge    int
		wantMZ    float64
		tolerance float64
	}{
		{"charge 1", "AAA", 1, 232.129, 0.001},
		{"charge 2", "AAA", 2, 116.568, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.MZ(tt.sequence, tt.charge, nil)
			if err != nil {
				t.Fatalf("MZ: %v", err)
			}
			if math.Abs(got-tt.wantMZ) > tt.tolerance {
				t.Errorf("MZ() = %.4f, want %.4f (within %g)", got, tt.wantMZ, tt.tolerance)
			}
		})
	}

	if _, err := calc.MZ("AAA", 0, nil); err == nil {
		t.Error("expected error for charge 0")
	}
}

func TestNeutralMassUnknownResidue(t *testing.T) {
	calc := newCalculator(t)
	if _, err := calc.NeutralMass("AAZ1", nil); err == nil {
		t.Error("expected error for unknown residue")
	}
}

func TestLabeledTableShiftsResidues(t *testing.T) {
	table := elements.NewTable()
	natural := newCalculator(t)

	// Fully 15N-labeled table: every residue shifts by one isotope gap per
	// nitrogen.
	err := table.Update("N", elements.Record{
		Abundance: []float64{0.01, 0.99},
		Mass:      []float64{14.0030740048, 15.0001088982},
	})
	if err != nil {
		t.Fatal(err)
	}
	labeled, err := NewCalculator(table.Model())
	if err != nil {
		t.Fatal(err)
	}

	// Lysine has two nitrogens.
	nat, _ := natural.NeutralMass("K", nil)
	lab, _ := labeled.NeutralMass("K", nil)
	wantShift := 2 * (15.0001088982 - 14.0030740048)
	if math.Abs((lab-nat)-wantShift) > 1e-6 {
		t.Errorf("15N shift for K = %v, want %v", lab-nat, wantShift)
	}
}

func TestResidues(t *testing.T) {
	calc := newCalculator(t)
	residues := calc.Residues()

	if len(residues) != 20 {
		t.Fatalf("len(Residues()) = %d, want 20", len(residues))
	}
	if residues[0].Code != 'A' || residues[len(residues)-1].Code != 'Y' {
		t.Errorf("residues not sorted by code: first %c, last %c",
			residues[0].Code, residues[len(residues)-1].Code)
	}
	for _, r := range residues {
		if r.Mass <= 0 {
			t.Errorf("residue %c has non-positive mass %v", r.Code, r.Mass)
		}
	}
	// Leucine and isoleucine are isobaric.
	var leu, ile float64
	for _, r := range residues {
		switch r.Code {
		case 'L':
			leu = r.Mass
		case 'I':
			ile = r.Mass
		}
	}
	if leu != ile {
		t.Errorf("L mass %v != I mass %v", leu, ile)
	}
}
