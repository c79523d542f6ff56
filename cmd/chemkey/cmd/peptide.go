package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/ChemKey/pkg/peptide"
)

var peptideCmd = &cobra.Command{
	Use:   "peptide [sequence]",
	Short: "Compute peptide neutral mass and m/z",
	Long: `Compute the neutral monoisotopic mass of a peptide sequence, and the m/z
when a charge state is given.

Examples:
  chemkey peptide PEPTIDE --charge 2
  chemkey peptide PEPTIDEK --charge 2 --mods 'Carbamidomethyl@C2;Oxidation@M8'

  # Fully 15N-labeled sample
  chemkey peptide PEPTIDE --charge 2 --elements 15n_labeling.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPeptide,
}

func runPeptide(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	model := table.Model()

	calc, err := peptide.NewCalculator(model)
	if err != nil {
		return err
	}

	sequence := args[0]
	var mods []peptide.Modification
	if modString != "" {
		modDB, err := peptide.DefaultModDatabase(model)
		if err != nil {
			return err
		}
		mods, err = modDB.ParseModString(modString, sequence)
		if err != nil {
			return err
		}
	}

	neutral, err := calc.NeutralMass(sequence, mods)
	if err != nil {
		return err
	}
	fmt.Printf("%s\tneutral %.6f\n", sequence, neutral)

	if charge > 0 {
		mz, err := calc.MZ(sequence, charge, mods)
		if err != nil {
			return err
		}
		fmt.Printf("%s/%d\tm/z %.6f\n", sequence, charge, mz)
	}
	return nil
}
