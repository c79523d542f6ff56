package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/ChemKey/pkg/formula"
	"github.com/ChrisMcGann/ChemKey/pkg/mass"
)

var massCmd = &cobra.Command{
	Use:   "mass",
	Short: "Compute the monoisotopic mass of a chemical formula",
	Long: `Compute the monoisotopic mass of a chemical formula.

Examples:
  # Canonical notation
  chemkey mass --formula 'H(2)O(1)'

  # Toolkit notation with an isotope label
  chemkey mass --formula '[13C]2C4H12N' --hill`,
	RunE: runMass,
}

func runMass(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	parse := formula.Parse
	if hillGrammar {
		parse = formula.ParseHill
	}
	f, err := parse(formulaText)
	if err != nil {
		return err
	}

	total, err := mass.FormulaMass(table.Model(), f)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%.6f\n", f.String(), total)
	return nil
}
