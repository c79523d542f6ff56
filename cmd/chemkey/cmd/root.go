// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/ChemKey/pkg/elements"
)

var (
	// Global flags
	elementsFile string

	// Flags for mass command
	formulaText string
	hillGrammar bool

	// Flags for peptide command
	charge    int
	modString string

	// Flags for export command
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "chemkey",
	Short: "ChemKey - element and peptide mass calculator",
	Long: `ChemKey computes monoisotopic masses and isotope envelopes for chemical
elements, formulas, and peptides from NIST isotope data.

Supports:
- Formula mass calculation in canonical or toolkit (Hill) notation
- Per-element isotope envelope inspection
- Peptide neutral mass and m/z with modifications
- Per-symbol element overrides from a TOML file (e.g. 15N labeling)
- Export of computed mass tables to SQLite`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(massCmd)
	rootCmd.AddCommand(isotopesCmd)
	rootCmd.AddCommand(peptideCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.PersistentFlags().StringVar(&elementsFile, "elements", "", "TOML file with per-symbol element overrides")

	massCmd.Flags().StringVarP(&formulaText, "formula", "f", "", "Chemical formula, e.g. 'H(2)O(1)' (required)")
	massCmd.Flags().BoolVar(&hillGrammar, "hill", false, "Parse toolkit notation, e.g. 'C6H12O6' or '[13C]2C4H12'")
	massCmd.MarkFlagRequired("formula")

	peptideCmd.Flags().IntVarP(&charge, "charge", "z", 0, "Charge state (0 = neutral mass only)")
	peptideCmd.Flags().StringVar(&modString, "mods", "", "Modifications, e.g. 'Carbamidomethyl@C2;Oxidation@M8'")

	exportCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output database file (required)")
	exportCmd.MarkFlagRequired("out")
}

// loadTable builds the element table from the built-in NIST data and
// applies the override file when one was given.
func loadTable() (*elements.Table, error) {
	table := elements.NewTable()
	if elementsFile != "" {
		if err := table.ApplyFile(elementsFile); err != nil {
			return nil, err
		}
	}
	return table, nil
}
