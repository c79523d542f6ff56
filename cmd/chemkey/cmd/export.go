package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/ChemKey/pkg/peptide"
	"github.com/ChrisMcGann/ChemKey/pkg/writer/sqlite"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export computed mass tables to a SQLite database",
	Long: `Export the element mass table (with isotope envelopes) and the resolved
amino acid residue masses to a SQLite database.

Example:
  chemkey export --out masses.db --elements 15n_labeling.toml`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	model := table.Model()

	calc, err := peptide.NewCalculator(model)
	if err != nil {
		return err
	}

	writer, err := sqlite.NewWriter(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteElements(model); err != nil {
		return err
	}
	if err := writer.WriteResidues(calc.Residues()); err != nil {
		return err
	}
	if err := writer.Finalize(model); err != nil {
		return err
	}

	fmt.Printf("Exported %d elements and %d residues to %s\n",
		len(model.Symbols()), len(calc.Residues()), outputFile)
	return nil
}
