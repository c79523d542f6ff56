package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var isotopesCmd = &cobra.Command{
	Use:   "isotopes [symbol]",
	Short: "Print the isotope envelope of an element",
	Long: `Print the stored isotope envelope of an element: abundance per integer
mass offset, with the monoisotopic peak highlighted. Envelopes wider than
the stored window are truncated; a warning reports the dropped isotopes.`,
	Args: cobra.ExactArgs(1),
	RunE: runIsotopes,
}

func runIsotopes(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	symbol := args[0]
	dist, err := table.Distribution(symbol)
	if err != nil {
		return err
	}

	fmt.Printf("%s\tmono mass %.6f\n", symbol, dist.MonoMass)
	mono := color.New(color.FgGreen, color.Bold)
	for i, abundance := range dist.Envelope {
		if i == dist.MonoIdx {
			mono.Printf("%3d\t%.6g\t<- mono\n", i, abundance)
		} else {
			fmt.Printf("%3d\t%.6g\n", i, abundance)
		}
	}

	if dist.ClippedIsotopes > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d isotopes (%.4g total abundance) fall outside the stored window\n",
			dist.ClippedIsotopes, dist.ClippedAbundance)
	}
	return nil
}
