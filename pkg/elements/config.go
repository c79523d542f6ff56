package elements

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// elementFile mirrors the on-disk TOML layout for element overrides:
//
//	[elements.N]
//	abundance = [0.01, 0.99]
//	mass = [14.0030740048, 15.0001088982]
type elementFile struct {
	Elements map[string]elementEntry `toml:"elements"`
}

type elementEntry struct {
	Abundance []float64 `toml:"abundance"`
	Mass      []float64 `toml:"mass"`
}

// ApplyFile reads a TOML element override file and applies every entry to
// the table as one batch followed by a single rebuild.
func (t *Table) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var file elementFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(file.Elements) == 0 {
		return fmt.Errorf("%s: no [elements.*] entries", path)
	}

	updates := make(map[string]Record, len(file.Elements))
	for symbol, entry := range file.Elements {
		updates[symbol] = Record{Abundance: entry.Abundance, Mass: entry.Mass}
	}
	return t.UpdateAll(updates)
}
