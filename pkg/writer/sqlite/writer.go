// Package sqlite exports computed element and residue mass tables to a
// SQLite database for downstream tools.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ChrisMcGann/ChemKey/pkg/elements"
	"github.com/ChrisMcGann/ChemKey/pkg/peptide"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// Writer handles writing mass tables to SQLite database files
type Writer struct {
	db          *sql.DB
	outputPath  string
	elementStmt *sql.Stmt
	residueStmt *sql.Stmt
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ElementTable (
		Symbol TEXT PRIMARY KEY,
		MonoMass DOUBLE,
		MonoIndex INTEGER,
		Envelope TEXT,
		ClippedIsotopes INTEGER,
		ClippedAbundance DOUBLE
	);

	CREATE TABLE IF NOT EXISTS ResidueTable (
		Residue TEXT PRIMARY KEY,
		Formula TEXT,
		MonoMass DOUBLE
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		WaterMass DOUBLE,
		AmmoniaMass DOUBLE
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.elementStmt, err = w.db.Prepare(`
		INSERT OR REPLACE INTO ElementTable (
			Symbol, MonoMass, MonoIndex, Envelope, ClippedIsotopes, ClippedAbundance
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare element statement: %w", err)
	}

	w.residueStmt, err = w.db.Prepare(`
		INSERT OR REPLACE INTO ResidueTable (Residue, Formula, MonoMass)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare residue statement: %w", err)
	}

	return nil
}

// WriteElements writes every element of the model to ElementTable.
func (w *Writer) WriteElements(m *elements.Model) error {
	for _, symbol := range m.Symbols() {
		dist, err := m.Distribution(symbol)
		if err != nil {
			return err
		}
		_, err = w.elementStmt.Exec(
			symbol,
			dist.MonoMass,
			dist.MonoIdx,
			encodeEnvelope(dist.Envelope),
			dist.ClippedIsotopes,
			dist.ClippedAbundance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert element %s: %w", symbol, err)
		}
	}
	return nil
}

// WriteResidues writes the resolved amino acid mass table to ResidueTable.
func (w *Writer) WriteResidues(residues []peptide.Residue) error {
	for _, r := range residues {
		_, err := w.residueStmt.Exec(string(r.Code), r.Formula, r.Mass)
		if err != nil {
			return fmt.Errorf("failed to insert residue %c: %w", r.Code, err)
		}
	}
	return nil
}

// encodeEnvelope renders an envelope as semicolon-separated abundances.
func encodeEnvelope(envelope []float64) string {
	parts := make([]string, len(envelope))
	for i, a := range envelope {
		parts[i] = fmt.Sprintf("%.8g", a)
	}
	return strings.Join(parts, ";")
}

// Finalize writes the header table and closes the database
func (w *Writer) Finalize(m *elements.Model) error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (version, CreationDate, WaterMass, AmmoniaMass)
		VALUES (?, ?, ?, ?)
	`, 1, time.Now().Format(headerDateFormat), m.Water(), m.Ammonia())
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}

	return w.Close()
}

// Close closes prepared statements and the database connection
func (w *Writer) Close() error {
	if w.elementStmt != nil {
		w.elementStmt.Close()
	}
	if w.residueStmt != nil {
		w.residueStmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
