// Package formula implements chemical composition formulas: parsing,
// integer-count algebra, and canonical serialization.
package formula

import (
	"fmt"
	"sort"
	"strings"
)

// Formula maps element symbols to integer counts. Counts may be negative
// after subtraction. The zero value is the empty formula. Formulas are
// immutable: every operation returns a new value and never mutates its
// operands.
type Formula struct {
	counts map[string]int
}

// FromCounts builds a formula from a symbol->count map. The map is copied.
func FromCounts(counts map[string]int) Formula {
	f := Formula{counts: make(map[string]int, len(counts))}
	for sym, n := range counts {
		if n != 0 {
			f.counts[sym] = n
		}
	}
	return f
}

// Count returns the count for a symbol, zero if absent.
func (f Formula) Count(symbol string) int {
	return f.counts[symbol]
}

// Symbols returns the symbols with non-zero counts in lexicographic order.
func (f Formula) Symbols() []string {
	syms := make([]string, 0, len(f.counts))
	for sym, n := range f.counts {
		if n != 0 {
			syms = append(syms, sym)
		}
	}
	sort.Strings(syms)
	return syms
}

// Add returns the element-wise sum of f and other.
func (f Formula) Add(other Formula) Formula {
	return f.combine(other, 1)
}

// Sub returns the element-wise difference of f and other.
func (f Formula) Sub(other Formula) Formula {
	return f.combine(other, -1)
}

func (f Formula) combine(other Formula, sign int) Formula {
	counts := make(map[string]int, len(f.counts)+len(other.counts))
	for sym, n := range f.counts {
		counts[sym] = n
	}
	for sym, n := range other.counts {
		counts[sym] += sign * n
	}
	for sym, n := range counts {
		if n == 0 {
			delete(counts, sym)
		}
	}
	return Formula{counts: counts}
}

// Equal reports whether two formulas have identical non-zero counts.
func (f Formula) Equal(other Formula) bool {
	for sym, n := range f.counts {
		if n != 0 && other.counts[sym] != n {
			return false
		}
	}
	for sym, n := range other.counts {
		if n != 0 && f.counts[sym] != n {
			return false
		}
	}
	return true
}

// String renders the canonical form: symbols in lexicographic order, zero
// counts skipped, each entry as Symbol(count) with negatives as Symbol(-n).
// Parse(f.String()) reproduces f.
func (f Formula) String() string {
	var b strings.Builder
	for _, sym := range f.Symbols() {
		fmt.Fprintf(&b, "%s(%d)", sym, f.counts[sym])
	}
	return b.String()
}
