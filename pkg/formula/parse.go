package formula

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed is returned when input text cannot be fully matched by the
// selected grammar.
var ErrMalformed = errors.New("malformed formula")

// The two grammars share one internal representation but are selected
// explicitly by the caller; the parser never guesses.
var (
	canonicalToken = regexp.MustCompile(`^(\d*)([A-Z][a-z]*)(?:\((-?\d+)\))?`)
	hillToken      = regexp.MustCompile(`^(?:\[(\d+)([A-Z][a-z]*)\]|([A-Z][a-z]*))(\d*)`)
)

// Parse reads the canonical grammar: a concatenation of Symbol(count)
// tokens, e.g. "C(6)H(12)O(6)". The symbol may carry a leading isotope mass
// number ("13C(2)"), the count may be negative, and an omitted count means
// 1. An empty string parses to the empty formula.
func Parse(text string) (Formula, error) {
	return parseTokens(text, func(rest string) (string, int, int, error) {
		m := canonicalToken.FindStringSubmatch(rest)
		if m == nil {
			return "", 0, 0, fmt.Errorf("%w: unexpected %q", ErrMalformed, rest)
		}
		n := 1
		if m[3] != "" {
			var err error
			if n, err = strconv.Atoi(m[3]); err != nil {
				return "", 0, 0, fmt.Errorf("%w: count %q: %v", ErrMalformed, m[3], err)
			}
		}
		return m[1] + m[2], n, len(m[0]), nil
	})
}

// ParseHill reads formulas produced by chemistry toolkits, e.g. "C6H12O6"
// or "[13C]2C4H12N". Tokens are either [massNumber]Symbol or a bare Symbol,
// optionally followed by a repeat count (omitted means 1). Isotope-labeled
// tokens are keyed with the mass number embedded in the symbol ("13C") so
// they never collide with the natural-abundance element.
func ParseHill(text string) (Formula, error) {
	return parseTokens(text, func(rest string) (string, int, int, error) {
		m := hillToken.FindStringSubmatch(rest)
		if m == nil {
			return "", 0, 0, fmt.Errorf("%w: unexpected %q", ErrMalformed, rest)
		}
		sym := m[3]
		if m[1] != "" {
			sym = m[1] + m[2]
		}
		n := 1
		if m[4] != "" {
			var err error
			if n, err = strconv.Atoi(m[4]); err != nil {
				return "", 0, 0, fmt.Errorf("%w: count %q: %v", ErrMalformed, m[4], err)
			}
		}
		return sym, n, len(m[0]), nil
	})
}

// parseTokens consumes text token by token. Every byte of the input must be
// covered by a token match, otherwise the text is rejected.
func parseTokens(text string, next func(rest string) (sym string, n, width int, err error)) (Formula, error) {
	counts := make(map[string]int)
	rest := text
	for rest != "" {
		sym, n, width, err := next(rest)
		if err != nil {
			return Formula{}, fmt.Errorf("%w in %q", err, text)
		}
		counts[sym] += n
		rest = rest[width:]
	}
	return Formula{counts: counts}, nil
}
