package validator

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression with a human readable description.
// The zero value matches nothing.
type Pattern struct {
	Expr        string
	Description string
	re          *regexp.Regexp
}

// NewPattern compiles expr. The error wraps ErrInvalidPattern.
func NewPattern(expr, description string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return Pattern{Expr: expr, Description: description, re: re}, nil
}

// MustPattern is like NewPattern but panics on a bad expression.
func MustPattern(expr, description string) Pattern {
	p, err := NewPattern(expr, description)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s satisfies the pattern.
func (p Pattern) MatchString(s string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(s)
}

// FindAll returns every non-overlapping match in order of appearance.
// It never returns nil.
func (p Pattern) FindAll(s string) []string {
	if p.re == nil {
		return []string{}
	}
	matches := p.re.FindAllString(s, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// Regexp exposes the compiled expression for callers that need submatches.
func (p Pattern) Regexp() *regexp.Regexp {
	return p.re
}

func (p Pattern) String() string {
	return p.Expr
}

// Text-mining patterns. These are unanchored and meant for ExtractMatches.
var (
	PlantMentionPattern = MustPattern(
		`(?i)\b(?:flower|herb|succulent|vegetable|tree|plant|bloom|leaf|root|stem)\b`,
		"plant related keywords",
	)
	DateMentionPattern = MustPattern(`\d{4}-\d{2}-\d{2}`, "dates in YYYY-MM-DD form")
	NumberPattern      = MustPattern(`\b\d+(?:\.\d+)?\b`, "integer or decimal numbers")
)
