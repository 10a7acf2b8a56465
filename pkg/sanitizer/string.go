package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeLineBreaks converts CRLF and CR line endings to LF.
func NormalizeLineBreaks(s string) string {
	return lineBreakRegex.ReplaceAllString(s, "\n")
}

// Fold returns a case-folded form of s suitable as a comparison key.
// Unlike strings.ToLower it handles special cases such as the German sharp s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// KeepMatching returns the concatenation of every substring of s that
// matches re, discarding everything else.
func KeepMatching(s string, re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	return strings.Join(re.FindAllString(s, -1), "")
}

// FormInput is the cleanup applied to multi-line text typed into a form.
var FormInput = Compose(RemoveControlChars, NormalizeLineBreaks, Trim)
