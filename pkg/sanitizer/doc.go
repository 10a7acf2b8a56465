// Package sanitizer provides small helpers for cleaning text that arrives
// from forms, batch files and terminal prompts before it reaches the
// validator.
//
// Helpers are plain functions over strings and numbers, so they combine
// with Apply and Compose into pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.Trim,
//	)
//	name := clean(rawName)
//
// KeepMatching retains only the substrings of a text that match a pattern,
// and Fold produces a case-folded key for case-insensitive comparison.
//
// The package is stateless and goroutine-safe.
package sanitizer
