// Package report renders GrowBuddy results for the terminal.
//
// A Printer styles headings and verdicts with lipgloss through a renderer
// bound to its writer, so colors are only emitted when the writer is a
// terminal that supports them. Output written to files, pipes or buffers is
// plain text.
package report
