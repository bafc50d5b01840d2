// Package render formats tableaus, solutions and plot data for terminals.
//
// Output is styled with lipgloss; when stdout is not a terminal lipgloss
// drops the colours and the text stays plain, so the same functions serve
// the CLI, the TUI and golden-string tests.
package render
