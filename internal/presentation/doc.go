// Package presentation maps catalog labels to display tokens.
//
// Each token carries the class or hex value used by the web dashboard and a
// lipgloss style for terminal rendering. All lookups are total: labels
// outside a known set resolve to a neutral gray token.
package presentation
