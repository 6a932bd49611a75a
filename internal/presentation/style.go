package presentation

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecodash/internal/catalog"
)

// Style is a badge token: a light background with dark text.
type Style struct {
	// Class is the utility class pair, e.g. "bg-green-100 text-green-800".
	Class      string `json:"class"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Lipgloss returns the badge style for terminal rendering.
func (s Style) Lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Background)).
		Foreground(lipgloss.Color(s.Foreground)).
		Padding(0, 1)
}

// Render draws text as a badge.
func (s Style) Render(text string) string {
	return s.Lipgloss().Render(text)
}

//nolint:gochecknoglobals // Read-only badge palette.
var (
	badgeGreen  = Style{Class: "bg-green-100 text-green-800", Background: "#dcfce7", Foreground: "#166534"}
	badgeYellow = Style{Class: "bg-yellow-100 text-yellow-800", Background: "#fef9c3", Foreground: "#854d0e"}
	badgeRed    = Style{Class: "bg-red-100 text-red-800", Background: "#fee2e2", Foreground: "#991b1b"}
	badgeBlue   = Style{Class: "bg-blue-100 text-blue-800", Background: "#dbeafe", Foreground: "#1e40af"}
	badgePurple = Style{Class: "bg-purple-100 text-purple-800", Background: "#f3e8ff", Foreground: "#6b21a8"}
	badgeIndigo = Style{Class: "bg-indigo-100 text-indigo-800", Background: "#e0e7ff", Foreground: "#3730a3"}

	// NeutralStyle is the fallback badge for unrecognized labels.
	NeutralStyle = Style{Class: "bg-gray-100 text-gray-800", Background: "#f3f4f6", Foreground: "#1f2937"}
)

// DifficultyStyle returns the badge of a difficulty. Matching is case-insensitive.
func DifficultyStyle(d catalog.Difficulty) Style {
	switch catalog.ParseDifficulty(string(d)) {
	case catalog.DifficultyEasy:
		return badgeGreen
	case catalog.DifficultyMedium:
		return badgeYellow
	case catalog.DifficultyHard:
		return badgeRed
	default:
		return NeutralStyle
	}
}

// ImpactStyle returns the badge of an impact level. Matching is case-insensitive.
func ImpactStyle(i catalog.Impact) Style {
	switch catalog.ParseImpact(string(i)) {
	case catalog.ImpactLow:
		return badgeBlue
	case catalog.ImpactMedium:
		return badgePurple
	case catalog.ImpactHigh:
		return badgeIndigo
	default:
		return NeutralStyle
	}
}
