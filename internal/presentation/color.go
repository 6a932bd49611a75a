package presentation

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecodash/internal/catalog"
)

// Color is a named accent color.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Lipgloss returns the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

// Style returns a bold foreground style in this color.
func (c Color) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Lipgloss()).Bold(true)
}

// Accent colors.
//
//nolint:gochecknoglobals // Read-only palette.
var (
	Emerald500 = Color{Name: "emerald-500", Hex: "#10b981"}
	Violet500  = Color{Name: "violet-500", Hex: "#8b5cf6"}
	Blue500    = Color{Name: "blue-500", Hex: "#3b82f6"}
	Amber500   = Color{Name: "amber-500", Hex: "#f59e0b"}
	Sky500     = Color{Name: "sky-500", Hex: "#0ea5e9"}
	Cyan600    = Color{Name: "cyan-600", Hex: "#0891b2"}
	Lime600    = Color{Name: "lime-600", Hex: "#65a30d"}
	Green600   = Color{Name: "green-600", Hex: "#16a34a"}
	Gray500    = Color{Name: "gray-500", Hex: "#6b7280"}
)

// ChallengeCategoryColor returns the accent of a challenge category.
func ChallengeCategoryColor(c catalog.ChallengeCategory) Color {
	switch c {
	case catalog.ChallengeFood:
		return Emerald500
	case catalog.ChallengeWaste:
		return Violet500
	case catalog.ChallengeTransport:
		return Blue500
	case catalog.ChallengeEnergy:
		return Amber500
	case catalog.ChallengeWater:
		return Sky500
	default:
		return Gray500
	}
}

// EventCategoryColor returns the map pin color of an event category.
func EventCategoryColor(c catalog.EventCategory) Color {
	switch c {
	case catalog.EventCleanup:
		return Cyan600
	case catalog.EventGardening:
		return Lime600
	case catalog.EventPlanting:
		return Green600
	case catalog.EventEducation:
		return Violet500
	default:
		return Gray500
	}
}

// EventCategoryGlyph returns the map pin icon of an event category.
func EventCategoryGlyph(c catalog.EventCategory) string {
	switch c {
	case catalog.EventCleanup:
		return "🧹"
	case catalog.EventGardening:
		return "🌱"
	case catalog.EventPlanting:
		return "🌳"
	case catalog.EventEducation:
		return "📚"
	default:
		return "📍"
	}
}
