package presentation

import "github.com/charmbracelet/lipgloss"

// Tier is an eco-score band, strongest first.
type Tier int

// Eco-score tiers. Lower bounds are inclusive.
const (
	TierExcellent Tier = iota // score >= 9
	TierGood                  // score >= 7
	TierFair                  // score >= 5
	TierPoor
)

// Tier lower bounds.
const (
	excellentMin = 9.0
	goodMin      = 7.0
	fairMin      = 5.0
)

// EcoScoreTier buckets an eco-score. NaN falls into TierPoor.
func EcoScoreTier(score float64) Tier {
	switch {
	case score >= excellentMin:
		return TierExcellent
	case score >= goodMin:
		return TierGood
	case score >= fairMin:
		return TierFair
	default:
		return TierPoor
	}
}

// TextStyle is a foreground-only token such as "text-emerald-600".
type TextStyle struct {
	Class string `json:"class"`
	Hex   string `json:"hex"`
}

// Lipgloss returns the foreground style for terminal rendering.
func (s TextStyle) Lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Hex)).Bold(true)
}

// Style returns the text token of the tier.
func (t Tier) Style() TextStyle {
	switch t {
	case TierExcellent:
		return TextStyle{Class: "text-emerald-600", Hex: "#059669"}
	case TierGood:
		return TextStyle{Class: "text-green-600", Hex: "#16a34a"}
	case TierFair:
		return TextStyle{Class: "text-yellow-600", Hex: "#ca8a04"}
	default:
		return TextStyle{Class: "text-red-600", Hex: "#dc2626"}
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	default:
		return "poor"
	}
}

// EcoScoreStyle returns the text token for an eco-score.
func EcoScoreStyle(score float64) TextStyle {
	return EcoScoreTier(score).Style()
}
