package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every view.
const (
	ColorHeader    = lipgloss.Color("#059669") // emerald-600
	ColorAccent    = lipgloss.Color("#10b981") // emerald-500
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorBorder    = lipgloss.Color("240")
	ColorOK        = lipgloss.Color("#16a34a")
	ColorWarning   = lipgloss.Color("#f59e0b")
	ColorCritical  = lipgloss.Color("#dc2626")
	ColorHighlight = lipgloss.Color("229")
	ColorSelected  = lipgloss.Color("57")
)

// Icons.
const (
	IconLeaf       = "🌿"
	IconCart       = "🛒"
	IconStar       = "★"
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconExpanded   = "▾"
	IconCollapsed  = "▸"
	IconCursor     = "▌"
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	TitleStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Background(ColorSelected)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	ColumnHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true)
)
