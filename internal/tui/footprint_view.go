package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecodash/internal/footprint"
)

const (
	gaugeWidth      = 40
	fieldLabelWidth = 32
	fieldValueWidth = 10
	percentScale    = 100
)

// RenderFootprintHeader renders the calculator title.
func RenderFootprintHeader() string {
	return TitleStyle.Render(IconLeaf + " Carbon Footprint Calculator")
}

// RenderFootprintDelta renders a signed annual change in kg with a direction
// arrow. Increases are warnings and decreases are good news.
func RenderFootprintDelta(deltaKg float64) string {
	rounded := footprint.Round(deltaKg)

	var icon, sign string
	var color lipgloss.Color
	switch {
	case rounded > 0:
		icon, sign, color = IconArrowUp, "+", ColorWarning
	case rounded < 0:
		icon, sign, color = IconArrowDown, "-", ColorOK
	default:
		icon, color = IconArrowRight, ColorMuted
	}

	magnitude := footprint.FormatNumber(int64(math.Abs(float64(rounded))))
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s kg/yr %s", sign, magnitude, icon))
}

// RenderGauge renders the annual footprint scale as a bar.
func RenderGauge(est footprint.CarbonEstimate) string {
	filled := int(math.Round(est.ScalePercent() / percentScale * gaugeWidth))
	color := ColorOK
	switch {
	case est.Annual() > footprint.GlobalAverageKg:
		color = ColorCritical
	case est.Annual() > footprint.TargetKg2050:
		color = ColorWarning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", gaugeWidth-filled))
	return fmt.Sprintf("0 %s %s kg", bar, footprint.FormatNumber(int64(footprint.ScaleMaxKg)))
}

// RenderAnnualSummary renders the headline annual figure, the gauge and the
// benchmark comparison.
func RenderAnnualSummary(est footprint.CarbonEstimate) string {
	var sb strings.Builder

	sb.WriteString(LabelStyle.Render("Annual footprint: "))
	sb.WriteString(ValueStyle.Render(footprint.FormatKg(est.Annual())))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf(" (~%d metric tons)", est.AnnualTons())))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Weekly total:     "))
	sb.WriteString(ValueStyle.Render(footprint.FormatKg(est.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(RenderGauge(est))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("Global average: %s kg   2050 target: %s kg",
		footprint.FormatNumber(int64(footprint.GlobalAverageKg)),
		footprint.FormatNumber(int64(footprint.TargetKg2050)))))
	return sb.String()
}

// RenderSection renders one calculator section. Collapsed sections show
// only their weekly total. focused is the highlighted row, or -1.
func RenderSection(
	sf footprint.SectionFields,
	inputs footprint.LifestyleInputs,
	est footprint.CarbonEstimate,
	expanded bool,
	focused int,
	editing string,
) string {
	var sb strings.Builder

	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%s %-16s", icon, sf.Section.Title())))
	sb.WriteString(ValueStyle.Render(footprint.FormatKg(est.Section(sf.Section))))
	sb.WriteString(SubtleStyle.Render(" /week"))
	sb.WriteString("\n")

	if !expanded {
		return sb.String()
	}

	for i, f := range sf.Fields {
		sb.WriteString(renderFieldRow(f, inputs.Get(f), i == focused, editing))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderFieldRow(f footprint.Field, value int, focused bool, editing string) string {
	info := f.Info()
	shown := footprint.FormatNumber(int64(value))
	if focused && editing != "" {
		shown = editing
	}

	label := truncate(info.Label, fieldLabelWidth)
	row := fmt.Sprintf("    %-*s %*s %-7s [-%d/+%d]",
		fieldLabelWidth, label, fieldValueWidth, shown, info.Unit, info.Step, info.Step)
	if focused {
		return SelectedStyle.Render(row)
	}
	return row
}

// RenderRecommendations renders the reduction tips.
func RenderRecommendations(recs []footprint.Recommendation) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("How to reduce your footprint"))
	for _, r := range recs {
		sb.WriteString("\n  ")
		sb.WriteString(ValueStyle.Render(r.Title))
		sb.WriteString(SubtleStyle.Render(" - " + r.Description))
	}
	return sb.String()
}

// RenderEquivalencies renders the real-world comparison of an annual total.
// Totals too small to compare render as "".
func RenderEquivalencies(annualKg float64) string {
	eq, err := footprint.Equivalencies(annualKg)
	if err != nil || eq.IsEmpty {
		return ""
	}
	return SubtleStyle.Render(eq.DisplayText + "\n" + eq.OffsetText)
}

// RenderFootprintSummary renders a non-interactive report of an estimate.
func RenderFootprintSummary(inputs footprint.LifestyleInputs) string {
	est := footprint.Estimate(inputs)

	var sb strings.Builder
	sb.WriteString(RenderFootprintHeader())
	sb.WriteString("\n\n")
	sb.WriteString(RenderAnnualSummary(est))
	sb.WriteString("\n\n")
	for _, sf := range footprint.Sections() {
		sb.WriteString(RenderSection(sf, inputs, est, true, -1, ""))
	}
	if eq := RenderEquivalencies(est.Annual()); eq != "" {
		sb.WriteString("\n")
		sb.WriteString(eq)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(RenderRecommendations(footprint.Recommendations()))
	return sb.String()
}

// RenderFootprintHelp renders the keyboard shortcut help text.
func RenderFootprintHelp(editing bool) string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"+/-: Step",
		"Tab: Next section",
		"Enter: Type value",
		"r: Reset",
		"q: Quit",
	}
	if editing {
		shortcuts = []string{"0-9: Type", "Enter: Apply", "Esc: Cancel"}
	}
	return HelpStyle.Render(strings.Join(shortcuts, " | "))
}
