package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/presentation"
)

const (
	catalogTitleWidth = 34
	historyBarWidth   = 30
)

// RenderChallengeList renders challenge cards for styled output.
func RenderChallengeList(challenges []catalog.Challenge) string {
	if len(challenges) == 0 {
		return SubtleStyle.Render("No challenges found matching your criteria") + "\n"
	}

	var sb strings.Builder
	for _, c := range challenges {
		accent := presentation.ChallengeCategoryColor(c.Category).Style()
		sb.WriteString(accent.Render("┃ "))
		sb.WriteString(ValueStyle.Render(fmt.Sprintf("%-*s", catalogTitleWidth, truncate(c.Title, catalogTitleWidth))))
		sb.WriteString(" ")
		sb.WriteString(presentation.DifficultyStyle(c.Difficulty).Render(string(c.Difficulty)))
		sb.WriteString(" ")
		sb.WriteString(presentation.ImpactStyle(c.Impact).Render(string(c.Impact) + " Impact"))
		sb.WriteString("\n")
		sb.WriteString(accent.Render("┃ "))
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("%s · %s · %s participants",
			c.Category, c.Duration, footprint.FormatNumber(int64(c.Participants)))))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderActiveChallenges renders progress bars for the user's challenges in progress.
func RenderActiveChallenges(challenges []catalog.ActiveChallenge) string {
	if len(challenges) == 0 {
		return SubtleStyle.Render("No active challenges") + "\n"
	}

	var sb strings.Builder
	for _, c := range challenges {
		filled := min(max(c.Progress, 0), 100) * historyBarWidth / 100
		bar := OKStyle.Render(strings.Repeat("█", filled)) +
			SubtleStyle.Render(strings.Repeat("░", historyBarWidth-filled))
		fmt.Fprintf(&sb, "%s %s %3d%%  %s\n",
			presentation.ChallengeCategoryColor(c.Category).Style().Render("●"),
			ValueStyle.Render(fmt.Sprintf("%-*s", catalogTitleWidth, truncate(c.Title, catalogTitleWidth))),
			c.Progress, bar)
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  %d days left", c.DaysLeft)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderEventList renders community events with their map pin glyphs.
func RenderEventList(events []catalog.CommunityEvent) string {
	if len(events) == 0 {
		return SubtleStyle.Render("No events found matching your criteria") + "\n"
	}

	var sb strings.Builder
	for _, e := range events {
		pin := presentation.EventCategoryColor(e.Category).Style()
		sb.WriteString(presentation.EventCategoryGlyph(e.Category))
		sb.WriteString(" ")
		sb.WriteString(pin.Render(e.Title))
		sb.WriteString("\n   ")
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%s at %s", e.Date, e.Time)))
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s · %d attending", e.Location, e.Participants)))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderProfile renders the profile page: stats, badges and carbon history.
func RenderProfile(
	p catalog.UserProfile,
	badges []catalog.Badge,
	history []catalog.MonthlyImpact,
	activity []catalog.Activity,
) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("%s · %s · member since %s", p.Email, p.Location, p.JoinDate)))
	sb.WriteString("\n\n")

	writeDetailLine(&sb, "Carbon", p.Stats.CarbonSaved+" saved")
	writeDetailLine(&sb, "Water", p.Stats.WaterSaved+" saved")
	writeDetailLine(&sb, "Trees", fmt.Sprintf("%d planted", p.Stats.Trees))
	writeDetailLine(&sb, "Points", footprint.FormatNumber(int64(p.Stats.EcoPoints)))
	writeDetailLine(&sb, "Challenges",
		fmt.Sprintf("%d active, %d completed", p.Stats.ActiveChallenges, p.Stats.CompletedChallenges))

	if len(badges) > 0 {
		sb.WriteString("\n")
		sb.WriteString(HeaderStyle.Render("Badges"))
		sb.WriteString("\n")
		for _, b := range badges {
			fmt.Fprintf(&sb, "%s %s %s\n", b.Icon, ValueStyle.Render(b.Name), SubtleStyle.Render(b.Description))
		}
	}

	if len(history) > 0 {
		sb.WriteString("\n")
		sb.WriteString(HeaderStyle.Render("Carbon History"))
		sb.WriteString("\n")
		sb.WriteString(renderHistory(history))
	}

	if len(activity) > 0 {
		sb.WriteString("\n")
		sb.WriteString(HeaderStyle.Render("Recent Activity"))
		sb.WriteString("\n")
		for _, a := range activity {
			fmt.Fprintf(&sb, "%s %s\n", ValueStyle.Render(a.Title), SubtleStyle.Render(a.When))
		}
	}
	return sb.String()
}

func renderHistory(history []catalog.MonthlyImpact) string {
	peak := 0.0
	for _, h := range history {
		peak = max(peak, h.CarbonKg)
	}

	var sb strings.Builder
	for _, h := range history {
		width := 0
		if peak > 0 {
			width = int(h.CarbonKg / peak * historyBarWidth)
		}
		fmt.Fprintf(&sb, "%-4s %s %s\n",
			h.Month,
			OKStyle.Render(strings.Repeat("█", width)),
			SubtleStyle.Render(footprint.FormatKg(h.CarbonKg)))
	}
	return sb.String()
}
