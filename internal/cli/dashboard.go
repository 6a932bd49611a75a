package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/presentation"
	"github.com/rshade/ecodash/internal/query"
	"github.com/rshade/ecodash/internal/tui"
)

const (
	// dashboardTopProducts is the number of products shown on the dashboard.
	dashboardTopProducts = 3

	trendBarWidth = 30
	aqiGaugeWidth = 25
)

// dashboardOutput is the JSON shape of the dashboard command.
type dashboardOutput struct {
	Stats            []catalog.Stat            `json:"stats"`
	Footprint        dashboardFootprint        `json:"footprint"`
	CarbonTrend      []catalog.MonthlyImpact   `json:"carbon_trend"`
	Breakdown        []catalog.FootprintShare  `json:"footprint_breakdown"`
	Environment      dashboardEnvironment      `json:"environment"`
	ActiveChallenges []catalog.ActiveChallenge `json:"active_challenges"`
	Events           []catalog.CommunityEvent  `json:"events"`
	TopProducts      []catalog.Product         `json:"top_products"`
}

// dashboardEnvironment is the local conditions panel.
type dashboardEnvironment struct {
	AirQuality catalog.AirQuality       `json:"air_quality"`
	Level      string                   `json:"aqi_level"`
	Color      presentation.Color       `json:"aqi_color"`
	Conditions []catalog.LocalCondition `json:"local_conditions"`
}

// dashboardFootprint is the footprint headline.
type dashboardFootprint struct {
	WeeklyKg   float64 `json:"weekly_kg"`
	AnnualKg   float64 `json:"annual_kg"`
	AnnualTons int64   `json:"annual_tons"`
}

// NewDashboardCmd creates the "dashboard" command: the footprint headline,
// active challenges, upcoming events and the greenest products on one screen.
func NewDashboardCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Everything at a glance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeDashboard(cmd, output)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func executeDashboard(cmd *cobra.Command, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	out, err := buildDashboard(ctx, config.GetGlobalConfig())
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "dashboard").
		Dur("duration_ms", time.Since(start)).
		Msg("dashboard assembled")

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, out)
	case config.FormatNDJSON:
		return writeNDJSON(w, []dashboardOutput{out})
	default:
		return renderDashboardTable(w, out, outputMode(cmd) != tui.OutputModePlain)
	}
}

// buildDashboard gathers each panel concurrently. Every goroutine writes a
// distinct field of the result.
func buildDashboard(ctx context.Context, cfg *config.Config) (dashboardOutput, error) {
	var out dashboardOutput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		est := footprint.Estimate(cfg.Footprint.Defaults)
		out.Footprint = dashboardFootprint{
			WeeklyKg:   est.Total,
			AnnualKg:   est.Annual(),
			AnnualTons: est.AnnualTons(),
		}
		return gctx.Err()
	})
	g.Go(func() error {
		out.Stats = catalog.DashboardStats()
		out.CarbonTrend = catalog.CarbonTrend()
		out.Breakdown = catalog.FootprintBreakdown()
		return gctx.Err()
	})
	g.Go(func() error {
		aq := catalog.AirQualityReading()
		level := presentation.AQILevelOf(aq.AQI)
		out.Environment = dashboardEnvironment{
			AirQuality: aq,
			Level:      level.String(),
			Color:      presentation.AQIStyle(aq.AQI),
			Conditions: catalog.LocalConditions(),
		}
		return gctx.Err()
	})
	g.Go(func() error {
		out.ActiveChallenges = catalog.ActiveChallenges()
		return gctx.Err()
	})
	g.Go(func() error {
		out.Events = query.Events(catalog.CommunityEvents(), query.DefaultParams())
		return gctx.Err()
	})
	g.Go(func() error {
		q := cfg.Marketplace.Params()
		q.Sort = query.SortEcoScore
		products := query.Products(catalog.Products(), q)
		out.TopProducts = products[:min(dashboardTopProducts, len(products))]
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return dashboardOutput{}, fmt.Errorf("building dashboard: %w", err)
	}
	return out, nil
}

// renderDashboardTable writes every panel as text. styled colors the AQI
// level and the breakdown swatches.
func renderDashboardTable(w io.Writer, out dashboardOutput, styled bool) error {
	fmt.Fprintln(w, "ECODASH")
	fmt.Fprintln(w, strings.Repeat("=", headerSeparatorLen))
	stats := make([]string, 0, len(out.Stats))
	for _, s := range out.Stats {
		stats = append(stats, fmt.Sprintf("%s: %s", s.Title, s.Value))
	}
	fmt.Fprintln(w, strings.Join(stats, "  |  "))
	fmt.Fprintf(w, "Footprint: %s per week, %s per year (~%d metric tons)\n\n",
		footprint.FormatKg(out.Footprint.WeeklyKg),
		footprint.FormatKg(out.Footprint.AnnualKg),
		out.Footprint.AnnualTons)

	fmt.Fprintln(w, "MONTHLY CARBON FOOTPRINT")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	writeTrend(w, out.CarbonTrend)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "FOOTPRINT BREAKDOWN")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	for _, s := range out.Breakdown {
		swatch := "●"
		if styled {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(swatch)
		}
		fmt.Fprintf(w, "%s %-10s %3d%%\n", swatch, s.Name, s.Percent)
	}

	fmt.Fprintln(w)
	writeEnvironment(w, out.Environment, styled)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ACTIVE CHALLENGES")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	for _, c := range out.ActiveChallenges {
		fmt.Fprintf(w, "%-30s %3d%%  %d days left\n", c.Title, c.Progress, c.DaysLeft)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "UPCOMING EVENTS")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	if len(out.Events) == 0 {
		fmt.Fprintln(w, noEventsMessage)
	}
	for _, e := range out.Events {
		fmt.Fprintf(w, "%s  %s (%s)\n", e.Date, e.Title, e.Location)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "GREENEST PRODUCTS")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	if len(out.TopProducts) == 0 {
		fmt.Fprintln(w, noProductsMessage)
	}
	for _, p := range out.TopProducts {
		fmt.Fprintf(w, "%.1f  %s ($%.2f)\n", p.EcoScore, p.Name, p.Price)
	}
	return nil
}

func writeTrend(w io.Writer, trend []catalog.MonthlyImpact) {
	peak := 0.0
	for _, m := range trend {
		peak = max(peak, m.CarbonKg)
	}
	for _, m := range trend {
		width := 0
		if peak > 0 {
			width = int(m.CarbonKg / peak * trendBarWidth)
		}
		fmt.Fprintf(w, "%-4s %-*s %s kg\n", m.Month, trendBarWidth, strings.Repeat("█", width),
			footprint.FormatNumber(footprint.Round(m.CarbonKg)))
	}
}

func writeEnvironment(w io.Writer, env dashboardEnvironment, styled bool) {
	fmt.Fprintln(w, "LOCAL ENVIRONMENT")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))

	tiles := make([]string, 0, len(env.Conditions))
	for _, c := range env.Conditions {
		tiles = append(tiles, fmt.Sprintf("%s: %s", c.Name, c.Value))
	}
	fmt.Fprintln(w, strings.Join(tiles, "  |  "))

	aq := env.AirQuality
	level := env.Level
	if styled {
		level = env.Color.Style().Render(level)
	}
	filled := int(presentation.AQIGaugeFraction(aq.AQI) * aqiGaugeWidth)
	fmt.Fprintf(w, "Air Quality Index: %d (%s), %s\n", aq.AQI, level, aq.Station)
	fmt.Fprintf(w, "[%s%s] %d/%d\n", strings.Repeat("█", filled), strings.Repeat("░", aqiGaugeWidth-filled),
		aq.AQI, presentation.AQIScaleMax)
	p := aq.Pollutants
	fmt.Fprintf(w, "PM2.5 %d µg/m³  PM10 %d µg/m³  Ozone %d ppb  NO₂ %d ppb\n", p.PM25, p.PM10, p.O3, p.NO2)
}
