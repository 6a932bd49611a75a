package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/tui"
)

// ErrMalformedAssignment is returned for a --set or --adjust value that is not field=number.
var ErrMalformedAssignment = errors.New("expected field=number")

// footprintParams holds the parameters for the footprint command execution.
type footprintParams struct {
	set         []string
	adjust      []string
	output      string
	interactive bool
}

// NewFootprintCmd creates the "footprint" command that estimates the weekly
// carbon footprint from lifestyle inputs.
//
// The starting inputs come from footprint.defaults in the config file.
// --set replaces a value; --adjust adds a delta and clamps at zero.
func NewFootprintCmd() *cobra.Command {
	var params footprintParams

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Estimate your carbon footprint",
		Long: `Estimate weekly and annual carbon emissions from transportation, home energy
and consumption habits.

All --set values are applied before --adjust deltas. Adjusted values never
drop below zero. Run "ecodash footprint fields" to list field names.

With --interactive, opens the calculator:
  - Tab/Shift+Tab to switch sections
  - Up/down to pick a field, +/- to step it
  - Enter to type a value, r to reset, q to quit`,
		Example: `  # Estimate with the configured defaults
  ecodash footprint

  # What if I drove 60 miles a week and flew 2 hours less?
  ecodash footprint --set carMiles=60 --adjust flightHours=-2

  # JSON for scripting
  ecodash footprint --output json

  # Edit the inputs interactively
  ecodash footprint --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeFootprint(cmd, params)
		},
	}

	cmd.Flags().StringArrayVar(&params.set, "set", []string{}, "Set a field (e.g., 'carMiles=60')")
	cmd.Flags().StringArrayVar(&params.adjust, "adjust", []string{}, "Add a delta to a field (e.g., 'flightHours=-2')")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().BoolVar(&params.interactive, "interactive", false, "Open the interactive calculator")

	cmd.AddCommand(newFootprintFieldsCmd())

	return cmd
}

func executeFootprint(cmd *cobra.Command, params footprintParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	baseline := config.GetGlobalConfig().Footprint.Defaults
	inputs, err := applyFootprintOverrides(baseline, params.set, params.adjust)
	if err != nil {
		return err
	}

	est := footprint.Estimate(inputs)
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "footprint").
		Int("set_count", len(params.set)).
		Int("adjust_count", len(params.adjust)).
		Float64("total_kg", est.Total).
		Msg("estimated footprint")

	if params.interactive {
		return runInteractiveFootprint(inputs)
	}

	switch format {
	case config.FormatJSON:
		out, buildErr := buildFootprintOutput(baseline, inputs)
		if buildErr != nil {
			return buildErr
		}
		return writeJSON(cmd.OutOrStdout(), out)
	case config.FormatNDJSON:
		return writeNDJSON(cmd.OutOrStdout(), footprintRows(est))
	}

	switch outputMode(cmd) {
	case tui.OutputModeInteractive, tui.OutputModeStyled:
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderFootprintSummary(inputs))
		return err
	case tui.OutputModePlain:
		fallthrough
	default:
		return renderFootprintTable(cmd.OutOrStdout(), inputs, est)
	}
}

// applyFootprintOverrides applies --set then --adjust assignments to in.
func applyFootprintOverrides(
	in footprint.LifestyleInputs,
	set, adjust []string,
) (footprint.LifestyleInputs, error) {
	for _, s := range set {
		f, v, err := parseAssignment(s)
		if err != nil {
			return in, fmt.Errorf("--set %s: %w", s, err)
		}
		if in, err = footprint.Set(in, f, v); err != nil {
			return in, fmt.Errorf("--set %s: %w", s, err)
		}
	}
	for _, a := range adjust {
		f, d, err := parseAssignment(a)
		if err != nil {
			return in, fmt.Errorf("--adjust %s: %w", a, err)
		}
		in = footprint.Adjust(in, f, d)
	}
	return in, nil
}

// parseAssignment splits "field=number".
func parseAssignment(s string) (footprint.Field, int, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, ErrMalformedAssignment
	}
	f, err := footprint.ParseField(key)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a whole number", ErrMalformedAssignment, raw)
	}
	return f, v, nil
}

func runInteractiveFootprint(inputs footprint.LifestyleInputs) error {
	model := tui.NewFootprintModel(inputs)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive footprint TUI: %w", err)
	}
	return nil
}

// footprintOutput is the JSON shape of the footprint command.
type footprintOutput struct {
	Inputs          footprint.LifestyleInputs   `json:"inputs"`
	Weekly          footprint.CarbonEstimate    `json:"weekly_kg"`
	AnnualKg        float64                     `json:"annual_kg"`
	AnnualTons      int64                       `json:"annual_tons"`
	ScalePercent    float64                     `json:"scale_percent"`
	GlobalAverageKg float64                     `json:"global_average_kg"`
	DeltaKg         float64                     `json:"delta_from_defaults_kg"`
	Equivalencies   footprint.EquivalencyOutput `json:"equivalencies"`
	Recommendations []footprint.Recommendation  `json:"recommendations"`
}

func buildFootprintOutput(baseline, inputs footprint.LifestyleInputs) (footprintOutput, error) {
	est := footprint.Estimate(inputs)
	eq, err := footprint.Equivalencies(est.Annual())
	if err != nil {
		return footprintOutput{}, fmt.Errorf("calculating equivalencies: %w", err)
	}
	return footprintOutput{
		Inputs:          inputs,
		Weekly:          est,
		AnnualKg:        est.Annual(),
		AnnualTons:      est.AnnualTons(),
		ScalePercent:    est.ScalePercent(),
		GlobalAverageKg: footprint.GlobalAverageKg,
		DeltaKg:         est.Annual() - footprint.Estimate(baseline).Annual(),
		Equivalencies:   eq,
		Recommendations: footprint.Recommendations(),
	}, nil
}

// footprintRow is one NDJSON line: a section or the total.
type footprintRow struct {
	Section  string  `json:"section"`
	WeeklyKg float64 `json:"weekly_kg"`
	AnnualKg float64 `json:"annual_kg"`
}

func footprintRows(est footprint.CarbonEstimate) []footprintRow {
	rows := make([]footprintRow, 0, len(footprint.Sections())+1)
	for _, sf := range footprint.Sections() {
		weekly := est.Section(sf.Section)
		rows = append(rows, footprintRow{
			Section:  string(sf.Section),
			WeeklyKg: weekly,
			AnnualKg: weekly * footprint.WeeksPerYear,
		})
	}
	return append(rows, footprintRow{Section: "total", WeeklyKg: est.Total, AnnualKg: est.Annual()})
}

// renderFootprintTable renders the estimate as plain text.
func renderFootprintTable(w io.Writer, inputs footprint.LifestyleInputs, est footprint.CarbonEstimate) error {
	fmt.Fprintln(w, "CARBON FOOTPRINT")
	fmt.Fprintln(w, strings.Repeat("=", headerSeparatorLen))
	fmt.Fprintf(w, "Annual:  %s (~%d metric tons)\n",
		footprint.FormatKg(est.Annual()), est.AnnualTons())
	fmt.Fprintf(w, "Global average: %s\n\n", footprint.FormatKg(footprint.GlobalAverageKg))

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tFIELD\tVALUE\tWEEKLY KG")
	fmt.Fprintln(tw, "-------\t-----\t-----\t---------")
	for _, sf := range footprint.Sections() {
		fmt.Fprintf(tw, "%s\t\t\t%s\n", sf.Section.Title(),
			footprint.FormatNumber(footprint.Round(est.Section(sf.Section))))
		for _, f := range sf.Fields {
			info := f.Info()
			fmt.Fprintf(tw, "\t%s\t%d %s\t\n", info.Label, inputs.Get(f), info.Unit)
		}
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%s\n", footprint.FormatNumber(footprint.Round(est.Total)))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	eq, err := footprint.Equivalencies(est.Annual())
	if err != nil {
		return fmt.Errorf("calculating equivalencies: %w", err)
	}
	if !eq.IsEmpty {
		fmt.Fprintln(w)
		fmt.Fprintln(w, eq.DisplayText)
		fmt.Fprintln(w, eq.OffsetText)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "RECOMMENDATIONS")
	fmt.Fprintln(w, strings.Repeat("-", headerSeparatorLen))
	for _, r := range footprint.Recommendations() {
		fmt.Fprintf(w, "- %s: %s\n", r.Title, r.Description)
	}
	return nil
}

// newFootprintFieldsCmd lists the field names accepted by --set and --adjust.
func newFootprintFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List footprint field names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tSECTION\tUNIT\tSTEP\tDESCRIPTION")
			for _, f := range footprint.Fields() {
				info := f.Info()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", info.Key, info.Section, info.Unit, info.Step, info.Label)
			}
			return tw.Flush()
		},
	}
}
