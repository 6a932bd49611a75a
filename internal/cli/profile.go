package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/tui"
)

// profileOutput is the JSON shape of the profile command.
type profileOutput struct {
	Profile       catalog.UserProfile     `json:"profile"`
	Badges        []catalog.Badge         `json:"badges"`
	ImpactHistory []catalog.MonthlyImpact `json:"impact_history"`
	Activity      []catalog.Activity      `json:"activity"`
}

// NewProfileCmd creates the "profile" command showing the user's stats,
// badges, carbon history and recent activity.
func NewProfileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your sustainability profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeProfile(cmd, output)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func executeProfile(cmd *cobra.Command, output string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	out := profileOutput{
		Profile:       catalog.Profile(),
		Badges:        catalog.Badges(),
		ImpactHistory: catalog.ImpactHistory(),
		Activity:      catalog.ActivityFeed(),
	}
	w := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		return writeJSON(w, out)
	case config.FormatNDJSON:
		return writeNDJSON(w, []profileOutput{out})
	}

	if outputMode(cmd) != tui.OutputModePlain {
		fmt.Fprint(w, tui.RenderProfile(out.Profile, out.Badges, out.ImpactHistory, out.Activity))
		return nil
	}
	return renderProfileTable(w, out)
}

func renderProfileTable(w io.Writer, out profileOutput) error {
	p := out.Profile
	fmt.Fprintf(w, "%s <%s>\n%s, member since %s\n\n", p.Name, p.Email, p.Location, p.JoinDate)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Carbon saved:\t%s\n", p.Stats.CarbonSaved)
	fmt.Fprintf(tw, "Water saved:\t%s\n", p.Stats.WaterSaved)
	fmt.Fprintf(tw, "Trees planted:\t%d\n", p.Stats.Trees)
	fmt.Fprintf(tw, "Eco points:\t%s\n", footprint.FormatNumber(int64(p.Stats.EcoPoints)))
	fmt.Fprintf(tw, "Challenges:\t%d active, %d completed\n", p.Stats.ActiveChallenges, p.Stats.CompletedChallenges)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "BADGES")
	for _, b := range out.Badges {
		fmt.Fprintf(w, "%s %s - %s\n", b.Icon, b.Name, b.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "CARBON HISTORY")
	tw = tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for _, h := range out.ImpactHistory {
		fmt.Fprintf(tw, "%s\t%s\n", h.Month, footprint.FormatKg(h.CarbonKg))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "RECENT ACTIVITY")
	for _, a := range out.Activity {
		fmt.Fprintf(w, "- %s (%s)\n", a.Title, a.When)
	}
	return nil
}
