package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/query"
	"github.com/rshade/ecodash/internal/tui"
)

const noChallengesMessage = "No challenges found matching your criteria"

// newChallengesCmd creates the challenges command group.
func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "challenges", Short: "Eco challenges"}
	cmd.AddCommand(NewChallengesListCmd(), NewChallengesMineCmd())
	return cmd
}

// challengesListParams holds the parameters for the challenges list command execution.
type challengesListParams struct {
	query      queryFlags
	pagination pagination.PaginationParams
	output     string
}

// NewChallengesListCmd creates the "challenges list" command.
func NewChallengesListCmd() *cobra.Command {
	var params challengesListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse eco challenges",
		Long: `List eco challenges, optionally narrowed by category and a search term.

The search matches titles and descriptions, ignoring case. Categories:
food, waste, transport, energy, water (or "all").`,
		Example: `  # All challenges
  ecodash challenges list

  # Food challenges mentioning meat
  ecodash challenges list --category food --search meat

  # Second page of two
  ecodash challenges list --page 2 --page-size 2 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeChallengesList(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.query.category, "category", query.CategoryAll, "Category to show, or 'all'")
	cmd.Flags().StringVar(&params.query.search, "search", "", "Case-insensitive text to find in title or description")
	pagination.AddFlags(cmd, &params.pagination)
	addOutputFlag(cmd, &params.output)

	return cmd
}

func executeChallengesList(cmd *cobra.Command, params challengesListParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	matched := applyQuery(ctx, "challenges_list", catalog.Challenges(), params.query.params(), query.Challenges)
	page, meta, err := paginate(ctx, "challenges_list", params.pagination, matched)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).Str("operation", "challenges_list").
		Int("challenge_count", len(page)).
		Msg("challenges listed")

	w := cmd.OutOrStdout()
	if format != config.FormatTable {
		return renderList(w, format, page, len(matched), meta)
	}

	if outputMode(cmd) != tui.OutputModePlain {
		fmt.Fprint(w, tui.RenderChallengeList(page))
	} else if err = renderChallengesTable(w, page); err != nil {
		return err
	}
	writePageHint(w, meta)
	return nil
}

func renderChallengesTable(w io.Writer, challenges []catalog.Challenge) error {
	if len(challenges) == 0 {
		fmt.Fprintln(w, noChallengesMessage)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tIMPACT\tDURATION\tPARTICIPANTS")
	fmt.Fprintln(tw, "--\t-----\t--------\t----------\t------\t--------\t------------")
	for _, c := range challenges {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Title, c.Category, c.Difficulty, c.Impact, c.Duration,
			footprint.FormatNumber(int64(c.Participants)))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}

// myChallengesOutput is the JSON shape of "challenges mine".
type myChallengesOutput struct {
	Active    []catalog.ActiveChallenge    `json:"active"`
	Completed []catalog.CompletedChallenge `json:"completed"`
}

// myChallengeRow is one NDJSON line of "challenges mine".
type myChallengeRow struct {
	Status        string                    `json:"status"`
	ID            int                       `json:"id"`
	Title         string                    `json:"title"`
	Category      catalog.ChallengeCategory `json:"category"`
	Progress      int                       `json:"progress,omitempty"`
	DaysLeft      int                       `json:"days_left,omitempty"`
	CompletedDate string                    `json:"completed_date,omitempty"`
	ImpactSaved   string                    `json:"impact_saved,omitempty"`
}

// NewChallengesMineCmd creates the "challenges mine" command showing the
// user's active and completed challenges.
func NewChallengesMineCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Show your active and completed challenges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeChallengesMine(cmd, output)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func executeChallengesMine(cmd *cobra.Command, output string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	active := catalog.ActiveChallenges()
	completed := catalog.CompletedChallenges()
	w := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		return writeJSON(w, myChallengesOutput{Active: active, Completed: completed})
	case config.FormatNDJSON:
		return writeNDJSON(w, myChallengeRows(active, completed))
	}

	if outputMode(cmd) != tui.OutputModePlain {
		fmt.Fprintln(w, tui.HeaderStyle.Render("Active"))
		fmt.Fprint(w, tui.RenderActiveChallenges(active))
	} else {
		fmt.Fprintln(w, "ACTIVE")
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "TITLE\tCATEGORY\tPROGRESS\tDAYS LEFT")
		for _, c := range active {
			fmt.Fprintf(tw, "%s\t%s\t%d%%\t%d\n", c.Title, c.Category, c.Progress, c.DaysLeft)
		}
		if err = tw.Flush(); err != nil {
			return fmt.Errorf("flushing table writer: %w", err)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMPLETED")
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCATEGORY\tCOMPLETED\tSAVED")
	for _, c := range completed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Title, c.Category, c.CompletedDate, c.ImpactSaved)
	}
	if err = tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}

func myChallengeRows(active []catalog.ActiveChallenge, completed []catalog.CompletedChallenge) []myChallengeRow {
	rows := make([]myChallengeRow, 0, len(active)+len(completed))
	for _, c := range active {
		rows = append(rows, myChallengeRow{
			Status: "active", ID: c.ID, Title: c.Title, Category: c.Category,
			Progress: c.Progress, DaysLeft: c.DaysLeft,
		})
	}
	for _, c := range completed {
		rows = append(rows, myChallengeRow{
			Status: "completed", ID: c.ID, Title: c.Title, Category: c.Category,
			CompletedDate: c.CompletedDate, ImpactSaved: c.ImpactSaved,
		})
	}
	return rows
}
