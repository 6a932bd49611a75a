package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/query"
	"github.com/rshade/ecodash/internal/tui"
)

const noEventsMessage = "No events found matching your criteria"

// newEventsCmd creates the events command group.
func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "events", Short: "Community events"}
	cmd.AddCommand(NewEventsListCmd())
	return cmd
}

// eventsListParams holds the parameters for the events list command execution.
type eventsListParams struct {
	query      queryFlags
	pagination pagination.PaginationParams
	output     string
}

// NewEventsListCmd creates the "events list" command.
func NewEventsListCmd() *cobra.Command {
	var params eventsListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Find local environmental events",
		Long: `List community events such as cleanups and planting days.

Categories: cleanup, gardening, planting, education (or "all").
JSON output includes each event's coordinates.`,
		Example: `  # Everything nearby
  ecodash events list

  # Only cleanups
  ecodash events list --category cleanup

  # As newline-delimited JSON
  ecodash events list --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEventsList(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.query.category, "category", query.CategoryAll, "Category to show, or 'all'")
	cmd.Flags().StringVar(&params.query.search, "search", "", "Case-insensitive text to find in title or description")
	pagination.AddFlags(cmd, &params.pagination)
	addOutputFlag(cmd, &params.output)

	return cmd
}

func executeEventsList(cmd *cobra.Command, params eventsListParams) error {
	ctx := cmd.Context()

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	matched := applyQuery(ctx, "events_list", catalog.CommunityEvents(), params.query.params(), query.Events)
	page, meta, err := paginate(ctx, "events_list", params.pagination, matched)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format != config.FormatTable {
		return renderList(w, format, page, len(matched), meta)
	}

	if outputMode(cmd) != tui.OutputModePlain {
		fmt.Fprint(w, tui.RenderEventList(page))
	} else if err = renderEventsTable(w, page); err != nil {
		return err
	}
	writePageHint(w, meta)
	return nil
}

func renderEventsTable(w io.Writer, events []catalog.CommunityEvent) error {
	if len(events) == 0 {
		fmt.Fprintln(w, noEventsMessage)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tDATE\tTIME\tLOCATION\tATTENDING")
	fmt.Fprintln(tw, "--\t-----\t--------\t----\t----\t--------\t---------")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			e.ID, e.Title, e.Category.Title(), e.Date, e.Time, e.Location, e.Participants)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
