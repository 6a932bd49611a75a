package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// headerSeparatorLen is the length of the separator line below section headers.
const headerSeparatorLen = 40

// ErrUnsupportedFormat is returned for an --output value other than table, json or ndjson.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// addOutputFlag registers --output. An empty value means the configured default.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", "",
		"Output format: table, json, or ndjson (default from output.default_format)")
}

// envForceColor forces colored output like --color.
const envForceColor = "FORCE_COLOR"

// outputMode picks how table output is rendered from --plain, --no-color,
// --color, FORCE_COLOR and the terminal. --no-color beats FORCE_COLOR.
func outputMode(cmd *cobra.Command) tui.OutputMode {
	plain, _ := cmd.Flags().GetBool("plain")
	noColor, _ := cmd.Flags().GetBool("no-color")
	forceColor, _ := cmd.Flags().GetBool("color")
	forceColor = !noColor && (forceColor || os.Getenv(envForceColor) != "")

	mode := tui.DetectOutputMode(forceColor, noColor, plain)
	if forceColor && mode != tui.OutputModePlain {
		// lipgloss strips colors when stdout is not a terminal.
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	return mode
}

// resolveOutputFormat returns the effective format for an --output value.
func resolveOutputFormat(flag string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, flag)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// writeNDJSON writes one compact JSON object per line. Broken pipes are
// not errors so output can be piped to head.
func writeNDJSON[T any](w io.Writer, items []T) error {
	encoder := json.NewEncoder(w)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			if isBrokenPipe(err) {
				return nil
			}
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}

// isBrokenPipe checks if an error is a broken pipe error (SIGPIPE).
// This occurs when output is piped to commands like `head` that close the pipe early.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return strings.Contains(err.Error(), "broken pipe")
}

// listEnvelope is the JSON shape of a list command.
type listEnvelope[T any] struct {
	Items      []T                        `json:"items"`
	TotalCount int                        `json:"total_count"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
}

// renderList writes items as json or ndjson. Table output is left to the caller.
func renderList[T any](w io.Writer, format string, items []T, total int, meta *pagination.PaginationMeta) error {
	if items == nil {
		items = []T{}
	}
	switch format {
	case config.FormatJSON:
		return writeJSON(w, listEnvelope[T]{Items: items, TotalCount: total, Pagination: meta})
	case config.FormatNDJSON:
		return writeNDJSON(w, items)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// writePageHint tells table readers that more pages exist.
func writePageHint(w io.Writer, meta *pagination.PaginationMeta) {
	if meta == nil || meta.TotalPages <= 1 {
		return
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d total).", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	if meta.HasNext {
		fmt.Fprintf(w, " Use --page %d to see more.", meta.CurrentPage+1)
	}
	fmt.Fprintln(w)
}
