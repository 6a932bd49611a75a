package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/presentation"
	"github.com/rshade/ecodash/internal/query"
	"github.com/rshade/ecodash/internal/tui"
)

const noProductsMessage = "No products found matching your criteria"

// newProductsCmd creates the products command group.
func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Sustainable marketplace"}
	cmd.AddCommand(NewProductsListCmd())
	return cmd
}

// productsListParams holds the parameters for the products list command execution.
type productsListParams struct {
	query       queryFlags
	sort        string
	pagination  pagination.PaginationParams
	output      string
	interactive bool
}

// NewProductsListCmd creates the "products list" command.
func NewProductsListCmd() *cobra.Command {
	var params productsListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse sustainable products",
		Long: `List marketplace products filtered by category and name, then sorted.

Sort modes:
  popular     rating x reviews, highest first (default)
  price-low   cheapest first
  price-high  most expensive first
  eco-score   greenest first

Defaults for --category and --sort come from the marketplace section of the
config file. With --interactive, opens a browser:
  - '/' to search, 'c' to cycle category, 's' to cycle sort
  - 'a' to add the selected product to the cart
  - Enter for details, q to quit`,
		Example: `  # Most popular first
  ecodash products list

  # Cheapest kitchen products
  ecodash products list --category kitchen --sort price-low

  # Greenest products as JSON
  ecodash products list --sort eco-score --output json

  # Browse interactively
  ecodash products list --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeProductsList(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.query.category, "category", "", "Category to show, or 'all' (default from config)")
	cmd.Flags().StringVar(&params.query.search, "search", "", "Case-insensitive text to find in product names")
	cmd.Flags().StringVar(&params.sort, "sort", "", "Sort: popular, price-low, price-high, eco-score (default from config)")
	pagination.AddFlags(cmd, &params.pagination)
	addOutputFlag(cmd, &params.output)
	cmd.Flags().BoolVar(&params.interactive, "interactive", false, "Open the interactive product browser")

	return cmd
}

// productsQuery merges the flags over the configured marketplace defaults.
func productsQuery(params productsListParams) query.Params {
	p := config.GetGlobalConfig().Marketplace.Params()
	if params.query.category != "" {
		p.Category = params.query.category
	}
	if params.sort != "" {
		p.Sort = query.ParseSortMode(params.sort)
	}
	p.Search = params.query.search
	return p
}

func executeProductsList(cmd *cobra.Command, params productsListParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	q := productsQuery(params)
	if params.sort != "" && string(q.Sort) != strings.ToLower(strings.TrimSpace(params.sort)) {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "products_list").
			Str("sort", params.sort).
			Msg("unknown sort mode, using popular")
	}

	if params.interactive {
		return runInteractiveProducts(q)
	}

	matched := applyQuery(ctx, "products_list", catalog.Products(), q, query.Products)
	page, meta, err := paginate(ctx, "products_list", params.pagination, matched)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format != config.FormatTable {
		return renderList(w, format, page, len(matched), meta)
	}

	if err = renderProductsTable(w, page, q.Sort, outputMode(cmd) != tui.OutputModePlain); err != nil {
		return err
	}
	writePageHint(w, meta)
	return nil
}

func runInteractiveProducts(q query.Params) error {
	model := tui.NewProductsViewModel(catalog.Products(), q)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive products TUI: %w", err)
	}
	return nil
}

// renderProductsTable renders products as a table. Styled output colors the
// eco-score by tier.
func renderProductsTable(w io.Writer, products []catalog.Product, sort query.SortMode, styled bool) error {
	if len(products) == 0 {
		fmt.Fprintln(w, noProductsMessage)
		return nil
	}

	fmt.Fprintf(w, "Sorted by: %s\n\n", sort.Label())

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tREVIEWS\tECO-SCORE\tTIER")
	fmt.Fprintln(tw, "--\t----\t--------\t-----\t------\t-------\t---------\t----")
	for _, p := range products {
		tier := presentation.EcoScoreTier(p.EcoScore)
		tierLabel := tier.String()
		if styled {
			// Tier is the last column so escape codes do not skew alignment.
			tierLabel = tier.Style().Lipgloss().Render(tierLabel)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%.2f\t%.1f\t%d\t%.1f\t%s\n",
			p.ID, p.Name, p.Category.DisplayName(), p.Price, p.Rating, p.Reviews, p.EcoScore, tierLabel)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
