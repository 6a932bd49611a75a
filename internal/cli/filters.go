package cli

import (
	"context"
	"fmt"

	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/query"
)

// applyQuery runs a list query and logs how many items it kept.
// Unknown categories and sort strings are not errors: they match nothing
// and sort by popularity respectively.
func applyQuery[T any](
	ctx context.Context,
	operation string,
	items []T,
	params query.Params,
	run func([]T, query.Params) []T,
) []T {
	log := logging.FromContext(ctx)

	result := run(items, params)
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", operation).
		Str("category", params.Category).
		Str("search", params.Search).
		Str("sort", string(params.Sort)).
		Int("before", len(items)).
		Int("after", len(result)).
		Msg("applied list query")

	if len(result) == 0 && len(items) > 0 {
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", operation).
			Int("original_count", len(items)).
			Msg("no items match query criteria")
	}

	return result
}

// paginate validates the pagination flags and returns the requested window
// with its metadata. Without flags the configured page size applies.
func paginate[T any](
	ctx context.Context,
	operation string,
	params pagination.PaginationParams,
	items []T,
) ([]T, *pagination.PaginationMeta, error) {
	log := logging.FromContext(ctx)

	params = params.WithDefaultPageSize(config.GetDefaultPageSize())
	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid pagination parameters: %w", err)
	}
	if !params.IsEnabled() {
		return items, nil, nil
	}

	window := pagination.Apply(params, items)
	meta := pagination.NewPaginationMeta(params, len(items))

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", operation).
		Int("total", len(items)).
		Int("returned", len(window)).
		Int("current_page", meta.CurrentPage).
		Int("total_pages", meta.TotalPages).
		Msg("applied pagination")

	return window, &meta, nil
}

// queryFlags holds the list-control flags shared by the list commands.
type queryFlags struct {
	category string
	search   string
}

func (f queryFlags) params() query.Params {
	p := query.DefaultParams()
	if f.category != "" {
		p.Category = f.category
	}
	p.Search = f.search
	return p
}
