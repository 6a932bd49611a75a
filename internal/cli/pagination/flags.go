package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Validation limits.
const (
	MaxLimit    = 10000
	MaxPageSize = 1000
)

// Validation errors.
var (
	ErrInvalidLimit         = errors.New("limit must be between 0 and 10000")
	ErrInvalidPageSize      = errors.New("page-size must be between 0 and 1000")
	ErrInvalidOffset        = errors.New("offset must be non-negative")
	ErrInvalidPage          = errors.New("page must be >= 1")
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage  = errors.New("page must be specified when using page-size")
)

// PaginationParams holds the pagination flags of a list command.
// A zero value disables pagination.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Limit is the maximum number of results (offset mode). 0 means unlimited.
	Limit int

	// Offset is the number of results to skip (offset mode).
	Offset int

	// Page is the 1-based page number (page mode). 0 means page mode is off.
	Page int

	// PageSize is the number of results per page (page mode).
	PageSize int
}

// AddFlags registers the pagination flags on cmd, bound to p.
func AddFlags(cmd *cobra.Command, p *PaginationParams) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Maximum number of results to return (0 = unlimited)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "Number of results to skip for offset-based pagination")
	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number for page-based pagination (1-based)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "Results per page (requires --page)")
}

// WithDefaultPageSize enables page mode with size when no pagination flag was set.
func (p PaginationParams) WithDefaultPageSize(size int) PaginationParams {
	if p.IsEnabled() || size <= 0 {
		return p
	}
	p.Page = 1
	p.PageSize = size
	return p
}

// Validate checks bounds and mode consistency.
func (p PaginationParams) Validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOffset, p.Offset)
	}
	if p.Page < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.Page > 0 && p.PageSize == 0 {
		return fmt.Errorf("%w: page-size must be specified when using page", ErrInvalidPageSize)
	}
	return nil
}

// IsPageBased reports whether page mode is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any pagination parameter is set.
func (p PaginationParams) IsEnabled() bool {
	return p.Limit > 0 || p.Page > 0 || p.PageSize > 0 || p.Offset > 0
}

// CalculateOffsetLimit returns the effective offset and limit. A limit of 0
// means unlimited.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the window of items selected by p. In page mode a page past
// the end is capped to the last page; in offset mode it yields an empty slice.
// The result is never nil.
func Apply[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return []T{}
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
