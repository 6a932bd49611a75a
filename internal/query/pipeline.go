package query

import "github.com/rshade/ecodash/internal/catalog"

// Params are the list controls shared by the CLI and the TUI.
type Params struct {
	Category string
	Search   string
	Sort     SortMode
}

// DefaultParams matches every item in popular order.
func DefaultParams() Params {
	return Params{Category: CategoryAll, Sort: SortPopular}
}

// Products filters then sorts marketplace products.
func Products(items []catalog.Product, p Params) []catalog.Product {
	return SortProducts(Filter(items, p.Category, p.Search), p.Sort)
}

// Challenges filters challenges, keeping catalog order.
func Challenges(items []catalog.Challenge, p Params) []catalog.Challenge {
	return Filter(items, p.Category, p.Search)
}

// Events filters community events, keeping catalog order.
func Events(items []catalog.CommunityEvent, p Params) []catalog.CommunityEvent {
	return Filter(items, p.Category, p.Search)
}
