package query

import (
	"sort"
	"strings"

	"github.com/rshade/ecodash/internal/catalog"
)

// SortMode selects the marketplace ordering.
type SortMode string

// Marketplace orderings.
const (
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortEcoScore  SortMode = "eco-score"
	SortPopular   SortMode = "popular"
)

// SortModes returns the modes in the order the sort selector cycles through them.
func SortModes() []SortMode {
	return []SortMode{SortPopular, SortPriceLow, SortPriceHigh, SortEcoScore}
}

// ParseSortMode maps a sort string to a mode. Unknown strings map to SortPopular.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortEcoScore:
		return SortEcoScore
	default:
		return SortPopular
	}
}

// Label returns the text shown in the sort selector.
func (m SortMode) Label() string {
	switch m {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortEcoScore:
		return "Highest Eco-Score"
	default:
		return "Most Popular"
	}
}

// Next returns the mode after m in SortModes, wrapping around.
func (m SortMode) Next() SortMode {
	modes := SortModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return SortPopular
}

// SortProducts returns a sorted copy of products. The sort is stable, so
// products with equal keys keep their input order in either direction.
func SortProducts(products []catalog.Product, mode SortMode) []catalog.Product {
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)

	mode = ParseSortMode(string(mode))
	sort.SliceStable(sorted, func(i, j int) bool {
		// Descending orders swap i and j so ties stay stable.
		if mode != SortPriceLow {
			i, j = j, i
		}

		switch mode {
		case SortPriceLow, SortPriceHigh:
			return sorted[i].Price < sorted[j].Price
		case SortEcoScore:
			return sorted[i].EcoScore < sorted[j].EcoScore
		default:
			return sorted[i].Popularity() < sorted[j].Popularity()
		}
	})

	return sorted
}
