package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Item is a list entry that can be filtered by category and searched by text.
type Item interface {
	// CategoryLabel returns the raw category string compared against filters.
	CategoryLabel() string
	// SearchFields returns the title (or name) and description matched by search.
	SearchFields() (string, string)
}

// Filter keeps items whose category matches and whose title or description
// contains search. An empty category behaves like CategoryAll and an empty
// search matches everything. Comparison of search text uses Unicode case folding.
func Filter[T Item](items []T, category, search string) []T {
	folder := cases.Fold()
	needle := folder.String(search)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesCategory(item, category) {
			continue
		}
		if needle != "" && !matchesSearch(folder, item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesCategory(item Item, category string) bool {
	return category == "" || category == CategoryAll || item.CategoryLabel() == category
}

func matchesSearch(folder cases.Caser, item Item, needle string) bool {
	title, description := item.SearchFields()
	return strings.Contains(folder.String(title), needle) ||
		strings.Contains(folder.String(description), needle)
}
