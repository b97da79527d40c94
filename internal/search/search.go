// Package search filters the item list by category and free-text query.
package search

import (
	"strings"

	"github.com/jlhu/perdiem/internal/model"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter returns the items that match both the category filter and the
// search query. The query matches case-insensitively as a substring of
// the name, category or notes. An empty query matches everything, as does
// an empty or "all" category.
func Filter(items []model.Item, category, query string) []model.Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if !matchesCategory(item, category) {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories returns the distinct non-empty categories in first-seen
// order, for building the filter pills.
func Categories(items []model.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

func matchesCategory(item model.Item, category string) bool {
	return category == "" || category == CategoryAll || item.Category == category
}

func matchesQuery(item model.Item, query string) bool {
	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Category), query) ||
		strings.Contains(strings.ToLower(item.Notes), query)
}
