package catalog

import (
	"strings"

	"github.com/shopzone/storefront/internal/domain"
)

// Filter narrows products by a case-insensitive title substring and an exact
// category match. The query is matched as typed, whitespace included; an
// empty query matches everything. The all-products category disables
// category filtering.
func Filter(products []domain.Product, query, categoryID string) []domain.Product {
	query = strings.ToLower(query)
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		categoryID = domain.CategoryAll
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if categoryID != domain.CategoryAll && p.Category != categoryID {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
