package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopzone/storefront/internal/domain"
)

func filterFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Fjallraven Backpack", Category: "men's clothing"},
		{ID: 2, Title: "Mens Casual T-Shirt", Category: "men's clothing"},
		{ID: 3, Title: "Gold Chain Pendant", Category: "jewelery"},
		{ID: 4, Title: "Portable SSD", Category: "electronics"},
	}
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterEmptyQueryAllCategory(t *testing.T) {
	got := Filter(filterFixture(), "", "all")
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestFilterQueryIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(filterFixture(), "BACK", "")
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterQueryWhitespaceIsSignificant(t *testing.T) {
	got := Filter(filterFixture(), "back ", "")
	assert.Empty(t, got)

	got = Filter(filterFixture(), "casual t", "")
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Filter(filterFixture(), "", "men's clothing")
	assert.Equal(t, []int64{1, 2}, ids(got))

	got = Filter(filterFixture(), "", "men")
	assert.Empty(t, got)
}

func TestFilterQueryAndCategoryCombine(t *testing.T) {
	got := Filter(filterFixture(), "shirt", "men's clothing")
	assert.Equal(t, []int64{2}, ids(got))

	got = Filter(filterFixture(), "shirt", "electronics")
	assert.Empty(t, got)
}
