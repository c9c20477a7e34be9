package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/session"
)

func seededCatalog(t *testing.T, products ...domain.Product) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	store.SetCatalog(products, []domain.Category{{ID: domain.CategoryAll, DisplayName: "All Products"}})
	return store
}

func testProduct(id int64, price int64) domain.Product {
	return domain.Product{ID: id, Title: "product", DisplayPrice: price, InStock: true}
}

func TestNewCartServiceRequiresCatalog(t *testing.T) {
	_, err := NewCartService(CartServiceDeps{})
	require.ErrorIs(t, err, ErrCartUnavailable)
}

func TestCartAddItemMergesQuantities(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	view, err := svc.AddItem(context.Background(), state, 1, 2)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 2, view.Entries[0].Quantity)

	view, err = svc.AddItem(context.Background(), state, 1, 3)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 5, view.Entries[0].Quantity)
	assert.Equal(t, int64(500), view.Total)
}

func TestCartAddItemValidation(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	_, err = svc.AddItem(context.Background(), state, 0, 1)
	assert.ErrorIs(t, err, ErrCartInvalidInput)

	_, err = svc.AddItem(context.Background(), state, 1, 0)
	assert.ErrorIs(t, err, ErrCartInvalidInput)

	_, err = svc.AddItem(context.Background(), nil, 1, 1)
	assert.ErrorIs(t, err, ErrCartInvalidInput)

	_, err = svc.AddItem(context.Background(), state, 999, 1)
	assert.ErrorIs(t, err, ErrCartProductNotFound)
}

func TestCartAddItemHasNoQuantityCeiling(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	view, err := svc.AddItem(context.Background(), state, 1, 100)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 100, view.Entries[0].Quantity)

	view, err = svc.UpdateQuantity(context.Background(), state, 1, 5000)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 5000, view.Entries[0].Quantity)
	assert.Equal(t, int64(500000), view.Total)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100), testProduct(2, 250))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	_, err = svc.AddItem(context.Background(), state, 1, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), state, 2, 1)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(context.Background(), state, 1, 0)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, int64(2), view.Entries[0].Product.ID)
	assert.Equal(t, int64(250), view.Total)
}

func TestCartUpdateQuantityNeverCreatesLines(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	view, err := svc.UpdateQuantity(context.Background(), state, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
}

func TestCartRemoveAbsentLineSucceeds(t *testing.T) {
	store := seededCatalog(t, testProduct(1, 100))
	svc, err := NewCartService(CartServiceDeps{Catalog: store})
	require.NoError(t, err)
	state := session.NewState()

	view, err := svc.RemoveItem(context.Background(), state, 42)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
	assert.Equal(t, int64(0), view.Total)
}
