package services

import (
	"context"
	"errors"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/domain"
)

// ErrCatalogInvalidInput indicates the caller supplied invalid input.
var ErrCatalogInvalidInput = errors.New("catalog service: invalid input")

// ErrCatalogUnavailable indicates the catalog service is missing dependencies.
var ErrCatalogUnavailable = errors.New("catalog service: unavailable")

// ErrProductNotFound indicates the requested product does not exist.
var ErrProductNotFound = errors.New("catalog service: product not found")

// CatalogServiceDeps wires the catalog store for read operations.
type CatalogServiceDeps struct {
	Store  *catalog.Store
	Logger func(context.Context, string, map[string]any)
}

type catalogService struct {
	store  *catalog.Store
	logger func(context.Context, string, map[string]any)
}

// NewCatalogService constructs a CatalogService enforcing dependency validation.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Store == nil {
		return nil, ErrCatalogUnavailable
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &catalogService{store: deps.Store, logger: logger}, nil
}

// ListProducts returns the catalog filtered by title query and category.
func (s *catalogService) ListProducts(ctx context.Context, query, categoryID string) (CatalogPage, error) {
	if s == nil || s.store == nil {
		return CatalogPage{}, ErrCatalogUnavailable
	}
	matched := catalog.Filter(s.store.Products(), query, categoryID)
	s.logger(ctx, "catalog.list", map[string]any{
		"query":    query,
		"category": categoryID,
		"matched":  len(matched),
	})
	return CatalogPage{Products: matched, Total: len(matched)}, nil
}

// ListCategories returns the category list including the all-products entry.
func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if s == nil || s.store == nil {
		return nil, ErrCatalogUnavailable
	}
	return s.store.Categories(), nil
}

// GetProduct looks up a single product by id.
func (s *catalogService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	if s == nil || s.store == nil {
		return domain.Product{}, ErrCatalogUnavailable
	}
	if productID <= 0 {
		return domain.Product{}, ErrCatalogInvalidInput
	}
	product, ok := s.store.ProductByID(productID)
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Ready reports whether the initial catalog load has completed.
func (s *catalogService) Ready(ctx context.Context) bool {
	return s != nil && s.store != nil && s.store.Loaded()
}
