package services

import (
	"context"
	"errors"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/session"
)

// ErrWishlistInvalidInput indicates the caller supplied invalid input.
var ErrWishlistInvalidInput = errors.New("wishlist service: invalid input")

// ErrWishlistUnavailable indicates the wishlist service is missing dependencies.
var ErrWishlistUnavailable = errors.New("wishlist service: unavailable")

// ErrWishlistProductNotFound indicates the product id is not in the catalog.
var ErrWishlistProductNotFound = errors.New("wishlist service: product not found")

// WishlistServiceDeps wires the catalog lookup needed to validate toggles.
type WishlistServiceDeps struct {
	Catalog *catalog.Store
	Logger  func(context.Context, string, map[string]any)
}

type wishlistService struct {
	catalog *catalog.Store
	logger  func(context.Context, string, map[string]any)
}

// NewWishlistService constructs a WishlistService enforcing dependency validation.
func NewWishlistService(deps WishlistServiceDeps) (WishlistService, error) {
	if deps.Catalog == nil {
		return nil, ErrWishlistUnavailable
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &wishlistService{catalog: deps.Catalog, logger: logger}, nil
}

// View returns the wishlisted products in insertion order.
func (s *wishlistService) View(ctx context.Context, state *session.State) ([]domain.Product, error) {
	if s == nil || s.catalog == nil {
		return nil, ErrWishlistUnavailable
	}
	if state == nil {
		return nil, ErrWishlistInvalidInput
	}
	return state.WishlistProducts(), nil
}

// Toggle flips the product's membership and reports whether it was added.
func (s *wishlistService) Toggle(ctx context.Context, state *session.State, productID int64) (WishlistToggleResult, error) {
	if s == nil || s.catalog == nil {
		return WishlistToggleResult{}, ErrWishlistUnavailable
	}
	if state == nil || productID <= 0 {
		return WishlistToggleResult{}, ErrWishlistInvalidInput
	}
	product, ok := s.catalog.ProductByID(productID)
	if !ok {
		return WishlistToggleResult{}, ErrWishlistProductNotFound
	}

	added := state.ToggleWishlist(product)
	s.logger(ctx, "wishlist.toggle", map[string]any{
		"product_id": productID,
		"added":      added,
	})
	return WishlistToggleResult{
		Products: state.WishlistProducts(),
		Added:    added,
	}, nil
}
