package services

import (
	"context"
	"errors"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/session"
)

// ErrCartInvalidInput indicates the caller supplied invalid input.
var ErrCartInvalidInput = errors.New("cart service: invalid input")

// ErrCartUnavailable indicates the cart service is missing dependencies.
var ErrCartUnavailable = errors.New("cart service: unavailable")

// ErrCartProductNotFound indicates the product id is not in the catalog.
var ErrCartProductNotFound = errors.New("cart service: product not found")

// CartServiceDeps wires the catalog lookup needed to validate cart mutations.
type CartServiceDeps struct {
	Catalog *catalog.Store
	Logger  func(context.Context, string, map[string]any)
}

type cartService struct {
	catalog *catalog.Store
	logger  func(context.Context, string, map[string]any)
}

// NewCartService constructs a CartService enforcing dependency validation.
func NewCartService(deps CartServiceDeps) (CartService, error) {
	if deps.Catalog == nil {
		return nil, ErrCartUnavailable
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &cartService{catalog: deps.Catalog, logger: logger}, nil
}

// View returns the current cart snapshot.
func (s *cartService) View(ctx context.Context, state *session.State) (CartView, error) {
	if s == nil || s.catalog == nil {
		return CartView{}, ErrCartUnavailable
	}
	if state == nil {
		return CartView{}, ErrCartInvalidInput
	}
	return snapshotCart(state), nil
}

// AddItem merges the product into the cart after validating it exists.
func (s *cartService) AddItem(ctx context.Context, state *session.State, productID int64, quantity int) (CartView, error) {
	if s == nil || s.catalog == nil {
		return CartView{}, ErrCartUnavailable
	}
	if state == nil || productID <= 0 || quantity <= 0 {
		return CartView{}, ErrCartInvalidInput
	}
	product, ok := s.catalog.ProductByID(productID)
	if !ok {
		return CartView{}, ErrCartProductNotFound
	}

	state.AddToCart(product, quantity)
	s.logger(ctx, "cart.add", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	return snapshotCart(state), nil
}

// UpdateQuantity overwrites the quantity of an existing line. Zero removes
// the line; the update never creates one.
func (s *cartService) UpdateQuantity(ctx context.Context, state *session.State, productID int64, quantity int) (CartView, error) {
	if s == nil || s.catalog == nil {
		return CartView{}, ErrCartUnavailable
	}
	if state == nil || productID <= 0 || quantity < 0 {
		return CartView{}, ErrCartInvalidInput
	}

	state.SetCartQuantity(productID, quantity)
	s.logger(ctx, "cart.update", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	return snapshotCart(state), nil
}

// RemoveItem drops the product line. Removing an absent line succeeds.
func (s *cartService) RemoveItem(ctx context.Context, state *session.State, productID int64) (CartView, error) {
	if s == nil || s.catalog == nil {
		return CartView{}, ErrCartUnavailable
	}
	if state == nil || productID <= 0 {
		return CartView{}, ErrCartInvalidInput
	}

	state.RemoveFromCart(productID)
	s.logger(ctx, "cart.remove", map[string]any{"product_id": productID})
	return snapshotCart(state), nil
}

func snapshotCart(state *session.State) CartView {
	return CartView{
		Entries: state.CartEntries(),
		Total:   state.CartTotal(),
	}
}
