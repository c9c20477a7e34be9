package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shopzone/storefront/internal/session"
)

// ErrCheckoutInvalidInput indicates the caller supplied invalid input.
var ErrCheckoutInvalidInput = errors.New("checkout service: invalid input")

// ErrCheckoutUnavailable indicates the checkout service is missing dependencies.
var ErrCheckoutUnavailable = errors.New("checkout service: unavailable")

// ErrCheckoutEmptyCart indicates the session cart holds no items.
var ErrCheckoutEmptyCart = errors.New("checkout service: cart is empty")

// ErrCheckoutNotSignedIn indicates the session is anonymous.
var ErrCheckoutNotSignedIn = errors.New("checkout service: not signed in")

// CheckoutServiceDeps wires the clock and id generator for order creation.
type CheckoutServiceDeps struct {
	Clock       func() time.Time
	IDGenerator func() string
	Logger      func(context.Context, string, map[string]any)
}

type checkoutService struct {
	now    func() time.Time
	newID  func() string
	logger func(context.Context, string, map[string]any)
}

// NewCheckoutService constructs a CheckoutService enforcing dependency validation.
func NewCheckoutService(deps CheckoutServiceDeps) (CheckoutService, error) {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &checkoutService{
		now:    func() time.Time { return clock().UTC() },
		newID:  idGen,
		logger: logger,
	}, nil
}

// PlaceOrder validates the form, simulates payment acceptance, and empties
// the cart. Nothing is charged and nothing is persisted beyond the session.
func (s *checkoutService) PlaceOrder(ctx context.Context, state *session.State, form CheckoutForm) (OrderConfirmation, error) {
	if s == nil {
		return OrderConfirmation{}, ErrCheckoutUnavailable
	}
	if state == nil {
		return OrderConfirmation{}, ErrCheckoutInvalidInput
	}
	if !state.Identity().Authenticated {
		return OrderConfirmation{}, ErrCheckoutNotSignedIn
	}
	if err := validateCheckoutForm(form); err != nil {
		return OrderConfirmation{}, err
	}

	entries, total := state.DrainCart()
	if len(entries) == 0 {
		return OrderConfirmation{}, ErrCheckoutEmptyCart
	}

	itemCount := 0
	for _, entry := range entries {
		itemCount += entry.Quantity
	}

	confirmation := OrderConfirmation{
		OrderID:       s.newID(),
		Total:         total,
		ItemCount:     itemCount,
		PaymentMethod: form.PaymentMethod,
	}

	s.logger(ctx, "checkout.placed", map[string]any{
		"order_id":       confirmation.OrderID,
		"total":          confirmation.Total,
		"items":          confirmation.ItemCount,
		"payment_method": string(confirmation.PaymentMethod),
		"placed_at":      s.now().Format(time.RFC3339),
	})
	return confirmation, nil
}

func validateCheckoutForm(form CheckoutForm) error {
	required := []string{form.Name, form.Email, form.Phone, form.Address, form.City, form.Pincode}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrCheckoutInvalidInput
		}
	}
	if !form.PaymentMethod.IsValid() {
		return ErrCheckoutInvalidInput
	}
	return nil
}
