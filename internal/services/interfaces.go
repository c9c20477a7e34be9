package services

import (
	"context"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/session"
)

// CatalogService exposes read access to the loaded product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, query, categoryID string) (CatalogPage, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	Ready(ctx context.Context) bool
}

// CatalogPage is the result of a filtered product listing.
type CatalogPage struct {
	Products []domain.Product
	Total    int
}

// CartService mutates and reads the session cart.
type CartService interface {
	View(ctx context.Context, state *session.State) (CartView, error)
	AddItem(ctx context.Context, state *session.State, productID int64, quantity int) (CartView, error)
	UpdateQuantity(ctx context.Context, state *session.State, productID int64, quantity int) (CartView, error)
	RemoveItem(ctx context.Context, state *session.State, productID int64) (CartView, error)
}

// CartView is a snapshot of the cart with its recomputed total.
type CartView struct {
	Entries []domain.CartEntry
	Total   int64
}

// WishlistService toggles and reads the session wishlist.
type WishlistService interface {
	View(ctx context.Context, state *session.State) ([]domain.Product, error)
	Toggle(ctx context.Context, state *session.State, productID int64) (WishlistToggleResult, error)
}

// WishlistToggleResult reports the membership outcome of a toggle.
type WishlistToggleResult struct {
	Products []domain.Product
	Added    bool
}

// AuthService implements the mock login flow.
type AuthService interface {
	Login(ctx context.Context, state *session.State, email, password string) (domain.Identity, error)
	Register(ctx context.Context, state *session.State, input RegisterInput) (domain.Identity, error)
	Logout(ctx context.Context, state *session.State) error
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// CheckoutService turns a session cart into a simulated order.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, state *session.State, form CheckoutForm) (OrderConfirmation, error)
}

// CheckoutForm carries the checkout form fields.
type CheckoutForm struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	Pincode       string
	PaymentMethod domain.PaymentMethod
}

// OrderConfirmation summarises a placed order.
type OrderConfirmation struct {
	OrderID       string
	Total         int64
	ItemCount     int
	PaymentMethod domain.PaymentMethod
}

// AdminService serves the fabricated dashboard data.
type AdminService interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	RecentOrders(ctx context.Context) ([]AdminOrder, error)
	Products(ctx context.Context) ([]domain.Product, error)
}

// DashboardStats is the metric strip at the top of the dashboard.
type DashboardStats struct {
	TotalProducts int
	TotalOrders   int
	TotalUsers    int
	Revenue       int64
}

// AdminOrder is a fabricated order row on the dashboard.
type AdminOrder struct {
	ID       string
	Customer string
	Date     string
	Amount   int64
	Status   string
}
