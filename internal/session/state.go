package session

import (
	"sync"

	"github.com/shopzone/storefront/internal/domain"
)

// State holds everything scoped to a single browsing session. All access
// goes through its methods; the embedded containers are never handed out.
type State struct {
	mu       sync.Mutex
	identity domain.Identity
	page     domain.Page
	cart     *domain.Cart
	wishlist *domain.Wishlist
}

// NewState returns a fresh anonymous session positioned on the home page.
func NewState() *State {
	return &State{
		page:     domain.PageHome,
		cart:     &domain.Cart{},
		wishlist: &domain.Wishlist{},
	}
}

// Identity returns the current identity snapshot.
func (s *State) Identity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// SetIdentity replaces the session identity.
func (s *State) SetIdentity(identity domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

// Page returns the currently tracked page.
func (s *State) Page() domain.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// SetPage records the page the client navigated to.
func (s *State) SetPage(page domain.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// AddToCart merges the product into the cart.
func (s *State) AddToCart(product domain.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product, quantity)
}

// RemoveFromCart drops the product line if present.
func (s *State) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

// SetCartQuantity updates an existing line's quantity.
func (s *State) SetCartQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
}

// CartEntries returns a copy of the cart lines.
func (s *State) CartEntries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

// CartTotal returns the current cart total in display currency.
func (s *State) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartLen returns the number of distinct cart lines.
func (s *State) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// ClearCart empties the cart.
func (s *State) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// DrainCart empties the cart and returns the lines and total it held, taken
// under a single lock so concurrent mutations cannot slip between the
// snapshot and the clear.
func (s *State) DrainCart() ([]domain.CartEntry, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.cart.Entries()
	total := s.cart.Total()
	s.cart.Clear()
	return entries, total
}

// ToggleWishlist flips the product's wishlist membership and reports whether
// it is present afterwards.
func (s *State) ToggleWishlist(product domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Toggle(product)
}

// WishlistProducts returns a copy of the wishlist in insertion order.
func (s *State) WishlistProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Products()
}

// WishlistContains reports membership.
func (s *State) WishlistContains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// Reset drops the identity and empties both containers. Used on logout.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = domain.Identity{}
	s.page = domain.PageHome
	s.cart.Clear()
	s.wishlist.Clear()
}
