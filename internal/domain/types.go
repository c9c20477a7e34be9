package domain

// Rating carries the source catalog's review aggregate for a product.
type Rating struct {
	Rate  float64
	Count int
}

// Product is a normalized catalog entry. Display fields are derived once at
// load time and the record is treated as read-only afterwards; containers
// reference products but never mutate them.
type Product struct {
	ID                   int64
	Title                string
	Description          string
	ImageURL             string
	Category             string
	BasePrice            float64
	DisplayPrice         int64
	DisplayOriginalPrice int64
	DiscountPercent      int
	InStock              bool
	Rating               Rating
	ReviewCount          int
}

// Category pairs the raw source category id with a human-readable label.
type Category struct {
	ID          string
	DisplayName string
}

// CategoryAll is the synthetic category matching every product.
const CategoryAll = "all"

// Identity describes the current session's user. The zero value is anonymous.
type Identity struct {
	Authenticated bool
	Name          string
	Email         string
	IsAdmin       bool
}

// Page enumerates the storefront's navigable pages.
type Page string

const (
	PageHome           Page = "home"
	PageProducts       Page = "products"
	PageCart           Page = "cart"
	PageCheckout       Page = "checkout"
	PageWishlist       Page = "wishlist"
	PageLogin          Page = "login"
	PageProfile        Page = "profile"
	PageAdminDashboard Page = "admin-dashboard"
)

// IsValid reports whether the tag names a known page.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageProducts, PageCart, PageCheckout, PageWishlist, PageLogin, PageProfile, PageAdminDashboard:
		return true
	}
	return false
}

// PaymentMethod enumerates the checkout form's accepted payment tags.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentUPI            PaymentMethod = "upi"
	PaymentCard           PaymentMethod = "card"
)

// IsValid reports whether the tag names a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentUPI, PaymentCard:
		return true
	}
	return false
}
