package domain

// Wishlist is a set of products keyed by product id. Toggle is the only
// mutation besides Clear; insertion order is preserved so renders are stable.
type Wishlist struct {
	products []Product
}

// Toggle removes the product when present and inserts it otherwise. It
// returns true when the product is in the wishlist after the call.
func (w *Wishlist) Toggle(product Product) bool {
	for i := range w.products {
		if w.products[i].ID == product.ID {
			w.products = append(w.products[:i], w.products[i+1:]...)
			return false
		}
	}
	w.products = append(w.products, product)
	return true
}

// Contains reports whether the product id is in the wishlist.
func (w *Wishlist) Contains(productID int64) bool {
	for i := range w.products {
		if w.products[i].ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.products = nil
}

// Len returns the number of wishlisted products.
func (w *Wishlist) Len() int {
	return len(w.products)
}

// Products returns a copy of the wishlisted products in insertion order.
func (w *Wishlist) Products() []Product {
	if len(w.products) == 0 {
		return []Product{}
	}
	dup := make([]Product, len(w.products))
	copy(dup, w.products)
	return dup
}
