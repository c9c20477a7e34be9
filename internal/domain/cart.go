package domain

// CartEntry pairs a product with the quantity currently in the cart.
// Quantity is always >= 1; an entry whose quantity would drop to zero is
// removed instead.
type CartEntry struct {
	Product  Product
	Quantity int
}

// Cart is an ordered collection of entries keyed by product id. It is a plain
// container with no locking; the owning session state serialises access.
type Cart struct {
	entries []CartEntry
}

// Add merges qty into an existing entry for the product or appends a new one.
// qty must be positive; callers validate before reaching the container.
func (c *Cart) Add(product Product, qty int) {
	for i := range c.entries {
		if c.entries[i].Product.ID == product.ID {
			c.entries[i].Quantity += qty
			return
		}
	}
	c.entries = append(c.entries, CartEntry{Product: product, Quantity: qty})
}

// Remove deletes the entry for the product id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.entries {
		if c.entries[i].Product.ID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity for an existing entry. Zero removes the
// entry; an absent id is a no-op, SetQuantity never creates entries.
func (c *Cart) SetQuantity(productID int64, qty int) {
	if qty == 0 {
		c.Remove(productID)
		return
	}
	for i := range c.entries {
		if c.entries[i].Product.ID == productID {
			c.entries[i].Quantity = qty
			return
		}
	}
}

// Total returns the sum of quantity times display price over all entries,
// recomputed on every call.
func (c *Cart) Total() int64 {
	var total int64
	for _, entry := range c.entries {
		total += int64(entry.Quantity) * entry.Product.DisplayPrice
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []CartEntry {
	if len(c.entries) == 0 {
		return []CartEntry{}
	}
	dup := make([]CartEntry, len(c.entries))
	copy(dup, c.entries)
	return dup
}
