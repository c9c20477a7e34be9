package catalog

import (
	"sync"

	"github.com/shopzone/storefront/internal/domain"
)

// Store holds the normalised catalog once loading completes. Until then all
// reads observe an empty, not-yet-loaded catalog.
type Store struct {
	mu         sync.RWMutex
	loaded     bool
	products   []domain.Product
	categories []domain.Category
	byID       map[int64]domain.Product
}

// NewStore returns an empty catalog store.
func NewStore() *Store {
	return &Store{byID: make(map[int64]domain.Product)}
}

// SetCatalog publishes the loaded products and categories.
func (s *Store) SetCatalog(products []domain.Product, categories []domain.Category) {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product(nil), products...)
	s.categories = append([]domain.Category(nil), categories...)
	s.byID = byID
	s.loaded = true
}

// MarkLoadFailed records that loading finished without data so readers stop
// treating the catalog as pending.
func (s *Store) MarkLoadFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
}

// Loaded reports whether the load attempt has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns a copy of the full product list.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// Categories returns a copy of the category list including the synthetic
// all-products entry.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...)
}

// ProductByID looks up a single product.
func (s *Store) ProductByID(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}
