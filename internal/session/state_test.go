package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopzone/storefront/internal/domain"
)

func TestDrainCartReturnsSnapshotAndEmptiesCart(t *testing.T) {
	state := NewState()
	state.AddToCart(domain.Product{ID: 1, DisplayPrice: 100}, 2)
	state.AddToCart(domain.Product{ID: 2, DisplayPrice: 250}, 1)

	entries, total := state.DrainCart()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(450), total)
	assert.Equal(t, 0, state.CartLen())

	entries, total = state.DrainCart()
	assert.Empty(t, entries)
	assert.Equal(t, int64(0), total)
}

func TestDrainCartTotalMatchesEntriesUnderConcurrentAdds(t *testing.T) {
	state := NewState()
	state.AddToCart(domain.Product{ID: 1, DisplayPrice: 100}, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			state.AddToCart(domain.Product{ID: 1, DisplayPrice: 100}, 1)
		}
	}()

	for i := 0; i < 10; i++ {
		entries, total := state.DrainCart()
		var sum int64
		for _, entry := range entries {
			sum += entry.Product.DisplayPrice * int64(entry.Quantity)
		}
		require.Equal(t, sum, total)
	}
	wg.Wait()
}
