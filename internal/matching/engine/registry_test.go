package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

func TestRegistry_GetOrCreateIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.GetOrCreate("TSLA")
	b := r.GetOrCreate("TSLA")
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Size())
}

func TestRegistry_ConcurrentGetOrCreateReturnsSameIdentity(t *testing.T) {
	r := NewRegistry()
	const goroutines = 64

	results := make([]*OrderBook, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = r.GetOrCreate("TSLA")
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, results[0], results[i])
	}
}

func TestRegistry_EraseAndContains(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("TSLA")
	require.True(t, r.Contains("TSLA"))

	r.Erase("TSLA")
	assert.False(t, r.Contains("TSLA"))
}

func TestRegistry_ForEachVisitsEveryBook(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("TSLA")
	r.GetOrCreate("AAPL")

	seen := map[string]*OrderBook{}
	r.ForEach(func(symbol order.Symbol, ob *OrderBook) {
		seen[string(symbol)] = ob
	})

	assert.Len(t, seen, 2)
	assert.Contains(t, seen, "TSLA")
	assert.Contains(t, seen, "AAPL")
}

func TestRegistry_CleanupEvictsIdleSymbols(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("OLD")
	time.Sleep(5 * time.Millisecond)
	r.GetOrCreate("FRESH")

	removed := r.Cleanup(2 * time.Millisecond)
	assert.Equal(t, 1, removed)
	assert.False(t, r.Contains("OLD"))
	assert.True(t, r.Contains("FRESH"))
}
