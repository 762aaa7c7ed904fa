package engine

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// defaultRecencyCapacity bounds the recency tracker independently of how
// many symbols the registry has ever seen; a symbol that falls out of it
// is treated as idle by Cleanup even if its book is still present.
const defaultRecencyCapacity = 4096

// Registry is the process-wide Symbol → OrderBook mapping. Reads take a
// read lock; a miss escalates to a write lock and double-checks before
// creating, so concurrent first-touches of the same symbol always agree on
// one OrderBook instance.
type Registry struct {
	mu      sync.RWMutex
	books   map[order.Symbol]*OrderBook
	recency *lru.Cache[order.Symbol, time.Time]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	recency, _ := lru.New[order.Symbol, time.Time](defaultRecencyCapacity)
	return &Registry{
		books:   make(map[order.Symbol]*OrderBook),
		recency: recency,
	}
}

func (r *Registry) touch(symbol order.Symbol) {
	r.recency.Add(symbol, time.Now())
}

// GetOrCreate returns the book for symbol, creating it on first reference.
func (r *Registry) GetOrCreate(symbol order.Symbol) *OrderBook {
	r.mu.RLock()
	if b, ok := r.books[symbol]; ok {
		r.mu.RUnlock()
		r.touch(symbol)
		return b
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[symbol]; ok {
		r.touch(symbol)
		return b
	}
	b := NewOrderBook(symbol)
	r.books[symbol] = b
	r.touch(symbol)
	return b
}

// Contains reports whether symbol currently has a book.
func (r *Registry) Contains(symbol order.Symbol) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.books[symbol]
	return ok
}

// Erase explicitly evicts symbol's book. Callers are responsible for
// ensuring no worker still holds a reference to it.
func (r *Registry) Erase(symbol order.Symbol) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, symbol)
	r.recency.Remove(symbol)
}

// Size returns the number of symbols currently tracked.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

// ForEach calls fn once per currently registered symbol, under the
// registry's read lock. fn must not call back into the registry. Intended
// for periodic, read-only sweeps (e.g. mirroring every book's Stats into
// Prometheus) — not for anything on the hot order-processing path.
func (r *Registry) ForEach(fn func(symbol order.Symbol, ob *OrderBook)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for symbol, ob := range r.books {
		fn(symbol, ob)
	}
}

// Cleanup evicts every book whose symbol hasn't been touched (created or
// looked up) within maxIdle, returning the number removed.
func (r *Registry) Cleanup(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for symbol := range r.books {
		last, ok := r.recency.Peek(symbol)
		if !ok || now.Sub(last) >= maxIdle {
			delete(r.books, symbol)
			r.recency.Remove(symbol)
			removed++
		}
	}
	return removed
}
