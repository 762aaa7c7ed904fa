package scheduler

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/vaasu2002/go-matching-engine/internal/matching/engine"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// OrderBookScheduler maps each symbol to exactly one worker and keeps that
// mapping for the registry's lifetime, so a symbol's book is always
// processed by the same goroutine (thread confinement). A symbol seen for
// the first time is assigned deterministically by hashing its name across
// the configured worker set — new enough that two processes with the same
// worker count agree on the same assignment without coordination.
type OrderBookScheduler struct {
	core     *SchedulerCore
	registry *engine.Registry
	workerIDs []string

	mu         sync.RWMutex
	assignment map[order.Symbol]string
}

// NewOrderBookScheduler builds a scheduler that dispatches onto the given
// worker ids (normally the ones just created via SchedulerCore.CreateWorkers).
func NewOrderBookScheduler(core *SchedulerCore, registry *engine.Registry, workerIDs []string) *OrderBookScheduler {
	return &OrderBookScheduler{
		core:       core,
		registry:   registry,
		workerIDs:  workerIDs,
		assignment: make(map[order.Symbol]string),
	}
}

func (s *OrderBookScheduler) workerFor(symbol order.Symbol) string {
	s.mu.RLock()
	if id, ok := s.assignment[symbol]; ok {
		s.mu.RUnlock()
		return id
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.assignment[symbol]; ok {
		return id
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	id := s.workerIDs[int(h.Sum32())%len(s.workerIDs)]
	s.assignment[symbol] = id
	return id
}

// ProcessOrder enqueues o onto its symbol's assigned worker, which will run
// Registry.GetOrCreate(symbol).ProcessOrder(o) there.
func (s *OrderBookScheduler) ProcessOrder(o *order.Order) error {
	if len(s.workerIDs) == 0 {
		return order.NoWorkerForSymbol(o.Symbol())
	}
	workerID := s.workerFor(o.Symbol())
	task := NewTask(fmt.Sprintf("process order %d for %s", o.ID(), o.Symbol()), func() {
		s.registry.GetOrCreate(o.Symbol()).ProcessOrder(o)
	})
	return s.core.SubmitTo(workerID, task)
}

// CancelOrder enqueues a cancel for id on symbol's assigned worker.
func (s *OrderBookScheduler) CancelOrder(symbol order.Symbol, id order.ID) error {
	if len(s.workerIDs) == 0 {
		return order.NoWorkerForSymbol(symbol)
	}
	workerID := s.workerFor(symbol)
	errCh := make(chan error, 1)
	task := NewTask(fmt.Sprintf("cancel order %d for %s", id, symbol), func() {
		errCh <- s.registry.GetOrCreate(symbol).Cancel(id)
	})
	if err := s.core.SubmitTo(workerID, task); err != nil {
		return err
	}
	return <-errCh
}
