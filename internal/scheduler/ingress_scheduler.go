package scheduler

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/vaasu2002/go-matching-engine/internal/ingress"
)

// IngressScheduler parses and validates raw order descriptors on a bounded
// goroutine pool before handing each off to the book scheduler. Each task
// runs on whichever pool goroutine is free; there is no round-robin
// assignment of tasks to workers.
// Parsing and construction have no cross-order ordering requirement — a
// later order on a different symbol is free to finish first — so this is
// exactly the case panjf2000/ants's goroutine pool fits: bounded
// concurrency without the FIFO guarantee the book-owning Worker needs.
type IngressScheduler struct {
	pool *ants.Pool
	log  *zap.Logger
	next *OrderBookScheduler
}

// NewIngressScheduler creates a pool of size poolSize that forwards parsed
// orders to next.
func NewIngressScheduler(poolSize int, next *OrderBookScheduler, log *zap.Logger) (*IngressScheduler, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &IngressScheduler{pool: pool, log: log, next: next}, nil
}

// ProcessIncomingOrder submits parsing and dispatch of one descriptor line
// onto the pool. Parse errors are logged and dropped; there is no caller on
// the other end of a fire-and-forget ingress line to return them to.
func (s *IngressScheduler) ProcessIncomingOrder(line string) error {
	return s.pool.Submit(func() {
		o, err := ingress.Parse(line)
		if err != nil {
			s.log.Warn("rejected malformed order descriptor", zap.String("line", line), zap.Error(err))
			return
		}
		if err := s.next.ProcessOrder(o); err != nil {
			s.log.Error("failed to dispatch order", zap.Uint64("order_id", uint64(o.ID())), zap.Error(err))
		}
	})
}

// Release tears down the underlying pool.
func (s *IngressScheduler) Release() {
	s.pool.Release()
}
