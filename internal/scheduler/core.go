package scheduler

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// SchedulerCore owns the named worker pool: every worker is created once,
// looked up by name, and torn down together on Shutdown.
type SchedulerCore struct {
	log *zap.Logger

	mu      sync.RWMutex
	workers map[string]*Worker
}

// NewSchedulerCore creates an empty core.
func NewSchedulerCore(log *zap.Logger) *SchedulerCore {
	return &SchedulerCore{log: log, workers: make(map[string]*Worker)}
}

// CreateWorker registers and starts a new worker named id. Returns
// WorkerAlreadyExists if id is already registered.
func (c *SchedulerCore) CreateWorker(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.workers[id]; exists {
		return order.WorkerAlreadyExists(id)
	}
	w := NewWorker(id, c.log)
	w.Start()
	c.workers[id] = w
	return nil
}

// CreateWorkers registers count workers named prefix-0 .. prefix-(count-1).
func (c *SchedulerCore) CreateWorkers(prefix string, count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		if err := c.CreateWorker(id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SubmitTo enqueues t on the named worker. Returns NoWorkerForSymbol-shaped
// error (reused generically here as "no such worker") if id is unknown.
func (c *SchedulerCore) SubmitTo(id string, t *Task) error {
	c.mu.RLock()
	w, ok := c.workers[id]
	c.mu.RUnlock()
	if !ok {
		return order.NoWorkerForSymbol(order.Symbol(id))
	}
	return w.Submit(t)
}

// Shutdown stops every worker and waits for each to drain.
func (c *SchedulerCore) Shutdown() {
	c.mu.RLock()
	workers := make([]*Worker, 0, len(c.workers))
	for _, w := range c.workers {
		workers = append(workers, w)
	}
	c.mu.RUnlock()

	for _, w := range workers {
		w.Shutdown()
	}
}
