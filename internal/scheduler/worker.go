package scheduler

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrWorkerStopped is returned by Submit once Shutdown has been called.
var ErrWorkerStopped = errors.New("scheduler: worker stopped")

// Worker owns a FIFO task queue, a queue mutex, and a "not empty or
// stopping" condition variable, run on a single dedicated goroutine — the
// same shape as a mutex+condvar+queue worker thread, translated directly
// rather than reached for a generic Go worker-pool library. Every symbol
// pinned to one Worker gets strict FIFO processing order, which a
// goroutine-pool cannot promise.
type Worker struct {
	id  string
	log *zap.Logger

	mu       sync.Mutex
	notEmpty *sync.Cond
	queue    []*Task
	stopped  bool
	done     chan struct{}
}

// NewWorker creates a worker identified by id. Call Start to begin
// processing its queue.
func NewWorker(id string, log *zap.Logger) *Worker {
	w := &Worker{id: id, log: log, done: make(chan struct{})}
	w.notEmpty = sync.NewCond(&w.mu)
	return w
}

func (w *Worker) ID() string { return w.id }

// Start launches the worker's run loop on its own goroutine.
func (w *Worker) Start() {
	go w.run()
}

func (w *Worker) run() {
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.stopped {
			w.notEmpty.Wait()
		}
		if len(w.queue) == 0 && w.stopped {
			w.mu.Unlock()
			close(w.done)
			return
		}
		task := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		if task.Cancelled() {
			continue
		}
		task.fn()
	}
}

// Submit enqueues t at the tail of the worker's FIFO queue. Returns
// ErrWorkerStopped once Shutdown has been called.
func (w *Worker) Submit(t *Task) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return ErrWorkerStopped
	}
	w.queue = append(w.queue, t)
	w.mu.Unlock()
	w.notEmpty.Signal()
	return nil
}

// QueueLen reports how many tasks are currently waiting (not counting one
// possibly in flight).
func (w *Worker) QueueLen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// Shutdown stops accepting new tasks and blocks until the queue has fully
// drained and the run loop has exited.
func (w *Worker) Shutdown() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	w.notEmpty.Signal()
	<-w.done
}
