// Package scheduler implements the named, FIFO-per-worker task scheduling
// layer (C8) that gives every symbol a single owning goroutine.
package scheduler

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Task is one unit of work submitted to a Worker: an opaque id, a
// cancellation token the executor may inspect before running, a human
// description for logging, and the callable itself.
type Task struct {
	ID          string
	Description string
	cancelled   atomic.Bool
	fn          func()
}

// NewTask wraps fn with a fresh id and description.
func NewTask(description string, fn func()) *Task {
	return &Task{ID: uuid.NewString(), Description: description, fn: fn}
}

// Cancel marks the task cancelled. A worker checks this immediately before
// running the task; it cannot interrupt a task already in flight.
func (t *Task) Cancel() { t.cancelled.Store(true) }

// Cancelled reports whether Cancel was called before the task ran.
func (t *Task) Cancelled() bool { return t.cancelled.Load() }
