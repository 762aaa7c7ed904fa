package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorker_RunsTasksInFIFOOrder(t *testing.T) {
	w := NewWorker("w-0", zap.NewNop())
	w.Start()
	defer w.Shutdown()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, w.Submit(NewTask("t", func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})))
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, order[i])
	}
}

func TestWorker_CancelledTaskNeverRuns(t *testing.T) {
	w := NewWorker("w-0", zap.NewNop())
	w.Start()
	defer w.Shutdown()

	ran := false
	task := NewTask("t", func() { ran = true })
	task.Cancel()
	require.NoError(t, w.Submit(task))

	// Give the run loop a chance to reach and skip the task.
	time.Sleep(10 * time.Millisecond)
	assert.False(t, ran)
}

func TestWorker_SubmitAfterShutdownFails(t *testing.T) {
	w := NewWorker("w-0", zap.NewNop())
	w.Start()
	w.Shutdown()

	err := w.Submit(NewTask("t", func() {}))
	assert.ErrorIs(t, err, ErrWorkerStopped)
}

func TestSchedulerCore_CreateWorkerRejectsDuplicate(t *testing.T) {
	c := NewSchedulerCore(zap.NewNop())
	require.NoError(t, c.CreateWorker("book-0"))
	err := c.CreateWorker("book-0")
	require.Error(t, err)
	defer c.Shutdown()
}

func TestSchedulerCore_SubmitToUnknownWorkerFails(t *testing.T) {
	c := NewSchedulerCore(zap.NewNop())
	err := c.SubmitTo("missing", NewTask("t", func() {}))
	assert.Error(t, err)
}
