package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/port/mocks"
)

// blockingRunner holds every job until released or cancelled.
type blockingRunner struct {
	release chan struct{}
	active  atomic.Int32
	peak    atomic.Int32

	mu   sync.Mutex
	runs []string
	errs map[string]error
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{release: make(chan struct{}), errs: make(map[string]error)}
}

func (r *blockingRunner) Run(ctx context.Context, asm *domain.Assembly, runID string) {
	n := r.active.Add(1)
	defer r.active.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}

	r.mu.Lock()
	r.runs = append(r.runs, asm.ID)
	r.mu.Unlock()

	select {
	case <-r.release:
	case <-ctx.Done():
		r.mu.Lock()
		r.errs[asm.ID] = ctx.Err()
		r.mu.Unlock()
	}
}

func (r *blockingRunner) started() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func TestWorkerPool_AdmissionLimit(t *testing.T) {
	runner := newBlockingRunner()
	registry := NewJobRegistry()
	pool := NewWorkerPool(mocks.NewAssemblyStoreMock(t), runner, registry, 2)

	for _, id := range []string{"asm_001", "asm_002", "asm_003"} {
		require.NoError(t, pool.Submit(&domain.Assembly{ID: id}))
	}

	require.Eventually(t, func() bool { return runner.started() == 2 }, time.Second, 5*time.Millisecond)
	// the third job is registered but waits for a slot
	assert.Len(t, registry.Running(), 3)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, runner.started())

	close(runner.release)
	require.Eventually(t, func() bool { return len(registry.Running()) == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, runner.started())
	assert.Equal(t, int32(2), runner.peak.Load())
}

func TestWorkerPool_CancelQueuedJobStillRuns(t *testing.T) {
	runner := newBlockingRunner()
	registry := NewJobRegistry()
	pool := NewWorkerPool(mocks.NewAssemblyStoreMock(t), runner, registry, 1)

	require.NoError(t, pool.Submit(&domain.Assembly{ID: "asm_001"}))
	require.Eventually(t, func() bool { return runner.started() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, pool.Submit(&domain.Assembly{ID: "asm_002"}))

	job, ok := registry.Cancel("asm_002")
	require.True(t, ok)
	select {
	case <-job.Done():
	case <-time.After(time.Second):
		t.Fatal("queued job did not stop")
	}

	runner.mu.Lock()
	assert.ErrorIs(t, runner.errs["asm_002"], context.Canceled)
	runner.mu.Unlock()

	close(runner.release)
}

func TestWorkerPool_ShutdownCancelsJobs(t *testing.T) {
	runner := newBlockingRunner()
	pool := NewWorkerPool(mocks.NewAssemblyStoreMock(t), runner, NewJobRegistry(), 2)

	require.NoError(t, pool.Submit(&domain.Assembly{ID: "asm_001"}))
	require.Eventually(t, func() bool { return runner.started() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))

	runner.mu.Lock()
	assert.ErrorIs(t, runner.errs["asm_001"], context.Canceled)
	runner.mu.Unlock()

	assert.ErrorIs(t, pool.Submit(&domain.Assembly{ID: "asm_002"}), ErrPoolClosed)
}

func TestWorkerPool_ShutdownCancelsEveryRegisteredJob(t *testing.T) {
	registry := NewJobRegistry()
	pool := NewWorkerPool(mocks.NewAssemblyStoreMock(t), newBlockingRunner(), registry, 1)

	job, jobCtx, err := registry.Register(context.Background(), "asm_009")
	require.NoError(t, err)
	defer registry.Complete(job)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))

	assert.ErrorIs(t, jobCtx.Err(), context.Canceled)
}

func TestWorkerPool_StartFailsStaleRecords(t *testing.T) {
	mockStore := mocks.NewAssemblyStoreMock(t)
	pool := NewWorkerPool(mockStore, newBlockingRunner(), NewJobRegistry(), 1)

	mockStore.EXPECT().FailProcessing(context.Background(), InterruptedReason).Return(int64(2), nil).Once()

	pool.Start(context.Background())
}

func TestWorkerPool_DuplicateSubmit(t *testing.T) {
	runner := newBlockingRunner()
	pool := NewWorkerPool(mocks.NewAssemblyStoreMock(t), runner, NewJobRegistry(), 1)
	defer close(runner.release)

	require.NoError(t, pool.Submit(&domain.Assembly{ID: "asm_001"}))
	assert.Error(t, pool.Submit(&domain.Assembly{ID: "asm_001"}))
}
