package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

// InterruptedReason marks records a previous process left processing.
const InterruptedReason = "interrupted: server restarted"

var ErrPoolClosed = errors.New("worker pool is shut down")

// JobRunner executes one assembly job to its terminal state.
type JobRunner interface {
	Run(ctx context.Context, asm *domain.Assembly, runID string)
}

// WorkerPool runs assembly jobs in their own goroutines and bounds how many
// are past admission at once. Queued jobs stay processing until admitted.
type WorkerPool struct {
	store    port.AssemblyStore
	runner   JobRunner
	registry *JobRegistry
	sem      *semaphore.Weighted
	workers  int

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func NewWorkerPool(store port.AssemblyStore, runner JobRunner, registry *JobRegistry, workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		store:    store,
		runner:   runner,
		registry: registry,
		sem:      semaphore.NewWeighted(int64(workers)),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start fails records stranded by a previous process and ties every job
// started afterwards to ctx.
func (wp *WorkerPool) Start(ctx context.Context) {
	n, err := wp.store.FailProcessing(ctx, InterruptedReason)
	if err != nil {
		logger.Errorf("failed to reset stale assemblies: %v", err)
	} else if n > 0 {
		logger.Warnf("marked %d stale assemblies as failed", n)
	}

	wp.mu.Lock()
	wp.cancel()
	wp.ctx, wp.cancel = context.WithCancel(ctx)
	wp.mu.Unlock()

	logger.Infof("worker pool started (max %d concurrent jobs)", wp.workers)
}

// Submit registers a job for asm and runs it once a slot is free.
func (wp *WorkerPool) Submit(asm *domain.Assembly) error {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return ErrPoolClosed
	}
	base := wp.ctx
	wp.wg.Add(1)
	wp.mu.Unlock()

	job, ctx, err := wp.registry.Register(base, asm.ID)
	if err != nil {
		wp.wg.Done()
		return err
	}

	go func() {
		defer wp.wg.Done()
		defer wp.registry.Complete(job)

		// A job cancelled while queued still runs so its terminal state
		// is written; it fails at its first step.
		if err := wp.sem.Acquire(ctx, 1); err == nil {
			defer wp.sem.Release(1)
		}
		wp.runner.Run(ctx, asm, job.RunID)
	}()
	return nil
}

// Shutdown cancels running jobs and waits for them to write their final
// state, or until ctx expires.
func (wp *WorkerPool) Shutdown(ctx context.Context) error {
	wp.mu.Lock()
	wp.closed = true
	wp.cancel()
	wp.mu.Unlock()

	if running := wp.registry.Running(); len(running) > 0 {
		logger.Infof("cancelling %d jobs: %s", len(running), strings.Join(running, ", "))
	}
	wp.registry.CancelAll()

	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Infof("worker pool stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
