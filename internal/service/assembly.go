package service

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

// JobSubmitter accepts a persisted processing assembly for execution.
type JobSubmitter interface {
	Submit(asm *domain.Assembly) error
}

// SubmitRequest is a new assembly as requested by a caller. Preview
// defaults to true when omitted.
type SubmitRequest struct {
	Name    string            `json:"name,omitempty"`
	Preview *bool             `json:"preview,omitempty"`
	Clips   []domain.ClipSpec `json:"clips"`
}

type AssemblyService struct {
	store         port.AssemblyStore
	catalog       port.Catalog
	jobs          JobSubmitter
	registry      *JobRegistry
	events        *EventBus
	mediaDir      string
	cancelTimeout time.Duration
	now           func() time.Time
}

func NewAssemblyService(
	store port.AssemblyStore,
	catalog port.Catalog,
	jobs JobSubmitter,
	registry *JobRegistry,
	events *EventBus,
	mediaDir string,
	cancelTimeout time.Duration,
) *AssemblyService {
	return &AssemblyService{
		store:         store,
		catalog:       catalog,
		jobs:          jobs,
		registry:      registry,
		events:        events,
		mediaDir:      mediaDir,
		cancelTimeout: cancelTimeout,
		now:           time.Now,
	}
}

// Submit validates req against the current catalog snapshot, persists a
// processing assembly and hands it to the worker pool. Rejected submissions
// persist nothing.
func (s *AssemblyService) Submit(ctx context.Context, req SubmitRequest) (*domain.Assembly, error) {
	sources, err := s.catalog.Sources(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	clips, err := domain.BuildClips(req.Clips, sources)
	if err != nil {
		return nil, err
	}

	preview := true
	if req.Preview != nil {
		preview = *req.Preview
	}

	asm := domain.NewAssembly(req.Name, preview, clips, s.now())
	if err := s.store.Create(ctx, asm); err != nil {
		return nil, fmt.Errorf("create assembly: %w", err)
	}
	logger.Infof("assembly %s submitted: %d clips, preview=%t, name=%q",
		asm.ID, len(clips), preview, logger.SanitizeForLog(asm.Name))

	// The job mutates its own copy; the caller keeps the initial state.
	snapshot := cloneAssembly(asm)
	if err := s.jobs.Submit(asm); err != nil {
		logger.Errorf("assembly %s could not be scheduled: %v", asm.ID, err)
		asm.MarkAsFailed(fmt.Errorf("schedule: %w", err))
		if ferr := s.store.Finalize(ctx, asm); ferr != nil {
			logger.Errorf("assembly %s: persist scheduling failure: %v", asm.ID, ferr)
		}
		return cloneAssembly(asm), nil
	}
	return snapshot, nil
}

func (s *AssemblyService) Get(ctx context.Context, id string) (*domain.Assembly, error) {
	return s.store.Get(ctx, id)
}

func (s *AssemblyService) List(ctx context.Context) ([]*domain.Assembly, error) {
	return s.store.List(ctx)
}

func (s *AssemblyService) UpdateNote(ctx context.Context, id, note string) (*domain.Assembly, error) {
	ok, err := s.store.UpdateNote(ctx, id, note)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Delete cancels a running job, waits for it to stop (bounded by the cancel
// timeout), then removes the record and the working directory.
func (s *AssemblyService) Delete(ctx context.Context, id string) error {
	if _, err := domain.ParseAssemblyID(id); err != nil {
		return domain.ErrNotFound
	}

	if job, ok := s.registry.Cancel(id); ok {
		logger.Infof("assembly %s: cancelling running job %s", id, job.RunID)
		timer := time.NewTimer(s.cancelTimeout)
		select {
		case <-job.Done():
		case <-timer.C:
			logger.Warnf("assembly %s: job %s did not stop within %s", id, job.RunID, s.cancelTimeout)
		case <-ctx.Done():
		}
		timer.Stop()
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	if err := os.RemoveAll(WorkDir(s.mediaDir, id)); err != nil {
		logger.Warnf("assembly %s: remove working directory: %v", id, err)
	}
	logger.Infof("assembly %s deleted", id)
	return nil
}

// Wait blocks until the assembly reaches a terminal state.
func (s *AssemblyService) Wait(ctx context.Context, id string, poll time.Duration) (*domain.Assembly, error) {
	var events chan Event
	if s.events != nil {
		events = s.events.Subscribe(id)
		defer s.events.Unsubscribe(id, events)
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		asm, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if asm.IsTerminal() {
			return asm, nil
		}

		select {
		case <-ctx.Done():
			return asm, ctx.Err()
		case <-events:
		case <-ticker.C:
		}
	}
}

func cloneAssembly(a *domain.Assembly) *domain.Assembly {
	c := *a
	c.Clips = slices.Clone(a.Clips)
	if a.Duration != nil {
		d := *a.Duration
		c.Duration = &d
	}
	return &c
}
