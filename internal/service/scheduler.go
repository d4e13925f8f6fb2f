package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

const (
	sweepSchedule = "@hourly"
	watchDebounce = 2 * time.Second
)

// Reindexer rebuilds the catalog snapshot.
type Reindexer interface {
	Reindex(ctx context.Context) ([]domain.Source, error)
}

// Scheduler owns the background maintenance of a serving process: scheduled
// reindexing, the orphaned working-directory sweep and the optional sources
// watcher.
type Scheduler struct {
	reindexer Reindexer
	store     port.AssemblyStore
	registry  *JobRegistry
	mediaDir  string

	cron *cron.Cron

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

func NewScheduler(reindexer Reindexer, store port.AssemblyStore, registry *JobRegistry, mediaDir string) *Scheduler {
	return &Scheduler{
		reindexer: reindexer,
		store:     store,
		registry:  registry,
		mediaDir:  mediaDir,
		cron:      cron.New(),
	}
}

// Start registers the cron jobs. An empty reindexSchedule disables
// scheduled reindexing.
func (s *Scheduler) Start(ctx context.Context, reindexSchedule string) error {
	if reindexSchedule != "" {
		if _, err := s.cron.AddFunc(reindexSchedule, func() { s.reindex(ctx, "schedule") }); err != nil {
			return fmt.Errorf("schedule reindex: %w", err)
		}
		logger.Infof("scheduled reindex: %s", reindexSchedule)
	}
	if _, err := s.cron.AddFunc(sweepSchedule, func() {
		if _, err := s.SweepOrphans(ctx); err != nil {
			logger.Warnf("orphan sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.cron.Start()
	return nil
}

// Watch reindexes after changes in dir settle for the debounce interval.
func (s *Scheduler) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	s.wg.Add(1)
	go s.watchLoop(ctx, w)
	logger.Infof("watching %s for source changes", dir)
	return nil
}

func (s *Scheduler) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	defer s.wg.Done()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !domain.IsSourceFile(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warnf("source watcher error: %v", err)
		case <-timer.C:
			s.reindex(ctx, "watcher")
		}
	}
}

func (s *Scheduler) reindex(ctx context.Context, trigger string) {
	sources, err := s.reindexer.Reindex(ctx)
	if err != nil {
		logger.Errorf("reindex (%s) failed: %v", trigger, err)
		return
	}
	logger.Debugf("reindex (%s) indexed %d sources", trigger, len(sources))
}

// SweepOrphans removes assembly working directories that no record and no
// running job refers to.
func (s *Scheduler) SweepOrphans(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.mediaDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, err := domain.ParseAssemblyID(id); err != nil {
			continue
		}
		if _, running := s.registry.Get(id); running {
			continue
		}
		_, err := s.store.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return removed, err
		}
		if err := os.RemoveAll(filepath.Join(s.mediaDir, id)); err != nil {
			logger.Warnf("remove orphaned %s: %v", id, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Infof("removed %d orphaned assembly directories", removed)
	}
	return removed, nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()

	s.mu.Lock()
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}
