package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/kazqvaizer/kalinsky-maker/config"
	"github.com/kazqvaizer/kalinsky-maker/internal/adapter/converter/ffmpeg"
	sqlitestore "github.com/kazqvaizer/kalinsky-maker/internal/adapter/storage/sqlite"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

const lockFileName = "kalinsky.lock"

// app wires the adapters and services of one process.
type app struct {
	cfg        *config.Config
	lock       *flock.Flock
	store      *sqlitestore.Store
	converter  *ffmpeg.Converter
	events     *service.EventBus
	registry   *service.JobRegistry
	pool       *service.WorkerPool
	assemblies *service.AssemblyService
	catalog    *service.CatalogService
}

// openApp builds the object graph. Exclusive apps hold the data_dir lock:
// only one process may run jobs or rewrite the catalog at a time.
func openApp(cfg *config.Config, exclusive bool) (*app, error) {
	for _, dir := range []string{cfg.DataDir, cfg.MediaDir, cfg.SourcesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	a := &app{cfg: cfg}
	if exclusive {
		a.lock = flock.New(filepath.Join(cfg.DataDir, lockFileName))
		ok, err := a.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return nil, errors.New("another kalinsky process is using " + cfg.DataDir)
		}
	}

	store, err := sqlitestore.NewStore(cfg.DataDir)
	if err != nil {
		a.unlock()
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.store = store

	a.converter = ffmpeg.NewConverter(converterOptions(cfg))
	a.events = service.NewEventBus()
	a.registry = service.NewJobRegistry()

	orchestrator := service.NewOrchestrator(store, a.converter, a.events, cfg.SourcesDir, cfg.MediaDir)
	a.pool = service.NewWorkerPool(store, orchestrator, a.registry, cfg.Jobs.MaxConcurrent)
	a.assemblies = service.NewAssemblyService(store, store, a.pool, a.registry, a.events, cfg.MediaDir, cfg.CancelTimeout())
	a.catalog = service.NewCatalogService(store, a.converter, cfg.SourcesDir, cfg.MediaDir)
	return a, nil
}

func (a *app) Close() error {
	err := a.store.Close()
	a.unlock()
	return err
}

func (a *app) unlock() {
	if a.lock == nil {
		return
	}
	if err := a.lock.Unlock(); err != nil {
		logger.Warnf("release lock: %v", err)
	}
}

func converterOptions(cfg *config.Config) ffmpeg.Options {
	return ffmpeg.Options{
		FFmpegBin:     cfg.FFmpegBin,
		FFprobeBin:    cfg.FFprobeBin,
		FadeMS:        cfg.Audio.FadeMS,
		AudioCodec:    cfg.Audio.Codec,
		AudioBitrate:  cfg.Audio.Bitrate,
		PreviewHeight: cfg.Preview.Height,
		PreviewCRF:    cfg.Preview.CRF,
		PreviewPreset: cfg.Preview.Preset,
	}
}

func loggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}
}
