package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/kazqvaizer/kalinsky-maker/internal/adapter/http"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:         "serve",
		Short:       "Run the HTTP API, the dashboard and the job workers",
		Annotations: map[string]string{annotationLogsToStdout: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if port > 0 {
				cfg.Port = port
			}

			a, err := openApp(cfg, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.pool.Start(runCtx)

			scheduler := service.NewScheduler(a.catalog, a.store, a.registry, cfg.MediaDir)
			if err := scheduler.Start(runCtx, cfg.Catalog.ReindexSchedule); err != nil {
				return err
			}
			defer scheduler.Stop()
			if cfg.Catalog.Watch {
				if err := scheduler.Watch(runCtx, cfg.SourcesDir); err != nil {
					logger.Warnf("source watcher disabled: %v", err)
				}
			}

			server := httpadapter.NewServer(a.assemblies, a.catalog, a.events, cfg.MediaDir, cfg.SourcesDir)
			addr := fmt.Sprintf(":%d", cfg.Port)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server,
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("kalinsky listening on %s (sources=%s, media=%s)", addr, cfg.SourcesDir, cfg.MediaDir)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			var serveErr error
			select {
			case <-runCtx.Done():
				logger.Infof("shutting down")
			case err := <-errCh:
				if err != nil {
					serveErr = fmt.Errorf("http server: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(runCtx), shutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Errorf("http shutdown error: %v", err)
			}
			if err := a.pool.Shutdown(shutdownCtx); err != nil {
				logger.Errorf("worker shutdown: %v", err)
			}
			logger.Infof("shutdown complete")
			return serveErr
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides config)")
	return cmd
}
