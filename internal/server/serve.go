package server

import (
	"context"
	"errors"
	"time"

	"islamic-quotes-be/internal/bootstrap"
	"islamic-quotes-be/internal/config"
	"islamic-quotes-be/internal/tracer"

	"golang.org/x/sync/errgroup"
)

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout. Tracing and dataset preload happen first.
func Serve(ctx context.Context, cfg *config.Config, container *bootstrap.Container) error {
	log := container.Logger
	defer func() { _ = log.Sync() }()

	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, log)

	if cfg.Dataset.Preload {
		if err := container.QuoteRepository.Warm(ctx); err != nil {
			// Requests retry the load, so a bad dataset is reported but not fatal.
			log.Warn("server", "Dataset preload failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	srv := New(cfg, container)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()

		log.Info("server", "Shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if tErr := shutdownTracer(shutdownCtx); tErr != nil {
			log.Warn("server", "Tracer shutdown failed", map[string]interface{}{
				"error": tErr.Error(),
			})
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
