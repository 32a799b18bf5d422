// Package server собирает и запускает REST API портала.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"uteqportal/internal/app/server/api"
	"uteqportal/internal/app/server/config"
	"uteqportal/internal/domain/feed"
	"uteqportal/internal/domain/multimedia"
	"uteqportal/internal/infrastructure/migration"
	"uteqportal/internal/infrastructure/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

// Run поднимает хранилище и HTTP-сервер и блокируется до отмены ctx.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	storage, err := postgres.New(ctx, cfg, migration.DefaultEngine, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer storage.Close()

	services := api.Services{
		Multimedia: multimedia.NewService(postgres.NewMultimediaRepository(storage.Pool(), log), log),
		Feed:       feed.NewService(postgres.NewFeedRepository(storage.Pool(), log), log),
		Database:   storage.Pool(),
	}

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(services, cfg.Server.APIToken, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return serve(ctx, srv, log)
}

func serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
