// Package app wires configuration, the story corpus, the progress store,
// and the HTTP server into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/biblestories-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/biblestories-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/biblestories-backend/internal/auth"
	"github.com/heartmarshall/biblestories-backend/internal/config"
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/corpus/stories"
	progresssvc "github.com/heartmarshall/biblestories-backend/internal/service/progress"
	"github.com/heartmarshall/biblestories-backend/internal/transport/middleware"
	"github.com/heartmarshall/biblestories-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// story corpus (failing fast on any integrity problem), connects to the
// progress store, applies migrations, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// The corpus is static data compiled into the binary. A corpus that
	// fails its integrity check must never serve queries, so this aborts
	// startup rather than degrading.
	c, err := corpus.Build(stories.Partitions()...)
	if err != nil {
		return fmt.Errorf("build story corpus: %w", err)
	}
	logger.Info("corpus built", slog.Int("stories", c.Len()), slog.Int("books", len(c.Books())))

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to progress store: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate progress store: %w", err)
	}

	progressRepo := progressrepo.New(pool)
	progressService := progresssvc.NewService(logger, progressRepo, cfg.Database.WriteTimeout)
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	storiesHandler := rest.NewStoriesHandler(c)
	progressHandler := rest.NewProgressHandler(progressService, logger)
	healthHandler := rest.NewHealthHandler(pool, c.Len(), BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories", storiesHandler.List)
	mux.HandleFunc("GET /api/stories/daily", storiesHandler.Daily)
	mux.HandleFunc("GET /api/stories/{id}", storiesHandler.GetByID)
	mux.HandleFunc("GET /api/volumes", storiesHandler.Volumes)
	mux.HandleFunc("GET /api/categories", storiesHandler.Categories)
	mux.HandleFunc("GET /api/books", storiesHandler.Books)
	mux.HandleFunc("GET /api/progress", progressHandler.Fetch)
	mux.HandleFunc("POST /api/progress/complete", progressHandler.Complete)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(tokenManager),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
