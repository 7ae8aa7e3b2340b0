package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tracknox/timetrack-backend/internal/adapter/postgres"
	activityrepo "github.com/tracknox/timetrack-backend/internal/adapter/postgres/activity"
	"github.com/tracknox/timetrack-backend/internal/adapter/postgres/logentry"
	"github.com/tracknox/timetrack-backend/internal/config"
	activitysvc "github.com/tracknox/timetrack-backend/internal/service/activity"
	entrysvc "github.com/tracknox/timetrack-backend/internal/service/entry"
	timersvc "github.com/tracknox/timetrack-backend/internal/service/timer"
	"github.com/tracknox/timetrack-backend/internal/transport/middleware"
	"github.com/tracknox/timetrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and serves
// until the context is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	entryRepo := logentry.New(pool)
	activityRepo := activityrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	clock := clockwork.NewRealClock()
	limits := cfg.Timer.Limits()

	timerService := timersvc.NewService(logger, entryRepo, activityRepo, clock, limits)
	entryService := entrysvc.NewService(logger, entryRepo, activityRepo, txManager, clock, limits)
	activityService := activitysvc.NewService(logger, activityRepo)

	mux := rest.NewRouter(rest.Handlers{
		Timer:    rest.NewTimerHandler(timerService, logger),
		Entry:    rest.NewEntryHandler(entryService, logger),
		Activity: rest.NewActivityHandler(activityService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
