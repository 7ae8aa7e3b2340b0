// Command reaper reconciles a live timer session whose client stopped
// sending heartbeats. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tracknox/timetrack-backend/internal/adapter/postgres"
	activityrepo "github.com/tracknox/timetrack-backend/internal/adapter/postgres/activity"
	"github.com/tracknox/timetrack-backend/internal/adapter/postgres/logentry"
	"github.com/tracknox/timetrack-backend/internal/app"
	"github.com/tracknox/timetrack-backend/internal/config"
	timersvc "github.com/tracknox/timetrack-backend/internal/service/timer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := timersvc.NewService(
		logger,
		logentry.New(pool),
		activityrepo.New(pool),
		clockwork.NewRealClock(),
		cfg.Timer.Limits(),
	)

	entry, action, err := svc.RecoverLive(ctx)
	if err != nil {
		logger.Error("recover live session", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if entry == nil {
		logger.Info("no live session to reconcile")
		return
	}

	logger.Info("live session reconciled",
		slog.String("entry_id", entry.ID.String()),
		slog.String("action", action.String()),
		slog.String("status", entry.Status.String()),
	)
}
