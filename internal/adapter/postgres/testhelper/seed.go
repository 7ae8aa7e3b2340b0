package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// uniqueSuffix returns a short random string for building unique names,
// so seeded rows never collide across tests sharing the container.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActivity inserts an activity with a unique name and returns it.
func SeedActivity(t *testing.T, pool *pgxpool.Pool) *domain.Activity {
	t.Helper()

	a := &domain.Activity{
		ID:    uuid.New(),
		Name:  "activity-" + uniqueSuffix(),
		Color: "#3b82f6",
	}

	err := pool.QueryRow(
		context.Background(),
		`INSERT INTO activities (id, name, color)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		a.ID, a.Name, a.Color,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("seed activity: %v", err)
	}

	return a
}

// SeedCompletedEntry inserts a completed log entry spanning [start, end)
// for the given activity and returns it.
func SeedCompletedEntry(t *testing.T, pool *pgxpool.Pool, activityID uuid.UUID, start, end time.Time) *domain.ActivityLogEntry {
	t.Helper()

	duration := int64(end.Sub(start).Round(time.Second).Seconds())
	e := &domain.ActivityLogEntry{
		ID:            uuid.New(),
		ActivityID:    activityID,
		EntryType:     domain.EntryTypeManual,
		Status:        domain.StatusCompleted,
		StartTime:     start,
		EndTime:       &end,
		LastHeartbeat: end,
		PauseHistory:  []domain.PauseInterval{},
		Duration:      &duration,
	}

	insertEntry(t, pool, e)
	return e
}

// SeedLiveTimer inserts an active timer session started at start and
// returns it. At most one live timer may exist at a time; seeding a second
// one fails the test.
func SeedLiveTimer(t *testing.T, pool *pgxpool.Pool, activityID uuid.UUID, start time.Time) *domain.ActivityLogEntry {
	t.Helper()

	e := domain.NewTimerSession(activityID, start)
	insertEntry(t, pool, e)
	return e
}

func insertEntry(t *testing.T, pool *pgxpool.Pool, e *domain.ActivityLogEntry) {
	t.Helper()

	pauses, err := json.Marshal(e.PauseHistory)
	if err != nil {
		t.Fatalf("seed entry: marshal pauses: %v", err)
	}

	err = pool.QueryRow(
		context.Background(),
		`INSERT INTO activity_log
		   (id, activity_id, entry_type, status, start_time, end_time,
		    last_heartbeat, pause_history, duration_seconds)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		e.ID, e.ActivityID, e.EntryType, e.Status, e.StartTime, e.EndTime,
		e.LastHeartbeat, pauses, e.Duration,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
}

// CleanupLiveTimers completes or removes any live timer rows so a test can
// start its own. Tests that seed a live timer should call this first.
func CleanupLiveTimers(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(
		context.Background(),
		`DELETE FROM activity_log WHERE status IN ('ACTIVE', 'PAUSED')`,
	)
	if err != nil {
		t.Fatalf("cleanup live timers: %v", err)
	}
}
