// Package logentry implements the activity log repository using PostgreSQL.
// All queries use raw SQL since pause_history is a JSONB column requiring
// custom marshal/unmarshal logic; the list filter is built with squirrel.
//
// Lifecycle updates go through UpdateTransition, a status-guarded UPDATE that
// acts as the per-document compare-and-swap: two concurrent mutations of the
// same session cannot both succeed.
package logentry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tracknox/timetrack-backend/internal/adapter/postgres"
	"github.com/tracknox/timetrack-backend/internal/domain"
)

// ErrStaleStatus is returned when a status-guarded update matched no row
// because another request already transitioned the session. Callers re-read
// and re-derive the precise state error.
var ErrStaleStatus = fmt.Errorf("session status changed concurrently: %w", domain.ErrConflict)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, activity_id, entry_type, status, start_time, end_time,
last_heartbeat, pause_history, duration_seconds, created_at, updated_at`

const createSQL = `
INSERT INTO activity_log
    (id, activity_id, entry_type, status, start_time, end_time, last_heartbeat, pause_history, duration_seconds)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM activity_log
WHERE id = $1`

const getLiveSQL = `
SELECT ` + entryColumns + `
FROM activity_log
WHERE status IN ('ACTIVE', 'PAUSED')
LIMIT 1`

const updateTransitionSQL = `
UPDATE activity_log
SET status = $3,
    end_time = $4,
    last_heartbeat = $5,
    pause_history = $6,
    duration_seconds = $7,
    updated_at = now()
WHERE id = $1 AND status = $2
RETURNING ` + entryColumns

const updateManualSQL = `
UPDATE activity_log
SET activity_id = $2,
    start_time = $3,
    end_time = $4,
    last_heartbeat = $4,
    duration_seconds = $5,
    updated_at = now()
WHERE id = $1 AND entry_type = 'MANUAL'
RETURNING ` + entryColumns

const deleteSQL = `DELETE FROM activity_log WHERE id = $1`

const deleteLiveSQL = `DELETE FROM activity_log WHERE id = $1 AND status IN ('ACTIVE', 'PAUSED')`

const findOverlappingSQL = `
SELECT l.id, l.activity_id, a.name, l.start_time, l.end_time
FROM activity_log l
JOIN activities a ON a.id = l.activity_id
WHERE l.status = 'COMPLETED'
  AND l.start_time < $2
  AND l.end_time > $1
  AND l.id <> $3
ORDER BY l.start_time
LIMIT 1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", id)
	}

	return entry, nil
}

// GetLive returns the single session occupying the live-timer slot
// (status ACTIVE or PAUSED). Returns domain.ErrNotFound when no timer runs.
func (r *Repo) GetLive(ctx context.Context) (*domain.ActivityLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(querier.QueryRow(ctx, getLiveSQL))
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", uuid.Nil)
	}

	return entry, nil
}

// FindOverlapping returns the first completed entry whose half-open interval
// intersects [start, end), enriched with the owning activity's name.
// excludeID (uuid.Nil for none) skips one entry, for edits validating against
// everything but themselves. Returns nil when there is no conflict.
func (r *Repo) FindOverlapping(ctx context.Context, start, end time.Time, excludeID uuid.UUID) (*domain.OverlapConflict, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.OverlapConflict
	err := querier.QueryRow(ctx, findOverlappingSQL, start, end, excludeID).
		Scan(&c.EntryID, &c.ActivityID, &c.ActivityName, &c.StartTime, &c.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find overlapping: %w", err)
	}

	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry as-is (live session or completed manual entry).
// The partial unique index on live statuses makes a second live timer surface
// as domain.ErrAlreadyExists; the exclusion constraint makes a double-booked
// completed interval surface as domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	history, err := marshalPauses(entry.PauseHistory)
	if err != nil {
		return nil, fmt.Errorf("activity_log %s: %w", entry.ID, err)
	}

	row := querier.QueryRow(ctx, createSQL,
		entry.ID,
		entry.ActivityID,
		entry.EntryType,
		entry.Status,
		entry.StartTime,
		entry.EndTime,
		entry.LastHeartbeat,
		history,
		entry.Duration,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", entry.ID)
	}

	return created, nil
}

// UpdateTransition persists a lifecycle mutation guarded by the status the
// session was read in. Returns ErrStaleStatus if no row matched (someone else
// transitioned it first) and the entry still exists.
func (r *Repo) UpdateTransition(ctx context.Context, entry *domain.ActivityLogEntry, from domain.SessionStatus) (*domain.ActivityLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	history, err := marshalPauses(entry.PauseHistory)
	if err != nil {
		return nil, fmt.Errorf("activity_log %s: %w", entry.ID, err)
	}

	row := querier.QueryRow(ctx, updateTransitionSQL,
		entry.ID,
		from,
		entry.Status,
		entry.EndTime,
		entry.LastHeartbeat,
		history,
		entry.Duration,
	)

	updated, err := scanEntry(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "activity_log", entry.ID)
	}

	// The guard missed: either the row is gone or its status moved on.
	if _, getErr := r.GetByID(ctx, entry.ID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("activity_log %s: %w", entry.ID, ErrStaleStatus)
}

// UpdateManual rewrites a manual entry's interval and activity reference.
// Returns domain.ErrNotFound if the id does not resolve to a manual entry.
func (r *Repo) UpdateManual(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateManualSQL,
		entry.ID,
		entry.ActivityID,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
	)

	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", entry.ID)
	}

	return updated, nil
}

// Delete removes an entry permanently. Used both for timer reset (discard,
// no terminal artifact) and manual entry deletion.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "activity_log", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity_log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteLive removes a session only while it still occupies the live slot
// (status ACTIVE or PAUSED), so a reset cannot discard a session a concurrent
// stop just completed. Returns ErrStaleStatus when the row exists but is no
// longer live, domain.ErrNotFound when it does not exist.
func (r *Repo) DeleteLive(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteLiveSQL, id)
	if err != nil {
		return postgres.MapError(err, "activity_log", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	return fmt.Errorf("activity_log %s: %w", id, ErrStaleStatus)
}

// ---------------------------------------------------------------------------
// Row scanning and JSONB mapping
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.ActivityLogEntry, error) {
	var (
		e       domain.ActivityLogEntry
		history []byte
	)

	err := row.Scan(
		&e.ID,
		&e.ActivityID,
		&e.EntryType,
		&e.Status,
		&e.StartTime,
		&e.EndTime,
		&e.LastHeartbeat,
		&history,
		&e.Duration,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &e.PauseHistory); err != nil {
		return nil, fmt.Errorf("unmarshal pause history: %w", err)
	}
	if e.PauseHistory == nil {
		e.PauseHistory = []domain.PauseInterval{}
	}

	return &e, nil
}

func marshalPauses(history []domain.PauseInterval) ([]byte, error) {
	if history == nil {
		history = []domain.PauseInterval{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal pause history: %w", err)
	}
	return data, nil
}
