// Package activity implements the activity catalog repository using
// PostgreSQL. The catalog is a uniqueness-constrained record store; the only
// subtlety is the FK RESTRICT on deletion while log entries reference it.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tracknox/timetrack-backend/internal/adapter/postgres"
	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const activityColumns = `id, name, color, created_at, updated_at`

const createSQL = `
INSERT INTO activities (id, name, color)
VALUES ($1, $2, $3)
RETURNING ` + activityColumns

const getByIDSQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE id = $1`

const listSQL = `
SELECT ` + activityColumns + `
FROM activities
ORDER BY name`

const updateSQL = `
UPDATE activities
SET name = $2, color = $3, updated_at = now()
WHERE id = $1
RETURNING ` + activityColumns

const deleteSQL = `DELETE FROM activities WHERE id = $1`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM activities WHERE id = $1)`

const usageSQL = `
SELECT
    a.id, a.name, a.color,
    count(l.id) FILTER (WHERE l.status = 'COMPLETED')            AS entries,
    COALESCE(sum(l.duration_seconds) FILTER (WHERE l.status = 'COMPLETED'), 0) AS seconds
FROM activities a
LEFT JOIN activity_log l ON l.activity_id = a.id
GROUP BY a.id, a.name, a.color
ORDER BY a.name`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new activity.
// Returns domain.ErrAlreadyExists if the name is already taken.
func (r *Repo) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, activity.ID, activity.Name, activity.Color)

	created, err := scanActivity(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", activity.ID)
	}

	return created, nil
}

// GetByID returns an activity by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	activity, err := scanActivity(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	return activity, nil
}

// List returns the whole catalog ordered by name.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []*domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

// Update applies partial updates to an activity.
// Returns domain.ErrNotFound if it does not exist, domain.ErrAlreadyExists
// when renaming to a taken name.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanActivity(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}
	color := current.Color
	if params.Color != nil {
		color = *params.Color
	}

	updated, err := scanActivity(querier.QueryRow(ctx, updateSQL, id, name, color))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	return updated, nil
}

// Delete removes an activity.
// Returns domain.ErrNotFound if it does not exist and domain.ErrConflict if
// log entries still reference it (FK RESTRICT).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("activity %s still has log entries: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "activity", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Exists reports whether the activity id resolves to a record.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("activity exists: %w", err)
	}

	return exists, nil
}

// UsageCounts returns per-activity completed entry counts and total logged
// seconds, ordered by name.
func (r *Repo) UsageCounts(ctx context.Context) ([]domain.ActivityUsage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, usageSQL)
	if err != nil {
		return nil, fmt.Errorf("activity usage: %w", err)
	}
	defer rows.Close()

	usage := []domain.ActivityUsage{}
	for rows.Next() {
		var u domain.ActivityUsage
		if err := rows.Scan(&u.ActivityID, &u.Name, &u.Color, &u.Entries, &u.TotalSeconds); err != nil {
			return nil, fmt.Errorf("activity usage: %w", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity usage: %w", err)
	}

	return usage, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		a         domain.Activity
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&a.ID, &a.Name, &a.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return &a, nil
}
