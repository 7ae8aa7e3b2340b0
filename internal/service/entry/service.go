// Package entry manages manual activity log entries: validated backdated
// creation, edits, deletion, and activity log queries.
//
// Manual entries are born completed and carry no pause history; their
// validation pipeline (reference, lookback window, duration bounds, overlap)
// runs against the clock instant of the request, and the store's exclusion
// constraint backs the overlap check against write races.
package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	Create(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	UpdateManual(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID uuid.UUID) (*domain.OverlapConflict, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]*domain.ActivityLogEntry, int, error)
}

type activityRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the manual entry business logic.
type Service struct {
	entries    entryRepo
	activities activityRepo
	tx         txManager
	clock      clockwork.Clock
	log        *slog.Logger
	limits     domain.TimerLimits
}

// NewService creates a new Entry service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	activities activityRepo,
	tx txManager,
	clock clockwork.Clock,
	limits domain.TimerLimits,
) *Service {
	return &Service{
		entries:    entries,
		activities: activities,
		tx:         tx,
		clock:      clock,
		log:        log.With(slog.String("service", "entry")),
		limits:     limits,
	}
}
