// Package timer orchestrates the timer session lifecycle: starting a session
// against the single live-timer slot, the pause/resume/heartbeat/stop/reset
// transitions, and lazy crash recovery on read and heartbeat paths.
//
// The store is the sole source of truth; every operation re-reads the session,
// applies a domain transition, and writes back through a status-guarded update.
// When the guard misses (another request transitioned the session first) the
// operation re-reads once and re-applies, so the loser of a race gets the
// precise state error instead of a blind overwrite.
package timer

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
	GetLive(ctx context.Context) (*domain.ActivityLogEntry, error)
	Create(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	// UpdateTransition must only write when the row still has status from,
	// returning an error wrapping domain.ErrConflict on a guard miss.
	UpdateTransition(ctx context.Context, entry *domain.ActivityLogEntry, from domain.SessionStatus) (*domain.ActivityLogEntry, error)
	// DeleteLive must only delete while the row is ACTIVE or PAUSED,
	// returning an error wrapping domain.ErrConflict otherwise.
	DeleteLive(ctx context.Context, id uuid.UUID) error
}

type activityRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the timer lifecycle business logic.
type Service struct {
	entries    entryRepo
	activities activityRepo
	clock      clockwork.Clock
	log        *slog.Logger
	limits     domain.TimerLimits
}

// NewService creates a new Timer service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	activities activityRepo,
	clock clockwork.Clock,
	limits domain.TimerLimits,
) *Service {
	return &Service{
		entries:    entries,
		activities: activities,
		clock:      clock,
		log:        log.With(slog.String("service", "timer")),
		limits:     limits,
	}
}

// transition re-reads the session, applies op, and persists through the
// status guard. A single retry covers the guard missing because a concurrent
// request (or lazy recovery on another instance) moved the session first;
// the second pass then yields the precise state error from op itself.
func (s *Service) transition(
	ctx context.Context,
	id uuid.UUID,
	recoverFirst bool,
	op func(e *domain.ActivityLogEntry, now time.Time) error,
) (*domain.ActivityLogEntry, error) {
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		entry, err := s.entries.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if recoverFirst {
			entry, err = s.recoverEntry(ctx, entry)
			if err != nil {
				lastErr = err
				continue
			}
		}

		from := entry.Status
		if err := op(entry, s.clock.Now()); err != nil {
			return nil, err
		}

		updated, err := s.entries.UpdateTransition(ctx, entry, from)
		if err == nil {
			return updated, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// recoverEntry applies crash recovery to entry and persists the result.
// The returned entry reflects what is now in the store.
func (s *Service) recoverEntry(ctx context.Context, entry *domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	from := entry.Status
	action, err := entry.Recover(s.clock.Now(), s.limits)
	if err != nil {
		return nil, err
	}
	// A bare heartbeat refresh is not worth a write here; the heartbeat
	// path persists the fresh timestamp itself.
	if action == domain.RecoveryNone || action == domain.RecoveryRefreshed {
		return entry, nil
	}

	updated, err := s.entries.UpdateTransition(ctx, entry, from)
	if err != nil {
		return nil, err
	}

	s.logRecovery(ctx, updated, action)
	return updated, nil
}

func (s *Service) logRecovery(ctx context.Context, entry *domain.ActivityLogEntry, action domain.RecoveryAction) {
	s.log.InfoContext(ctx, "session recovered",
		slog.String("session_id", entry.ID.String()),
		slog.String("action", action.String()),
		slog.String("status", entry.Status.String()),
	)
}
