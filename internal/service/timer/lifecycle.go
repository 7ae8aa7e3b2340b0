package timer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Pause suspends an active session, opening a new pause interval.
func (s *Service) Pause(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return s.transition(ctx, id, false, func(e *domain.ActivityLogEntry, now time.Time) error {
		return e.Pause(now)
	})
}

// Resume closes the open pause interval and reactivates the session.
func (s *Service) Resume(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return s.transition(ctx, id, false, func(e *domain.ActivityLogEntry, now time.Time) error {
		return e.Resume(now)
	})
}

// Heartbeat refreshes the session's liveness timestamp. Crash recovery runs
// first, so a heartbeat arriving after a long gap heals or finalizes the
// session instead of silently crediting the gap.
func (s *Service) Heartbeat(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return s.transition(ctx, id, true, func(e *domain.ActivityLogEntry, now time.Time) error {
		return e.Heartbeat(now)
	})
}

// Stop completes an active session and computes its net duration. Stopping a
// paused session is rejected; the client must resume first.
func (s *Service) Stop(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	stopped, err := s.transition(ctx, id, false, func(e *domain.ActivityLogEntry, now time.Time) error {
		return e.Stop(now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session stopped",
		slog.String("session_id", stopped.ID.String()),
		slog.Int64("duration_seconds", derefDuration(stopped.Duration)),
	)
	return stopped, nil
}

// Reset discards a live session without leaving a terminal record. The delete
// is guarded on the live statuses, so a reset racing a stop cannot destroy
// the completed entry the stop just produced.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := entry.EnsureResettable(); err != nil {
		return err
	}

	if err := s.entries.DeleteLive(ctx, id); err != nil {
		// Guard miss: re-derive the precise state error for the caller.
		if errors.Is(err, domain.ErrConflict) {
			if fresh, getErr := s.entries.GetByID(ctx, id); getErr == nil {
				if stateErr := fresh.EnsureResettable(); stateErr != nil {
					return stateErr
				}
			}
		}
		return err
	}

	s.log.InfoContext(ctx, "session reset",
		slog.String("session_id", id.String()),
	)
	return nil
}

func derefDuration(d *int64) int64 {
	if d == nil {
		return 0
	}
	return *d
}
