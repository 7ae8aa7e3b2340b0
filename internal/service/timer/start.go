package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Start creates a new active session for the activity.
//
// The live-timer slot is checked first (with lazy recovery, so a crashed
// session older than the recovery ceiling frees the slot instead of blocking
// it forever). The store's own uniqueness guarantee backs the check: when two
// starts race past it, one insert fails and that caller gets the winner's
// session in the conflict error.
func (s *Service) Start(ctx context.Context, activityID uuid.UUID) (*domain.ActivityLogEntry, error) {
	exists, err := s.activities.Exists(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}

	live, err := s.entries.GetLive(ctx)
	if err == nil {
		live, err = s.recoverEntry(ctx, live)
		if err != nil {
			return nil, fmt.Errorf("recover live session: %w", err)
		}
		if live.Status.IsLive() {
			return nil, &domain.ActiveTimerError{Session: live}
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check live session: %w", err)
	}

	session := domain.NewTimerSession(activityID, s.clock.Now())

	created, err := s.entries.Create(ctx, session)
	if err != nil {
		// Race: another request started a timer between check and create.
		if errors.Is(err, domain.ErrAlreadyExists) {
			winner, getErr := s.entries.GetLive(ctx)
			if getErr != nil {
				return nil, fmt.Errorf("get live after race: %w", getErr)
			}
			return nil, &domain.ActiveTimerError{Session: winner}
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", created.ID.String()),
		slog.String("activity_id", activityID.String()),
	)

	return created, nil
}
