package timer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Recover runs crash recovery on the session explicitly and reports what it
// did. Idempotent: paused and completed sessions come back unchanged with
// RecoveryNone.
func (s *Service) Recover(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, domain.RecoveryAction, error) {
	for attempt := 0; attempt < 2; attempt++ {
		entry, err := s.entries.GetByID(ctx, id)
		if err != nil {
			return nil, domain.RecoveryNone, err
		}

		from := entry.Status
		action, err := entry.Recover(s.clock.Now(), s.limits)
		if err != nil {
			return nil, domain.RecoveryNone, err
		}
		if action == domain.RecoveryNone {
			return entry, action, nil
		}

		updated, err := s.entries.UpdateTransition(ctx, entry, from)
		if err == nil {
			s.logRecovery(ctx, updated, action)
			return updated, action, nil
		}
		if errors.Is(err, domain.ErrConflict) && attempt == 0 {
			continue
		}
		return nil, domain.RecoveryNone, fmt.Errorf("persist recovery: %w", err)
	}

	return nil, domain.RecoveryNone, fmt.Errorf("session %s: %w", id, domain.ErrConflict)
}

// RecoverLive applies crash recovery to whichever session holds the live
// slot, if any. Used by the periodic reaper job; the lazy per-request paths
// cover interactive traffic.
func (s *Service) RecoverLive(ctx context.Context) (*domain.ActivityLogEntry, domain.RecoveryAction, error) {
	live, err := s.entries.GetLive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.RecoveryNone, nil
		}
		return nil, domain.RecoveryNone, fmt.Errorf("get live session: %w", err)
	}

	return s.Recover(ctx, live.ID)
}
