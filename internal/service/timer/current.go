package timer

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// GetCurrent returns the session occupying the live slot, or nil if no timer
// is running. Crash recovery is applied first, so a session whose client died
// more than the recovery ceiling ago reads as "no current timer" rather than
// a zombie.
func (s *Service) GetCurrent(ctx context.Context) (*domain.ActivityLogEntry, error) {
	live, err := s.entries.GetLive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get live session: %w", err)
	}

	live, err = s.recoverEntry(ctx, live)
	if err != nil {
		return nil, fmt.Errorf("recover live session: %w", err)
	}
	if !live.Status.IsLive() {
		return nil, nil
	}

	return live, nil
}
