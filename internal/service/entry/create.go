package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// CreateManual validates and logs a backdated manual entry.
//
// The validation order is deliberate: reference first, then the temporal
// rules, then the overlap check, so the caller always sees the most
// fundamental failure. The overlap check and insert share a transaction;
// the store's exclusion constraint still backs them against a concurrent
// writer committing an overlapping interval in between.
func (s *Service) CreateManual(ctx context.Context, input CreateEntryInput) (*domain.ActivityLogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.activities.Exists(ctx, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("activity %s: %w", input.ActivityID, domain.ErrNotFound)
	}

	if err := s.validateInterval(s.clock.Now(), input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	var created *domain.ActivityLogEntry
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		conflict, err := s.entries.FindOverlapping(ctx, input.StartTime, input.EndTime, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if conflict != nil {
			return &domain.OverlapError{Conflict: *conflict}
		}

		entry := domain.NewManualEntry(input.ActivityID, input.StartTime, input.EndTime)
		created, err = s.entries.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("activity_id", created.ActivityID.String()),
		slog.Int64("duration_seconds", *created.Duration),
	)

	return created, nil
}
