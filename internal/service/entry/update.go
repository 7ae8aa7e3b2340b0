package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Update edits a manual entry's interval or activity reference. The merged
// interval goes through the same temporal and overlap validation as creation,
// with the entry itself excluded from the overlap check.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*domain.ActivityLogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.EntryType != domain.EntryTypeManual {
		return nil, domain.ErrWrongEntryKind
	}

	activityID := current.ActivityID
	if input.ActivityID != nil {
		activityID = *input.ActivityID
		exists, err := s.activities.Exists(ctx, activityID)
		if err != nil {
			return nil, fmt.Errorf("check activity: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
	}

	start := current.StartTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	end := *current.EndTime
	if input.EndTime != nil {
		end = *input.EndTime
	}

	// Temporal rules only re-apply when the interval itself moves; switching
	// the activity on an old entry must not trip the lookback window.
	intervalChanged := input.StartTime != nil || input.EndTime != nil
	if intervalChanged {
		if err := s.validateInterval(s.clock.Now(), start, end); err != nil {
			return nil, err
		}
	}

	duration := int64(end.Sub(start).Round(time.Second) / time.Second)
	current.ActivityID = activityID
	current.StartTime = start
	current.EndTime = &end
	current.Duration = &duration

	var updated *domain.ActivityLogEntry
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		conflict, err := s.entries.FindOverlapping(ctx, start, end, id)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if conflict != nil {
			return &domain.OverlapError{Conflict: *conflict}
		}

		updated, err = s.entries.UpdateManual(ctx, current)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual entry updated",
		slog.String("entry_id", id.String()),
	)

	return updated, nil
}

// Delete removes a manual entry permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.EntryType != domain.EntryTypeManual {
		return domain.ErrWrongEntryKind
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "manual entry deleted",
		slog.String("entry_id", id.String()),
	)
	return nil
}
