package entry

import (
	"context"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Get returns one activity log entry by id, manual or timer-derived.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error) {
	return s.entries.GetByID(ctx, id)
}

// List returns activity log entries matching the filter, newest first, plus
// the total match count for pagination.
func (s *Service) List(ctx context.Context, input ListEntriesInput) ([]*domain.ActivityLogEntry, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	return s.entries.List(ctx, input.filter())
}
