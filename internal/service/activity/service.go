// Package activity manages the activity catalog: the named, colored
// categories that timer sessions and manual entries are logged against.
package activity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UsageCounts(ctx context.Context) ([]domain.ActivityUsage, error)
}

// Service implements the activity catalog business logic.
type Service struct {
	activities activityRepo
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activities activityRepo) *Service {
	return &Service{
		activities: activities,
		log:        log.With(slog.String("service", "activity")),
	}
}

// Create adds a new activity to the catalog.
func (s *Service) Create(ctx context.Context, name, color string) (*domain.Activity, error) {
	if err := domain.ValidateActivityName(name); err != nil {
		return nil, err
	}
	if err := domain.ValidateActivityColor(color); err != nil {
		return nil, err
	}

	created, err := s.activities.Create(ctx, &domain.Activity{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Color: color,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("activity_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Get returns one activity by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

// List returns the whole catalog ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

// Update applies partial changes to an activity.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error) {
	if params.Name == nil && params.Color == nil {
		return nil, domain.NewValidationError("activity", "nothing to update")
	}
	if params.Name != nil {
		if err := domain.ValidateActivityName(*params.Name); err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(*params.Name)
		params.Name = &trimmed
	}
	if params.Color != nil {
		if err := domain.ValidateActivityColor(*params.Color); err != nil {
			return nil, err
		}
	}

	updated, err := s.activities.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.String("activity_id", id.String()),
	)

	return updated, nil
}

// Delete removes an activity. Activities still referenced by log entries
// cannot be deleted; the conflict is surfaced to the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("activity_id", id.String()),
	)
	return nil
}

// Stats returns per-activity completed entry counts and total logged time.
func (s *Service) Stats(ctx context.Context) ([]domain.ActivityUsage, error) {
	return s.activities.UsageCounts(ctx)
}
