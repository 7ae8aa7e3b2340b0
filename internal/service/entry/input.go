package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// CreateEntryInput holds the parameters for logging a manual entry.
type CreateEntryInput struct {
	ActivityID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for editing a manual entry.
// Nil fields keep their current value.
type UpdateEntryInput struct {
	ActivityID *uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	if i.ActivityID == nil && i.StartTime == nil && i.EndTime == nil {
		return domain.NewValidationError("entry", "nothing to update")
	}
	if i.ActivityID != nil && *i.ActivityID == uuid.Nil {
		return domain.NewValidationError("activity_id", "must not be empty")
	}
	return nil
}

// ListEntriesInput holds the parameters for querying the activity log.
type ListEntriesInput struct {
	From       *time.Time
	To         *time.Time
	ActivityID *uuid.UUID
	EntryType  *domain.EntryType
	Status     *domain.SessionStatus
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be before to"})
	}
	if i.EntryType != nil && !i.EntryType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entry_type", Message: "unknown entry type"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListEntriesInput) filter() domain.EntryFilter {
	return domain.EntryFilter{
		From:       i.From,
		To:         i.To,
		ActivityID: i.ActivityID,
		EntryType:  i.EntryType,
		Status:     i.Status,
		Limit:      i.Limit,
		Offset:     i.Offset,
	}
}
