package entry

import (
	"fmt"
	"time"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// lookbackFloor is the earliest permitted start for a backdated entry:
// midnight of yesterday relative to now, in now's location. "Yesterday" is
// anchored to the moment of validation, not to the submitted start time.
func lookbackFloor(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -1)
}

// validateInterval enforces the temporal rules for a manual entry interval:
// the lookback window, no future instants, ordering, and duration bounds.
func (s *Service) validateInterval(now, start, end time.Time) error {
	var errs []domain.FieldError

	if start.Before(lookbackFloor(now)) {
		errs = append(errs, domain.FieldError{
			Field:   "start_time",
			Message: "outside the lookback window (today or yesterday)",
		})
	}
	if start.After(now) {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "must not be in the future"})
	}
	if end.After(now) {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must not be in the future"})
	}
	if end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must not precede start time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	span := end.Sub(start)
	if span < s.limits.MinManualDuration {
		return domain.NewValidationError("end_time",
			fmt.Sprintf("entry must last at least %s", s.limits.MinManualDuration))
	}
	if span > s.limits.MaxManualDuration {
		return domain.NewValidationError("end_time",
			fmt.Sprintf("entry must not exceed %s", s.limits.MaxManualDuration))
	}

	return nil
}
