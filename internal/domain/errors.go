package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// StateError is returned when a timer operation is requested from a status
// that does not permit it. Self-transitions (active→active, paused→paused)
// are rejected with these errors, never silently accepted.
type StateError struct {
	Code   string
	Status SessionStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s (session is %s)", e.Code, e.Status)
}

func (e *StateError) Unwrap() error { return ErrConflict }

// Illegal transition errors, one per (state, operation) rejection.
var (
	ErrAlreadyActive        = &StateError{Code: "timer already running", Status: StatusActive}
	ErrAlreadyPaused        = &StateError{Code: "timer already paused", Status: StatusPaused}
	ErrAlreadyStopped       = &StateError{Code: "timer already stopped", Status: StatusCompleted}
	ErrMustResumeBeforeStop = &StateError{Code: "resume the timer before stopping it", Status: StatusPaused}
	ErrNoPauseToResume      = &StateError{Code: "no open pause to resume from", Status: StatusPaused}
)

// ErrWrongEntryKind is returned when a timer operation resolves to a manual
// entry. Manual entries have no lifecycle.
var ErrWrongEntryKind = fmt.Errorf("%w: entry is not a timer session", ErrValidation)

// ActiveTimerError is returned by start when another session already occupies
// the live-timer slot. It carries the existing session so the caller can
// resolve the conflict (stop, reset or resume it).
type ActiveTimerError struct {
	Session *ActivityLogEntry
}

func (e *ActiveTimerError) Error() string {
	return fmt.Sprintf("a timer is already %s for activity %s",
		e.Session.Status, e.Session.ActivityID)
}

func (e *ActiveTimerError) Unwrap() error { return ErrConflict }

// OverlapConflict describes the completed interval a candidate collides with.
type OverlapConflict struct {
	EntryID      uuid.UUID
	ActivityID   uuid.UUID
	ActivityName string
	StartTime    time.Time
	EndTime      time.Time
}

// OverlapError is returned when a candidate interval overlaps a committed one.
type OverlapError struct {
	Conflict OverlapConflict
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("interval overlaps %q logged from %s to %s",
		e.Conflict.ActivityName,
		e.Conflict.StartTime.Local().Format("2006-01-02 15:04"),
		e.Conflict.EndTime.Local().Format("2006-01-02 15:04"),
	)
}

func (e *OverlapError) Unwrap() error { return ErrConflict }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
