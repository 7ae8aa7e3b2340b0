package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is a user-defined category that time is tracked against.
// Names are unique across the catalog.
type Activity struct {
	ID        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivityUpdateParams holds partial-update fields for an activity.
// nil means "leave unchanged".
type ActivityUpdateParams struct {
	Name  *string
	Color *string
}

// ActivityUsage is a read projection: how much completed time is logged
// against an activity.
type ActivityUsage struct {
	ActivityID   uuid.UUID
	Name         string
	Color        string
	Entries      int
	TotalSeconds int64
}

const maxActivityNameLen = 100

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateActivityName checks length and non-emptiness after trimming.
func ValidateActivityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name", "must not be empty")
	}
	if len(trimmed) > maxActivityNameLen {
		return NewValidationError("name", "must be at most 100 characters")
	}
	return nil
}

// ValidateActivityColor checks the #RRGGBB display color format.
func ValidateActivityColor(color string) error {
	if !hexColorRe.MatchString(color) {
		return NewValidationError("color", "must be a #RRGGBB hex color")
	}
	return nil
}
