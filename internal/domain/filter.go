package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFilter contains filtering/pagination parameters for activity log
// queries. From/To select entries intersecting the half-open range [From, To).
type EntryFilter struct {
	From       *time.Time
	To         *time.Time
	ActivityID *uuid.UUID
	EntryType  *EntryType
	Status     *SessionStatus
	Limit      int
	Offset     int
}
