package domain

// EntryType distinguishes retroactive manual entries from live timer sessions.
// It is immutable after creation.
type EntryType string

const (
	EntryTypeManual EntryType = "MANUAL"
	EntryTypeTimer  EntryType = "TIMER"
)

func (t EntryType) String() string { return string(t) }

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeManual, EntryTypeTimer:
		return true
	}
	return false
}

// SessionStatus is the lifecycle state of a timer entry. Manual entries are
// created directly in COMPLETED and never leave it.
type SessionStatus string

const (
	StatusActive    SessionStatus = "ACTIVE"
	StatusPaused    SessionStatus = "PAUSED"
	StatusCompleted SessionStatus = "COMPLETED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// IsLive reports whether the status still occupies the single live-timer slot.
func (s SessionStatus) IsLive() bool {
	return s == StatusActive || s == StatusPaused
}

// RecoveryAction describes what crash recovery did to a session.
type RecoveryAction string

const (
	// RecoveryNone: session was not ACTIVE (paused or completed); nothing changed.
	RecoveryNone RecoveryAction = "NONE"
	// RecoveryRefreshed: gap was within the confirmation floor; only the
	// heartbeat moved forward.
	RecoveryRefreshed RecoveryAction = "REFRESHED"
	// RecoveryGapHealed: a synthetic pause covering the gap was injected.
	RecoveryGapHealed RecoveryAction = "GAP_HEALED"
	// RecoveryFinalized: the gap exceeded the ceiling; the session was
	// completed as of its last heartbeat.
	RecoveryFinalized RecoveryAction = "FINALIZED"
)

func (a RecoveryAction) String() string { return string(a) }
