package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PauseInterval is one pause/resume pair in a timer session's history.
// ResumeTime is nil while the pause is still open; an open interval may exist
// only while the session is PAUSED, and it is always the last one.
type PauseInterval struct {
	PauseTime  time.Time  `json:"pauseTime"`
	ResumeTime *time.Time `json:"resumeTime,omitempty"`
}

// Closed reports whether the pause has been resumed.
func (p PauseInterval) Closed() bool { return p.ResumeTime != nil }

// Gap returns the paused span. Open intervals contribute zero.
func (p PauseInterval) Gap() time.Duration {
	if !p.Closed() {
		return 0
	}
	return p.ResumeTime.Sub(p.PauseTime)
}

// ActivityLogEntry is a committed time interval (manual, or a completed timer
// session) or a live timer session. Timer entries move through the
// ACTIVE/PAUSED/COMPLETED lifecycle; manual entries are born COMPLETED.
type ActivityLogEntry struct {
	ID            uuid.UUID
	ActivityID    uuid.UUID
	EntryType     EntryType
	Status        SessionStatus
	StartTime     time.Time
	EndTime       *time.Time
	LastHeartbeat time.Time
	PauseHistory  []PauseInterval

	// Duration is the net active span in whole seconds. nil until the entry
	// is completed.
	Duration *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimerSession creates a live session starting now.
func NewTimerSession(activityID uuid.UUID, now time.Time) *ActivityLogEntry {
	return &ActivityLogEntry{
		ID:            uuid.New(),
		ActivityID:    activityID,
		EntryType:     EntryTypeTimer,
		Status:        StatusActive,
		StartTime:     now,
		LastHeartbeat: now,
		PauseHistory:  []PauseInterval{},
	}
}

// NewManualEntry creates a completed entry for a retroactive interval.
// The caller is responsible for validating the interval first; the duration
// is the raw span since manual entries carry no pauses.
func NewManualEntry(activityID uuid.UUID, start, end time.Time) *ActivityLogEntry {
	duration := int64(end.Sub(start).Round(time.Second) / time.Second)
	return &ActivityLogEntry{
		ID:            uuid.New(),
		ActivityID:    activityID,
		EntryType:     EntryTypeManual,
		Status:        StatusCompleted,
		StartTime:     start,
		EndTime:       &end,
		LastHeartbeat: end,
		PauseHistory:  []PauseInterval{},
		Duration:      &duration,
	}
}

// OpenPause returns the trailing unresumed pause, or nil.
func (e *ActivityLogEntry) OpenPause() *PauseInterval {
	if len(e.PauseHistory) == 0 {
		return nil
	}
	last := &e.PauseHistory[len(e.PauseHistory)-1]
	if last.Closed() {
		return nil
	}
	return last
}

// Pause transitions ACTIVE → PAUSED, opening a new pause interval.
func (e *ActivityLogEntry) Pause(now time.Time) error {
	if err := e.ensureTimer(); err != nil {
		return err
	}

	switch e.Status {
	case StatusActive:
		e.PauseHistory = append(e.PauseHistory, PauseInterval{PauseTime: now})
		e.Status = StatusPaused
		e.LastHeartbeat = now
		return nil
	case StatusPaused:
		return ErrAlreadyPaused
	case StatusCompleted:
		return ErrAlreadyStopped
	default:
		return e.unknownStatus()
	}
}

// Resume transitions PAUSED → ACTIVE, closing the open pause interval.
func (e *ActivityLogEntry) Resume(now time.Time) error {
	if err := e.ensureTimer(); err != nil {
		return err
	}

	switch e.Status {
	case StatusPaused:
		open := e.OpenPause()
		if open == nil {
			return ErrNoPauseToResume
		}
		resumed := now
		open.ResumeTime = &resumed
		e.Status = StatusActive
		e.LastHeartbeat = now
		return nil
	case StatusActive:
		return ErrAlreadyActive
	case StatusCompleted:
		return ErrAlreadyStopped
	default:
		return e.unknownStatus()
	}
}

// Heartbeat records a liveness pulse. Permitted while ACTIVE or PAUSED;
// it never changes status.
func (e *ActivityLogEntry) Heartbeat(now time.Time) error {
	if err := e.ensureTimer(); err != nil {
		return err
	}

	switch e.Status {
	case StatusActive, StatusPaused:
		e.LastHeartbeat = now
		return nil
	case StatusCompleted:
		return ErrAlreadyStopped
	default:
		return e.unknownStatus()
	}
}

// Stop finalizes an ACTIVE session at now. A paused session must be resumed
// first so its trailing pause is closed and accounted for.
func (e *ActivityLogEntry) Stop(now time.Time) error {
	if err := e.ensureTimer(); err != nil {
		return err
	}

	switch e.Status {
	case StatusActive:
		e.finalize(now)
		return nil
	case StatusPaused:
		return ErrMustResumeBeforeStop
	case StatusCompleted:
		return ErrAlreadyStopped
	default:
		return e.unknownStatus()
	}
}

// EnsureResettable reports whether the session may still be discarded.
// Completed sessions are immutable history.
func (e *ActivityLogEntry) EnsureResettable() error {
	if err := e.ensureTimer(); err != nil {
		return err
	}
	if e.Status == StatusCompleted {
		return ErrAlreadyStopped
	}
	return nil
}

// finalize completes the session as of end, computing the net duration over
// [StartTime, end) minus closed pause gaps.
func (e *ActivityLogEntry) finalize(end time.Time) {
	finished := end
	duration := NetDuration(e.StartTime, end, e.PauseHistory)
	e.EndTime = &finished
	e.LastHeartbeat = finished
	e.Duration = &duration
	e.Status = StatusCompleted
}

func (e *ActivityLogEntry) ensureTimer() error {
	if e.EntryType != EntryTypeTimer {
		return ErrWrongEntryKind
	}
	return nil
}

func (e *ActivityLogEntry) unknownStatus() error {
	return fmt.Errorf("%w: unknown session status %q", ErrValidation, e.Status)
}

// NetDuration is the pause ledger: the active portion of [start, end) in
// whole seconds. Closed pause intervals are subtracted; open ones contribute
// zero (a still-open pause never coexists with a stop). The result is rounded
// to the nearest second and floored at zero.
func NetDuration(start, end time.Time, history []PauseInterval) int64 {
	var paused time.Duration
	for _, p := range history {
		paused += p.Gap()
	}

	net := end.Sub(start) - paused
	seconds := int64(net.Round(time.Second) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
