package domain

import "time"

// TimerLimits holds the temporal thresholds of the timer system (pure domain
// type, mirrored from config).
type TimerLimits struct {
	// MinRecoveryGap is the heartbeat gap below which a session is assumed
	// merely idle (tab switch, short sleep) and only the heartbeat advances.
	MinRecoveryGap time.Duration

	// MaxRecoveryGap is the heartbeat gap at which a session is considered
	// unrecoverable and is finalized as of its last heartbeat.
	MaxRecoveryGap time.Duration

	// MinManualDuration / MaxManualDuration bound the span of a manual entry.
	MinManualDuration time.Duration
	MaxManualDuration time.Duration
}

// DefaultTimerLimits returns the standard thresholds: 5m/24h recovery gaps,
// 5m/24h manual entry duration bounds.
func DefaultTimerLimits() TimerLimits {
	return TimerLimits{
		MinRecoveryGap:    5 * time.Minute,
		MaxRecoveryGap:    24 * time.Hour,
		MinManualDuration: 5 * time.Minute,
		MaxManualDuration: 24 * time.Hour,
	}
}

// Recover heals a session after a heartbeat gap. It is the reconciliation
// step for crashed or abandoned clients, invoked lazily on read and heartbeat
// paths; it is not an error path.
//
// Let gap = now − LastHeartbeat:
//   - not ACTIVE: unchanged (an explicit pause is not a crash, and recovery
//     is idempotent on a completed session);
//   - gap ≤ MinRecoveryGap: heartbeat refreshed, nothing else;
//   - MinRecoveryGap < gap < MaxRecoveryGap: the machine slept or crashed
//     during the gap; a synthetic closed pause [LastHeartbeat, now) is
//     appended so the gap is excluded from the counted duration;
//   - gap ≥ MaxRecoveryGap: finalized as if stopped at LastHeartbeat, so a
//     zombie session is never credited unverified wall-clock time.
func (e *ActivityLogEntry) Recover(now time.Time, limits TimerLimits) (RecoveryAction, error) {
	if err := e.ensureTimer(); err != nil {
		return RecoveryNone, err
	}

	if e.Status != StatusActive {
		return RecoveryNone, nil
	}

	gap := now.Sub(e.LastHeartbeat)
	switch {
	case gap <= limits.MinRecoveryGap:
		e.LastHeartbeat = now
		return RecoveryRefreshed, nil

	case gap < limits.MaxRecoveryGap:
		resumed := now
		e.PauseHistory = append(e.PauseHistory, PauseInterval{
			PauseTime:  e.LastHeartbeat,
			ResumeTime: &resumed,
		})
		e.LastHeartbeat = now
		return RecoveryGapHealed, nil

	default:
		e.finalize(e.LastHeartbeat)
		return RecoveryFinalized, nil
	}
}
