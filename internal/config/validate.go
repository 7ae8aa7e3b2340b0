package config

import (
	"fmt"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Timer.validate(); err != nil {
		return fmt.Errorf("timer: %w", err)
	}

	return nil
}

func (t *TimerConfig) validate() error {
	if t.MinRecoveryGap <= 0 {
		return fmt.Errorf("min_recovery_gap must be > 0 (got %v)", t.MinRecoveryGap)
	}
	if t.MaxRecoveryGap <= t.MinRecoveryGap {
		return fmt.Errorf("max_recovery_gap (%v) must be > min_recovery_gap (%v)",
			t.MaxRecoveryGap, t.MinRecoveryGap)
	}
	if t.MinManualDuration <= 0 {
		return fmt.Errorf("min_manual_duration must be > 0 (got %v)", t.MinManualDuration)
	}
	if t.MaxManualDuration <= t.MinManualDuration {
		return fmt.Errorf("max_manual_duration (%v) must be > min_manual_duration (%v)",
			t.MaxManualDuration, t.MinManualDuration)
	}
	return nil
}

// Limits converts the config section into the pure domain type consumed by
// the timer and entry services.
func (t TimerConfig) Limits() domain.TimerLimits {
	return domain.TimerLimits{
		MinRecoveryGap:    t.MinRecoveryGap,
		MaxRecoveryGap:    t.MaxRecoveryGap,
		MinManualDuration: t.MinManualDuration,
		MaxManualDuration: t.MaxManualDuration,
	}
}
