package trial

import "time"

// Config holds trial settings loaded from the environment.
type Config struct {
	// DefaultDurationDays is granted when a tenant opts into a trial
	// without an explicit duration.
	DefaultDurationDays int `env:"TRIAL_DURATION_DAYS" envDefault:"45"`

	// SweepInterval is how often the expiry sweep runs.
	SweepInterval time.Duration `env:"TRIAL_SWEEP_INTERVAL" envDefault:"24h"`
}
