package trial

import "errors"

// Domain errors for trial lifecycle operations.
var (
	ErrNotFound       = errors.New("trial.errors.window_not_found")
	ErrAlreadyInTrial = errors.New("trial.errors.already_in_trial")
	ErrInvalidDays    = errors.New("trial.errors.invalid_days")
)
