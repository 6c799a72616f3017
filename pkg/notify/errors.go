package notify

import "errors"

var (
	ErrFailedToSend  = errors.New("notify.errors.failed_to_send")
	ErrInvalidConfig = errors.New("notify.errors.invalid_config")
)
