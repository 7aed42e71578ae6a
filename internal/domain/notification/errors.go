package notification

import "errors"

// Notification domain errors
var (
	ErrNoSession = errors.New("no authenticated session to aggregate notifications for")
)
