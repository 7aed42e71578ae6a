package session

import "errors"

// Session domain errors
var (
	ErrInvalidLoginResponse = errors.New("login response missing user or token")
	ErrNotAuthenticated     = errors.New("no authenticated session")
)
