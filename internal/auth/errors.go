package auth

import "errors"

var (
	// ErrMissingCredentials: username or password left empty at login.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials: unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveAccount: credentials are right but the account is disabled.
	ErrInactiveAccount = errors.New("account is inactive")
	// ErrUnauthorized covers a missing, unknown or expired token alike.
	ErrUnauthorized = errors.New("unauthorized")
)
