package util

import "errors"

var (
	// ErrCancelled is reported when the user voluntarily leaves the session,
	// either with the quit sentinel or an interrupt. It is not a failure:
	// the process exits with code 0.
	ErrCancelled = errors.New("cancelled by user")
)
