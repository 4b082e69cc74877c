// Package common defines shared constants and sentinel errors used across
// the console client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// API taxonomy: every remote failure is mapped onto one of these
	// before it leaves the api package.
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("server unavailable")

	// Job lifecycle errors.
	ErrNoTrackedJob      = errors.New("no tracked analysis job")
	ErrJobNotCancellable = errors.New("job is not in a cancellable state")
)
