// Package apperr defines the error kinds that the REST layer maps to status codes.
package apperr

import "errors"

var (
	// ErrNotFound means the requested record does not exist or is soft deleted
	ErrNotFound = errors.New("not found")
	// ErrConflict means the request collides with existing state, e.g. a duplicate JFT No.
	ErrConflict = errors.New("conflict")
	// ErrInvalid means the request failed validation
	ErrInvalid = errors.New("invalid input")
	// ErrUnauthorized means credentials are missing or wrong
	ErrUnauthorized = errors.New("unauthorized")
)
