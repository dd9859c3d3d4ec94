package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrBadRequest     = errors.New("bad request")
	ErrUpstream       = errors.New("upstream service failure")
	ErrInternalServer = errors.New("internal server error")

	// Registration uniqueness violations, distinguishable from a generic
	// conflict so the signup response can name the offending field.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateRegNumber = errors.New("registration number already registered")

	// ErrAlreadyDecided is returned when a verification decision targets a
	// user whose status already left "pending". Turns the concurrent
	// double-decision race into a detectable conflict instead of a silent
	// last-write-wins overwrite.
	ErrAlreadyDecided = errors.New("verification already decided")
)
