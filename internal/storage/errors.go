package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTaskNotFound indicates that task with this id was not found
	// in either the todos or the completed list of the user
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreUnavailable indicates an infrastructure-level failure of the
	// backing store (unreachable file, failed open, failed ping)
	ErrStoreUnavailable = errors.New("store unavailable")
)
