package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Session-level errors.
	ErrUnauthenticated = errors.New("user is not authenticated")
)
