package session

import (
	"errors"
	"fmt"
)

var (
	ErrStorage     = errors.New("session storage error")
	ErrEmptyToken  = errors.New("empty token")
	ErrInvalidUser = errors.New("user must be an object or nil")
	ErrNotJWT      = errors.New("token is not a JWT")
)

// StorageError reports a failed durable-storage operation on the token slot.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
