package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/common"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description must be less than 200 characters")
	ErrNotAuthenticated    = common.ErrUnauthenticated
)

// ValidationError is a client-side input error. It is always returned
// before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ProtocolError means the backend answered successfully but the reply did
// not have the expected shape.
type ProtocolError struct {
	Endpoint string
	Message  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Endpoint)
}
