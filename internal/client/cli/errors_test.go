package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &services.ValidationError{Message: "Invalid email format"}, want: "Invalid email format"},
		{err: &services.ProtocolError{Endpoint: "/api/auth/login", Message: "Authentication failed: Token or user data missing"}, want: "Authentication failed: Token or user data missing"},
		{err: &api.APIError{Status: 500, Message: "boom"}, want: "boom"},
		{err: &api.APIError{Status: 0, Message: api.MessageNetworkError}, want: "Network error"},
		{err: &api.APIError{Status: 401, Message: api.MessageGenericError}, want: "Session expired. Please log in again."},
		{err: &api.APIError{Status: 401, Message: "Invalid credentials"}, want: "Invalid credentials"},
		{err: &session.StorageError{Op: "save", Err: errors.New("full")}, want: "Failed to save token to local storage"},
		{err: fmt.Errorf("x: %w", services.ErrNotAuthenticated), want: "User is not authenticated."},
		{err: services.ErrDescriptionRequired, want: "Description is required."},
		{err: services.ErrDescriptionTooLong, want: "Description must be less than 200 characters."},
		{err: usageError("delgoal <number|id>"), want: "Usage: delgoal <number|id>"},
		{err: errors.New("weird"), want: "An unexpected error occurred. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
