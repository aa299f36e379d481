package cli

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
)

// usageError carries the usage line of a command.
type usageError string

func (e usageError) Error() string { return "Usage: " + string(e) }

// userMessage turns any command error into the single line shown to the
// user.
func userMessage(err error) string {
	var (
		validation *services.ValidationError
		protocol   *services.ProtocolError
		apiErr     *api.APIError
		usage      usageError
	)

	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &usage):
		return usage.Error()
	case errors.As(err, &protocol):
		return protocol.Message
	case errors.Is(err, services.ErrNotAuthenticated):
		return "User is not authenticated."
	case errors.Is(err, services.ErrDescriptionRequired):
		return "Description is required."
	case errors.Is(err, services.ErrDescriptionTooLong):
		return "Description must be less than 200 characters."
	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusUnauthorized && apiErr.Message == api.MessageGenericError {
			return "Session expired. Please log in again."
		}
		return apiErr.Message
	case errors.Is(err, session.ErrStorage):
		return "Failed to save token to local storage"
	}
	return "An unexpected error occurred. Please try again."
}
