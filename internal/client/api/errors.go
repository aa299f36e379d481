package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	StatusNetworkError    = 0
	StatusUnexpectedError = -1

	MessageNetworkError    = "Network error"
	MessageUnexpectedError = "Unexpected error"
	MessageGenericError    = "An error occurred"
)

// APIError is the single failure shape returned by Client methods.
type APIError struct {
	Status  int
	Message string
	// Err is the transport or construction error, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// StatusOf returns the APIError status carried by err and false when err is
// not an APIError.
func StatusOf(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

func IsNetworkError(err error) bool {
	s, ok := StatusOf(err)
	return ok && s == StatusNetworkError
}

func IsUnauthorized(err error) bool {
	s, ok := StatusOf(err)
	return ok && s == http.StatusUnauthorized
}

func networkError(err error) *APIError {
	return &APIError{Status: StatusNetworkError, Message: MessageNetworkError, Err: err}
}

func unexpectedError(err error) *APIError {
	return &APIError{Status: StatusUnexpectedError, Message: MessageUnexpectedError, Err: err}
}

// statusError builds the error for a response outside the 2xx range. The
// message comes from the body's "message" field; for 400 the first entry of
// "errors" wins when present.
func statusError(status int, body []byte) *APIError {
	message := MessageGenericError

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		if m, ok := payload["message"].(string); ok && m != "" {
			message = m
		}
		if status == http.StatusBadRequest {
			if list, ok := payload["errors"].([]any); ok && len(list) > 0 {
				if m := describe(list[0]); m != "" {
					message = m
				}
			}
		}
	}

	return &APIError{Status: status, Message: message}
}

// describe turns one entry of an "errors" list into text. Entries are either
// plain strings or objects carrying "msg"/"message".
func describe(entry any) string {
	switch e := entry.(type) {
	case string:
		return e
	case map[string]any:
		for _, key := range []string{"msg", "message"} {
			if m, ok := e[key].(string); ok && m != "" {
				return m
			}
		}
	}
	if entry == nil {
		return ""
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return ""
	}
	return string(b)
}
