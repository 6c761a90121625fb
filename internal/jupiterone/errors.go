package jupiterone

import (
	"errors"
	"strings"
)

// APIError is returned for every failed GraphQL operation. Its message is the
// platform's own error text so that callers can classify it.
type APIError struct {
	Operation string
	Message   string
	Err       error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(operation string, err error) *APIError {
	msg := strings.TrimPrefix(err.Error(), "graphql: ")
	if msg == "" {
		msg = "Unknown error"
	}
	return &APIError{Operation: operation, Message: msg, Err: err}
}

// IsAPIError reports whether err came back from the JupiterOne API.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func errInvalidResponse(operation string) *APIError {
	return &APIError{Operation: operation, Message: "Invalid response structure from JupiterOne API"}
}
