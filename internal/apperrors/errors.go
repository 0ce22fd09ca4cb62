package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned by the checkout gate when no session token
	// is present. The UI redirects to the login screen.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound marks lookups on absent keys or identities.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a field-tagged, recoverable rejection. The UI redisplays
// the form with Message next to Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError wraps a transport-level failure. Recoverable; the UI shows a
// retry-worthy message but never retries automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries a message the backend returned with a non-2xx status.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Message converts any error into something the UI can display. Errors are
// never silently swallowed: every rejected operation surfaces here.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "Network error. Please check your connection"
	}
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if errors.Is(err, ErrAuthRequired) {
		return "Please sign in to continue"
	}
	return err.Error()
}
