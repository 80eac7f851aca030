package domain

import "fmt"

// ValidationError reports a rejected input field. The message is meant to be
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalidField(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
