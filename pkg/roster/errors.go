package roster

import (
	"fmt"
	"net/http"
)

// NotFoundError is returned when no record with the requested ID exists.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s record %d not found", e.Resource, e.ID)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// Hint returns a user-friendly suggestion for resolving this error.
func (e *NotFoundError) Hint() string {
	return fmt.Sprintf("Check that record %d exists. Use GET /%s to list available records.", e.ID, e.Resource)
}

// ValidationError is returned when a malformed value reaches a collection or
// a request fails boundary validation. The triggering operation has no
// effect on collection state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// Hint returns a user-friendly suggestion for resolving this error.
func (e *ValidationError) Hint() string {
	if e.Field != "" {
		return fmt.Sprintf("Check the value of field %q in your request body.", e.Field)
	}
	return "Check your request body format and required fields."
}

// StatusCodeError is an interface for errors that carry an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

// HintError is an interface for errors that provide resolution hints.
type HintError interface {
	error
	Hint() string
}
