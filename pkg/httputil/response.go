// Package httputil provides shared HTTP utilities for consistent response
// handling across the records API.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	// Error is a short machine-readable error code.
	Error string `json:"error"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// Hint suggests how to resolve the error, when the domain error
	// provides one.
	Hint string `json:"hint,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteOK writes a 200 OK response with data.
func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteCreated writes a 201 Created response with the created record.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, status int, errCode, message string) {
	WriteJSON(w, status, ErrorBody{Error: errCode, Message: message})
}

// WriteBadRequest writes a 400 Bad Request error response.
func WriteBadRequest(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusBadRequest, errCode, message)
}

// WriteNotFound writes a 404 Not Found error response.
func WriteNotFound(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusNotFound, errCode, message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusInternalServerError, errCode, message)
}

// WriteDomainError maps a collection error to its HTTP response. Errors
// that carry a status code (NotFoundError, ValidationError) keep it; any
// other error is treated as internal.
func WriteDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	if sc, ok := err.(roster.StatusCodeError); ok {
		status = sc.StatusCode()
		switch status {
		case http.StatusNotFound:
			code = "not_found"
		case http.StatusBadRequest:
			code = "invalid_input"
		}
	}

	body := ErrorBody{Error: code, Message: err.Error()}
	if he, ok := err.(roster.HintError); ok {
		body.Hint = he.Hint()
	}
	WriteJSON(w, status, body)
}
