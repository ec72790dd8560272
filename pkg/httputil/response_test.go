package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusTeapot, map[string]string{"hello": "world"})

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("body = %v", body)
	}
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantHint   bool
	}{
		{
			name:       "not found",
			err:        &roster.NotFoundError{Resource: "inmates", ID: 42},
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
			wantHint:   true,
		},
		{
			name:       "validation",
			err:        &roster.ValidationError{Field: "dangerLevel", Message: "must be between 1 and 10"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
			wantHint:   true,
		},
		{
			name:       "plain error",
			err:        http.ErrBodyNotAllowed,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error, tt.wantCode)
			}
			if body.Message == "" {
				t.Error("message is empty")
			}
			if tt.wantHint && body.Hint == "" {
				t.Error("expected a hint")
			}
		})
	}
}
