package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arkhamd/arkhamd/pkg/httputil"
)

// requestIDHeader carries the per-request trace identifier.
const requestIDHeader = "X-Request-Id"

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMiddleware wraps the route table with request ID assignment, panic
// recovery, and request logging, innermost first.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if p := recover(); p != nil {
				s.log.Error("panic in handler",
					"requestId", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"panic", p)
				httputil.WriteInternalError(rec, "internal_error", "internal server error")
			}

			s.log.Info("request",
				"requestId", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		}()

		next.ServeHTTP(rec, r)
	})
}
