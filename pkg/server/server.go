package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/arkhamd/arkhamd/pkg/config"
	"github.com/arkhamd/arkhamd/pkg/model"
	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Collection names as they appear in URLs and state management.
const (
	ResourceInmates    = "inmates"
	ResourceStaff      = "staff"
	ResourceTreatments = "treatments"
	ResourceIncidents  = "incidents"
)

// Server is the asylum records HTTP server.
type Server struct {
	cfg *config.Config
	log *slog.Logger

	// mu serializes all collection access. Collections are not safe for
	// concurrent use on their own.
	mu sync.Mutex

	registry *roster.Registry
	metrics  *roster.MetricsObserver

	inmates    *roster.Collection[model.Inmate]
	staff      *roster.Collection[model.Staff]
	treatments *roster.Collection[model.Treatment]
	incidents  *roster.Collection[model.Incident]

	httpServer *http.Server
	startedAt  time.Time

	// now is swappable in tests.
	now func() time.Time
}

// New creates a server with its collections seeded from the given roster.
// A nil roster starts with empty collections.
func New(cfg *config.Config, logger *slog.Logger, seed *config.Roster) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if seed == nil {
		seed = &config.Roster{}
	}

	inmates, err := roster.NewCollection(ResourceInmates, seed.Inmates)
	if err != nil {
		return nil, fmt.Errorf("seed inmates: %w", err)
	}
	staff, err := roster.NewCollection(ResourceStaff, seed.Staff)
	if err != nil {
		return nil, fmt.Errorf("seed staff: %w", err)
	}
	treatments, err := roster.NewCollection(ResourceTreatments, seed.Treatments)
	if err != nil {
		return nil, fmt.Errorf("seed treatments: %w", err)
	}
	incidents, err := roster.NewCollection(ResourceIncidents, seed.Incidents)
	if err != nil {
		return nil, fmt.Errorf("seed incidents: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		log:        logger,
		registry:   roster.NewRegistry(),
		metrics:    roster.NewMetricsObserver(),
		inmates:    inmates,
		staff:      staff,
		treatments: treatments,
		incidents:  incidents,
		now:        time.Now,
	}
	s.registry.SetObserver(s.metrics)

	for _, res := range []roster.Resource{inmates, staff, treatments, incidents} {
		if err := s.registry.Register(res); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Handler returns the fully wired HTTP handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.withMiddleware(s.routes())
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.startedAt = s.now()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("records server listening",
		"addr", s.cfg.Addr(),
		"resources", s.registry.Names())

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info("shutting down records server")
	return s.httpServer.Shutdown(ctx)
}

// Registry exposes the resource registry, mainly for tests.
func (s *Server) Registry() *roster.Registry {
	return s.registry
}

// observer returns the hook sink for request instrumentation.
func (s *Server) observer() roster.Observer {
	return s.registry.Observer()
}
