package server

import (
	"fmt"
	"net/http"

	"github.com/arkhamd/arkhamd/pkg/httputil"
)

func (s *Server) handleStateOverview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	overview := s.registry.Overview()
	s.mu.Unlock()

	httputil.WriteOK(w, overview)
}

// handleStateReset restores collections to their seed data. The optional
// resource query parameter limits the reset to one collection.
func (s *Server) handleStateReset(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("resource")

	s.mu.Lock()
	result, err := s.registry.Reset(name)
	s.mu.Unlock()

	if err != nil {
		httputil.WriteNotFound(w, "not_found", err.Error())
		return
	}

	s.log.Info("state reset", "resources", result.Resources)
	httputil.WriteOK(w, result)
}

// handleStateClear empties collections without touching seed data or ID
// counters. The optional resource query parameter limits it to one
// collection.
func (s *Server) handleStateClear(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("resource")

	s.mu.Lock()
	cleared := map[string]int{}
	if name == "" {
		for _, n := range s.registry.Names() {
			cleared[n] = s.registry.Get(n).Clear()
		}
	} else {
		res := s.registry.Get(name)
		if res == nil {
			s.mu.Unlock()
			httputil.WriteNotFound(w, "not_found", fmt.Sprintf("resource %q not found", name))
			return
		}
		cleared[name] = res.Clear()
	}
	s.mu.Unlock()

	s.log.Info("state cleared", "cleared", cleared)
	httputil.WriteOK(w, map[string]any{"cleared": cleared})
}
