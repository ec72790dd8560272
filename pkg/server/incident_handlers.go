package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/model"
	"github.com/arkhamd/arkhamd/pkg/roster"
)

// checkIncidentRefs verifies the referenced inmate and staff exist. The
// caller must hold the serialization lock.
func (s *Server) checkIncidentRefs(inmateID int64, staffInvolved []int64) error {
	if _, err := s.inmates.Get(inmateID); err != nil {
		return &roster.ValidationError{
			Field:   "inmateId",
			Message: fmt.Sprintf("inmate %d does not exist", inmateID),
		}
	}
	return s.checkStaffInvolved(staffInvolved)
}

// checkStaffInvolved verifies every listed staff member exists. The caller
// must hold the serialization lock.
func (s *Server) checkStaffInvolved(ids []int64) error {
	for _, id := range ids {
		if _, err := s.staff.Get(id); err != nil {
			return &roster.ValidationError{
				Field:   "staffInvolved",
				Message: fmt.Sprintf("staff member %d does not exist", id),
			}
		}
	}
	return nil
}

// incidentFilterFromQuery builds an IncidentFilter from list query
// parameters.
func incidentFilterFromQuery(r *http.Request) (*model.IncidentFilter, error) {
	q := r.URL.Query()

	inmateID, err := queryInt64(q, "inmateId")
	if err != nil {
		return nil, err
	}
	minSeverity, err := queryInt(q, "minSeverity")
	if err != nil {
		return nil, err
	}

	f := &model.IncidentFilter{
		InmateID:    inmateID,
		Type:        q.Get("type"),
		Description: q.Get("description"),
		MinSeverity: minSeverity,
	}
	if raw := q.Get("after"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			t, perr = time.Parse("2006-01-02", raw)
		}
		if perr != nil {
			return nil, &roster.ValidationError{Field: "after", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD date"}
		}
		f.After = &t
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Server) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter, err := incidentFilterFromQuery(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	offset, limit, err := queryPage(r.URL.Query())
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	matched := s.incidents.Select(filter.Predicate())
	s.mu.Unlock()

	page, total := roster.Page(matched, offset, limit, s.cfg.PageLimit)
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}

	s.observer().OnList(ResourceIncidents, len(page), time.Since(start))
	httputil.WriteOK(w, listResponse(page, total, offset, limit))
}

func (s *Server) handleGetIncident(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	rec, err := s.incidents.Get(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceIncidents, "get", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnRead(ResourceIncidents, id, time.Since(start))
	httputil.WriteOK(w, rec)
}

func (s *Server) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body model.CreateIncident
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceIncidents, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if err := s.checkIncidentRefs(body.InmateID, body.StaffInvolved); err != nil {
		s.mu.Unlock()
		s.observer().OnError(ResourceIncidents, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}
	created := s.incidents.Create(body.Record(s.now()))
	s.mu.Unlock()

	s.observer().OnCreate(ResourceIncidents, created.ID, time.Since(start))
	httputil.WriteCreated(w, created)
}

func (s *Server) handlePatchIncident(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var patch model.IncidentPatch
	if err := decodeBody(r, &patch); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := patch.Validate(); err != nil {
		s.observer().OnError(ResourceIncidents, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if patch.StaffInvolved != nil {
		if err := s.checkStaffInvolved(*patch.StaffInvolved); err != nil {
			s.mu.Unlock()
			s.observer().OnError(ResourceIncidents, "update", err)
			httputil.WriteDomainError(w, err)
			return
		}
	}
	updated, err := s.incidents.Update(id, patch.Apply)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceIncidents, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceIncidents, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

// handlePutIncident replaces the full record, preserving the original date
// when the body omits one.
func (s *Server) handlePutIncident(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var body model.CreateIncident
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceIncidents, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if err := s.checkIncidentRefs(body.InmateID, body.StaffInvolved); err != nil {
		s.mu.Unlock()
		s.observer().OnError(ResourceIncidents, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	updated, err := s.incidents.Update(id, func(old model.Incident) model.Incident {
		return body.Record(old.Date)
	})
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceIncidents, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceIncidents, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

func (s *Server) handleDeleteIncident(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	removed, err := s.incidents.Delete(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceIncidents, "delete", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnDelete(ResourceIncidents, id, time.Since(start))
	httputil.WriteOK(w, removed)
}
