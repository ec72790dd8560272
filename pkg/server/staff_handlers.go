package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/model"
	"github.com/arkhamd/arkhamd/pkg/roster"
)

// checkAssignedInmates verifies every assigned inmate exists. The caller
// must hold the serialization lock.
func (s *Server) checkAssignedInmates(ids []int64) error {
	for _, id := range ids {
		if _, err := s.inmates.Get(id); err != nil {
			return &roster.ValidationError{
				Field:   "assignedInmates",
				Message: fmt.Sprintf("inmate %d does not exist", id),
			}
		}
	}
	return nil
}

func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	active, err := queryBool(q, "active")
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	filter := &model.StaffFilter{
		Name:       q.Get("name"),
		Position:   q.Get("position"),
		Department: q.Get("department"),
		Active:     active,
	}
	offset, limit, err := queryPage(q)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	matched := s.staff.Select(filter.Predicate())
	s.mu.Unlock()

	page, total := roster.Page(matched, offset, limit, s.cfg.PageLimit)
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}

	s.observer().OnList(ResourceStaff, len(page), time.Since(start))
	httputil.WriteOK(w, listResponse(page, total, offset, limit))
}

func (s *Server) handleGetStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	rec, err := s.staff.Get(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceStaff, "get", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnRead(ResourceStaff, id, time.Since(start))
	httputil.WriteOK(w, rec)
}

func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body model.CreateStaff
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceStaff, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if err := s.checkAssignedInmates(body.AssignedInmates); err != nil {
		s.mu.Unlock()
		s.observer().OnError(ResourceStaff, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}
	created := s.staff.Create(body.Record(s.now()))
	s.mu.Unlock()

	s.observer().OnCreate(ResourceStaff, created.ID, time.Since(start))
	httputil.WriteCreated(w, created)
}

func (s *Server) handlePatchStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var patch model.StaffPatch
	if err := decodeBody(r, &patch); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := patch.Validate(); err != nil {
		s.observer().OnError(ResourceStaff, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if patch.AssignedInmates != nil {
		if err := s.checkAssignedInmates(*patch.AssignedInmates); err != nil {
			s.mu.Unlock()
			s.observer().OnError(ResourceStaff, "update", err)
			httputil.WriteDomainError(w, err)
			return
		}
	}
	updated, err := s.staff.Update(id, patch.Apply)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceStaff, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceStaff, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

// handlePutStaff replaces the full record, preserving the hire date.
func (s *Server) handlePutStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var body model.CreateStaff
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceStaff, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	if err := s.checkAssignedInmates(body.AssignedInmates); err != nil {
		s.mu.Unlock()
		s.observer().OnError(ResourceStaff, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	updated, err := s.staff.Update(id, func(old model.Staff) model.Staff {
		return body.Record(old.HireDate)
	})
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceStaff, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceStaff, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	removed, err := s.staff.Delete(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceStaff, "delete", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnDelete(ResourceStaff, id, time.Since(start))
	httputil.WriteOK(w, removed)
}
