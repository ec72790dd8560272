package server

import (
	"net/http"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/model"
	"github.com/arkhamd/arkhamd/pkg/roster"
)

func (s *Server) handleListTreatments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	minRate, err := queryFloat(q, "minSuccessRate")
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	filter := &model.TreatmentFilter{
		Name:           q.Get("name"),
		Description:    q.Get("description"),
		MinSuccessRate: minRate,
	}
	offset, limit, err := queryPage(q)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	matched := s.treatments.Select(filter.Predicate())
	s.mu.Unlock()

	page, total := roster.Page(matched, offset, limit, s.cfg.PageLimit)
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}

	s.observer().OnList(ResourceTreatments, len(page), time.Since(start))
	httputil.WriteOK(w, listResponse(page, total, offset, limit))
}

func (s *Server) handleGetTreatment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	rec, err := s.treatments.Get(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceTreatments, "get", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnRead(ResourceTreatments, id, time.Since(start))
	httputil.WriteOK(w, rec)
}

func (s *Server) handleCreateTreatment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body model.CreateTreatment
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceTreatments, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	created := s.treatments.Create(body.Record())
	s.mu.Unlock()

	s.observer().OnCreate(ResourceTreatments, created.ID, time.Since(start))
	httputil.WriteCreated(w, created)
}

func (s *Server) handlePatchTreatment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var patch model.TreatmentPatch
	if err := decodeBody(r, &patch); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := patch.Validate(); err != nil {
		s.observer().OnError(ResourceTreatments, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	updated, err := s.treatments.Update(id, patch.Apply)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceTreatments, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceTreatments, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

func (s *Server) handlePutTreatment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var body model.CreateTreatment
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceTreatments, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	updated, err := s.treatments.Update(id, func(model.Treatment) model.Treatment {
		return body.Record()
	})
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceTreatments, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceTreatments, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

func (s *Server) handleDeleteTreatment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	removed, err := s.treatments.Delete(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceTreatments, "delete", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnDelete(ResourceTreatments, id, time.Since(start))
	httputil.WriteOK(w, removed)
}
