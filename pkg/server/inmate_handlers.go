package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/model"
	"github.com/arkhamd/arkhamd/pkg/roster"
)

// inmateFilterFromQuery builds an InmateFilter from list query parameters.
func inmateFilterFromQuery(r *http.Request) (*model.InmateFilter, error) {
	q := r.URL.Query()

	active, err := queryBool(q, "active")
	if err != nil {
		return nil, err
	}
	minDanger, err := queryInt(q, "minDanger")
	if err != nil {
		return nil, err
	}
	maxDanger, err := queryInt(q, "maxDanger")
	if err != nil {
		return nil, err
	}

	f := &model.InmateFilter{
		Name:      q.Get("name"),
		Alias:     q.Get("alias"),
		Disorder:  q.Get("disorder"),
		Notes:     q.Get("notes"),
		CellBlock: strings.ToUpper(q.Get("cellBlock")),
		Active:    active,
		MinDanger: minDanger,
		MaxDanger: maxDanger,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Server) handleListInmates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter, err := inmateFilterFromQuery(r)
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
	matched := s.inmates.Select(filter.Predicate())
	s.mu.Unlock()

	page, total := roster.Page(matched, offset, limit, s.cfg.PageLimit)
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}

	s.observer().OnList(ResourceInmates, len(page), time.Since(start))
	httputil.WriteOK(w, listResponse(page, total, offset, limit))
}

func (s *Server) handleGetInmate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	rec, err := s.inmates.Get(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceInmates, "get", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnRead(ResourceInmates, id, time.Since(start))
	httputil.WriteOK(w, rec)
}

func (s *Server) handleCreateInmate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body model.CreateInmate
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceInmates, "create", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	created := s.inmates.Create(body.Record(s.now()))
	s.mu.Unlock()

	s.observer().OnCreate(ResourceInmates, created.ID, time.Since(start))
	httputil.WriteCreated(w, created)
}

func (s *Server) handlePatchInmate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var patch model.InmatePatch
	if err := decodeBody(r, &patch); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := patch.Validate(); err != nil {
		s.observer().OnError(ResourceInmates, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	updated, err := s.inmates.Update(id, patch.Apply)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceInmates, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceInmates, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

// handlePutInmate replaces the full record. The admission date survives the
// replacement; everything else comes from the request body.
func (s *Server) handlePutInmate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	var body model.CreateInmate
	if err := decodeBody(r, &body); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	if err := body.Validate(); err != nil {
		s.observer().OnError(ResourceInmates, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	updated, err := s.inmates.Update(id, func(old model.Inmate) model.Inmate {
		return body.Record(old.AdmissionDate)
	})
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceInmates, "update", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnUpdate(ResourceInmates, id, time.Since(start))
	httputil.WriteOK(w, updated)
}

func (s *Server) handleDeleteInmate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	s.mu.Lock()
	removed, err := s.inmates.Delete(id)
	s.mu.Unlock()

	if err != nil {
		s.observer().OnError(ResourceInmates, "delete", err)
		httputil.WriteDomainError(w, err)
		return
	}
	s.observer().OnDelete(ResourceInmates, id, time.Since(start))
	httputil.WriteOK(w, removed)
}
