package server

import (
	"net/http"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/roster"
	"github.com/arkhamd/arkhamd/pkg/search"
)

// queryRecord constrains the record types the expression endpoints accept.
type queryRecord[T any] interface {
	roster.Entity[T]
	search.Enver
}

// queryCollection runs an expression search over one collection. The
// expression comes from the q parameter and sees each record's fields as
// variables, e.g. ?q=dangerLevel >= 7 && cellBlock == "A".
func queryCollection[T queryRecord[T]](s *Server, w http.ResponseWriter, r *http.Request, c *roster.Collection[T]) {
	start := time.Now()

	q, err := search.Compile(r.URL.Query().Get("q"))
	if err != nil {
		s.observer().OnError(c.Name(), "query", err)
		httputil.WriteDomainError(w, err)
		return
	}
	offset, limit, err := queryPage(r.URL.Query())
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	var evalErr error
	s.mu.Lock()
	matched := c.Select(search.Predicate[T](q, &evalErr))
	s.mu.Unlock()

	if evalErr != nil {
		s.observer().OnError(c.Name(), "query", evalErr)
		httputil.WriteDomainError(w, evalErr)
		return
	}

	page, total := roster.Page(matched, offset, limit, s.cfg.PageLimit)
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}

	s.observer().OnList(c.Name(), len(page), time.Since(start))
	httputil.WriteOK(w, listResponse(page, total, offset, limit))
}

func (s *Server) handleQueryInmates(w http.ResponseWriter, r *http.Request) {
	queryCollection(s, w, r, s.inmates)
}

func (s *Server) handleQueryStaff(w http.ResponseWriter, r *http.Request) {
	queryCollection(s, w, r, s.staff)
}

func (s *Server) handleQueryTreatments(w http.ResponseWriter, r *http.Request) {
	queryCollection(s, w, r, s.treatments)
}

func (s *Server) handleQueryIncidents(w http.ResponseWriter, r *http.Request) {
	queryCollection(s, w, r, s.incidents)
}
