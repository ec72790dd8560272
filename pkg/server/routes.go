package server

import "net/http"

// routes builds the route table. Method-qualified patterns require Go 1.22+.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	mux.HandleFunc("GET /state", s.handleStateOverview)
	mux.HandleFunc("POST /state/reset", s.handleStateReset)
	mux.HandleFunc("POST /state/clear", s.handleStateClear)

	mux.HandleFunc("GET /inmates", s.handleListInmates)
	mux.HandleFunc("POST /inmates", s.handleCreateInmate)
	mux.HandleFunc("GET /inmates/query", s.handleQueryInmates)
	mux.HandleFunc("GET /inmates/{id}", s.handleGetInmate)
	mux.HandleFunc("PATCH /inmates/{id}", s.handlePatchInmate)
	mux.HandleFunc("PUT /inmates/{id}", s.handlePutInmate)
	mux.HandleFunc("DELETE /inmates/{id}", s.handleDeleteInmate)

	mux.HandleFunc("GET /staff", s.handleListStaff)
	mux.HandleFunc("POST /staff", s.handleCreateStaff)
	mux.HandleFunc("GET /staff/query", s.handleQueryStaff)
	mux.HandleFunc("GET /staff/{id}", s.handleGetStaff)
	mux.HandleFunc("PATCH /staff/{id}", s.handlePatchStaff)
	mux.HandleFunc("PUT /staff/{id}", s.handlePutStaff)
	mux.HandleFunc("DELETE /staff/{id}", s.handleDeleteStaff)

	mux.HandleFunc("GET /treatments", s.handleListTreatments)
	mux.HandleFunc("POST /treatments", s.handleCreateTreatment)
	mux.HandleFunc("GET /treatments/query", s.handleQueryTreatments)
	mux.HandleFunc("GET /treatments/{id}", s.handleGetTreatment)
	mux.HandleFunc("PATCH /treatments/{id}", s.handlePatchTreatment)
	mux.HandleFunc("PUT /treatments/{id}", s.handlePutTreatment)
	mux.HandleFunc("DELETE /treatments/{id}", s.handleDeleteTreatment)

	mux.HandleFunc("GET /incidents", s.handleListIncidents)
	mux.HandleFunc("POST /incidents", s.handleCreateIncident)
	mux.HandleFunc("GET /incidents/query", s.handleQueryIncidents)
	mux.HandleFunc("GET /incidents/{id}", s.handleGetIncident)
	mux.HandleFunc("PATCH /incidents/{id}", s.handlePatchIncident)
	mux.HandleFunc("PUT /incidents/{id}", s.handlePutIncident)
	mux.HandleFunc("DELETE /incidents/{id}", s.handleDeleteIncident)

	return mux
}
