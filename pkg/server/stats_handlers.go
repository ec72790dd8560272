package server

import (
	"net/http"
	"time"

	"github.com/arkhamd/arkhamd/pkg/httputil"
	"github.com/arkhamd/arkhamd/pkg/model"
)

// Stats summarizes the current asylum population and incident load.
type Stats struct {
	TotalInmates    int            `json:"totalInmates"`
	ActiveInmates   int            `json:"activeInmates"`
	ByCellBlock     map[string]int `json:"byCellBlock"`
	AvgDangerLevel  float64        `json:"avgDangerLevel"`
	TotalStaff      int            `json:"totalStaff"`
	ActiveStaff     int            `json:"activeStaff"`
	TotalTreatments int            `json:"totalTreatments"`
	TotalIncidents  int            `json:"totalIncidents"`
	SevereIncidents int            `json:"severeIncidents"`
}

// severeIncidentThreshold marks incidents that go into the severe bucket.
const severeIncidentThreshold = 7

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	inmates := s.inmates.All()
	staff := s.staff.All()
	treatmentCount := s.treatments.Count()
	incidents := s.incidents.All()
	s.mu.Unlock()

	stats := Stats{
		TotalInmates:    len(inmates),
		ByCellBlock:     make(map[string]int, 4),
		TotalStaff:      len(staff),
		TotalTreatments: treatmentCount,
		TotalIncidents:  len(incidents),
	}
	for _, block := range model.CellBlocks() {
		stats.ByCellBlock[string(block)] = 0
	}

	dangerSum := 0
	for _, in := range inmates {
		if in.IsActive {
			stats.ActiveInmates++
		}
		stats.ByCellBlock[string(in.CellBlock)]++
		dangerSum += in.DangerLevel
	}
	if len(inmates) > 0 {
		stats.AvgDangerLevel = float64(dangerSum) / float64(len(inmates))
	}

	for _, st := range staff {
		if st.IsActive {
			stats.ActiveStaff++
		}
	}
	for _, in := range incidents {
		if in.Severity >= severeIncidentThreshold {
			stats.SevereIncidents++
		}
	}

	httputil.WriteOK(w, stats)
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status    string `json:"status"`
	UptimeSec int64  `json:"uptimeSec"`
	Resources int    `json:"resources"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var uptime int64
	if !s.startedAt.IsZero() {
		uptime = int64(time.Since(s.startedAt).Seconds())
	}
	httputil.WriteOK(w, HealthStatus{
		Status:    "ok",
		UptimeSec: uptime,
		Resources: len(s.registry.Names()),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, s.metrics.Snapshot())
}
