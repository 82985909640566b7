package api

import (
	"net/http"
	"time"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/models/dtos"
)

// GetStats handles GET /api/v1/stats
func (h *Handlers) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		stats := h.deps.Services.Stats.GetStats(r.Context())
		common.RespondSuccess(w, initTime, "", stats)
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *Handlers) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, recent := h.deps.Services.Stats.GetDashboard(r.Context())
		resp := dtos.DashboardResponse{
			Stats:         stats,
			Aircraft:      h.deps.Services.Aircraft.ListAircraft(r.Context()),
			RecentFlights: recent,
		}
		common.RespondSuccess(w, initTime, "", resp)
	}
}

// GetChecklist handles GET /api/v1/checklist, serving the canonical
// pre-flight definition and flight-area vocabulary for form clients.
func (h *Handlers) GetChecklist() http.HandlerFunc {
	type checklistResponse struct {
		Checklist   []constants.ChecklistCategory `json:"checklist"`
		FlightAreas []constants.FlightAreaOption  `json:"flightAreas"`
		Purposes    []string                      `json:"purposes"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := checklistResponse{
			Checklist:   constants.PreFlightChecklist,
			FlightAreas: constants.FlightAreaOptions,
			Purposes:    constants.FlightPurposes,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
