package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/models/dtos"
)

// RegisterAircraft handles POST /api/v1/aircraft
func (h *Handlers) RegisterAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterAircraftReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		info, err := h.deps.Services.Aircraft.RegisterAircraft(r.Context(), &req)
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "機体情報を保存しました", info, http.StatusCreated)
	}
}

// ListAircraft handles GET /api/v1/aircraft
func (h *Handlers) ListAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		list := h.deps.Services.Aircraft.ListAircraft(r.Context())
		common.RespondSuccess(w, initTime, "", list)
	}
}

// GetAircraft handles GET /api/v1/aircraft/{registration}
func (h *Handlers) GetAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		registration := chi.URLParam(r, "registration")
		info, err := h.deps.Services.Aircraft.GetAircraft(r.Context(), registration)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", info)
	}
}
