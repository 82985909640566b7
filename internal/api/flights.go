package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/models/dtos"
	"skylogger/dronelog/internal/services"
)

// utf8BOM is prepended to CSV downloads so spreadsheet tools decode UTF-8.
const utf8BOM = "\ufeff"

// CreateFlightRecord handles POST /api/v1/flights
func (h *Handlers) CreateFlightRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateFlightRecordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		record, err := h.deps.Services.FlightLog.CreateFlightRecord(r.Context(), &req)
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "飛行記録を追加しました", record, http.StatusCreated)
	}
}

// ListFlightRecords handles GET /api/v1/flights
func (h *Handlers) ListFlightRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		records := h.deps.Services.FlightLog.ListFlightRecords(r.Context())
		resp := dtos.FlightListResponse{
			Total:   len(records),
			Records: records,
		}
		common.RespondSuccess(w, initTime, "", resp)
	}
}

// ClearFlightRecords handles DELETE /api/v1/flights
func (h *Handlers) ClearFlightRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.FlightLog.ClearFlightRecords(r.Context()); err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "すべての飛行記録を削除しました", nil)
	}
}

// ExportFlightRecords handles GET /api/v1/flights/export and serves the CSV
// download directly rather than the JSON envelope.
func (h *Handlers) ExportFlightRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filename, content, err := h.deps.Services.FlightLog.ExportCSV(r.Context())
		if err != nil {
			var domainErr *services.DomainError
			if errors.As(err, &domainErr) {
				common.RespondError(w, initTime, domainErr, domainErr.Message, http.StatusConflict)
				return
			}
			respondDomainError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, _ = w.Write([]byte(utf8BOM + content))
	}
}
