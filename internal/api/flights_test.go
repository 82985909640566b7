package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/models/dtos"
	"skylogger/dronelog/internal/services"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	schema := `CREATE TABLE documents (
		namespace  TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := database.Exec(schema); err != nil {
		t.Fatalf("Failed to create documents table: %v", err)
	}

	store := repositories.NewRecordStore(database)
	cacheSvc := common.NewCacheService(300, 600)
	statsSvc := services.NewStatsService(store, cacheSvc)

	deps := &Dependencies{
		Repo: &Repositories{Store: store},
		Services: &Services{
			Cache:     cacheSvc,
			Aircraft:  services.NewAircraftService(store),
			FlightLog: services.NewFlightLogService(store, statsSvc, nil),
			Stats:     statsSvc,
		},
	}
	return NewHandlers(deps)
}

func completedInspectionBody() map[string]bool {
	inspection := make(map[string]bool)
	for _, id := range constants.RequiredChecklistItemIDs(constants.PreFlightChecklist) {
		inspection[id] = true
	}
	return inspection
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to encode request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(encoded)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	t.Helper()
	var resp dtos.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	return resp
}

func registerHandlerAircraft(t *testing.T, h *Handlers) {
	t.Helper()
	rec := postJSON(t, h.RegisterAircraft(), "/api/v1/aircraft", dtos.RegisterAircraftReq{
		RegistrationNumber: "JU123456789A",
		AircraftType:       "マルチローター",
		Model:              "Mavic 3",
		Manufacturer:       "DJI",
		SerialNumber:       "SN-001",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Aircraft registration returned %d: %s", rec.Code, rec.Body.String())
	}
}

func validFlightBody() dtos.CreateFlightRecordReq {
	return dtos.CreateFlightRecordReq{
		FlightDate:          "2024-05-01",
		SelectedAircraft:    "JU123456789A",
		PilotName:           "山田太郎",
		FlightPurpose:       "空撮",
		TakeoffLocation:     "東京都新宿区中央公園",
		TakeoffTime:         "10:00",
		LandingLocation:     "東京都新宿区中央公園",
		LandingTime:         "10:30",
		FlightDuration:      30,
		TotalFlightTime:     100,
		PreFlightInspection: completedInspectionBody(),
	}
}

func TestCreateFlightRecordHandler_Accepted(t *testing.T) {
	h := newTestHandlers(t)
	registerHandlerAircraft(t, h)

	rec := postJSON(t, h.CreateFlightRecord(), "/api/v1/flights", validFlightBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
	if resp.Message != "飛行記録を追加しました" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
}

func TestCreateFlightRecordHandler_ValidationFailure(t *testing.T) {
	h := newTestHandlers(t)
	registerHandlerAircraft(t, h)

	body := validFlightBody()
	body.PreFlightInspection = map[string]bool{}

	rec := postJSON(t, h.CreateFlightRecord(), "/api/v1/flights", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status != "error" {
		t.Errorf("Expected status error, got %q", resp.Status)
	}
	if !strings.Contains(resp.Message, "飛行前点検") {
		t.Errorf("Expected the checklist message, got %q", resp.Message)
	}
}

func TestCreateFlightRecordHandler_MalformedBody(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.CreateFlightRecord()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestListFlightRecordsHandler(t *testing.T) {
	h := newTestHandlers(t)
	registerHandlerAircraft(t, h)

	if rec := postJSON(t, h.CreateFlightRecord(), "/api/v1/flights", validFlightBody()); rec.Code != http.StatusCreated {
		t.Fatalf("Setup flight rejected: %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)
	rec := httptest.NewRecorder()
	h.ListFlightRecords()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dtos.FlightListResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode list response: %v", err)
	}
	if resp.Data.Total != 1 || len(resp.Data.Records) != 1 {
		t.Errorf("Expected one record, got total=%d len=%d", resp.Data.Total, len(resp.Data.Records))
	}
}

func TestExportFlightRecordsHandler_EmptyIsConflict(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/export", nil)
	rec := httptest.NewRecorder()
	h.ExportFlightRecords()(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for an empty logbook, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !strings.Contains(resp.Message, "エクスポートする飛行記録がありません") {
		t.Errorf("Unexpected message %q", resp.Message)
	}
}

func TestExportFlightRecordsHandler_ServesCSVDownload(t *testing.T) {
	h := newTestHandlers(t)
	registerHandlerAircraft(t, h)

	if rec := postJSON(t, h.CreateFlightRecord(), "/api/v1/flights", validFlightBody()); rec.Code != http.StatusCreated {
		t.Fatalf("Setup flight rejected: %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/export", nil)
	rec := httptest.NewRecorder()
	h.ExportFlightRecords()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Unexpected Content-Type %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="drone_flight_log_`) {
		t.Errorf("Unexpected Content-Disposition %q", disposition)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\ufeff") {
		t.Error("Expected the download to start with a UTF-8 BOM")
	}
	if !strings.Contains(body, "飛行年月日,機体登録記号") {
		t.Error("Expected the Japanese header row in the download")
	}
}

func TestClearFlightRecordsHandler(t *testing.T) {
	h := newTestHandlers(t)
	registerHandlerAircraft(t, h)

	if rec := postJSON(t, h.CreateFlightRecord(), "/api/v1/flights", validFlightBody()); rec.Code != http.StatusCreated {
		t.Fatalf("Setup flight rejected: %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/flights", nil)
	rec := httptest.NewRecorder()
	h.ClearFlightRecords()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)
	listRec := httptest.NewRecorder()
	h.ListFlightRecords()(listRec, listReq)

	var resp struct {
		Data dtos.FlightListResponse `json:"data"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode list response: %v", err)
	}
	if resp.Data.Total != 0 {
		t.Errorf("Expected empty logbook after clear, got %d", resp.Data.Total)
	}
}
