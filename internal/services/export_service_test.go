package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/models/entities"
)

func sampleRecord() entities.FlightRecord {
	return entities.FlightRecord{
		ID:               1714531200000,
		FlightDate:       "2024-05-01",
		SelectedAircraft: "JU123456789A",
		AircraftInfo: &entities.AircraftInfo{
			RegistrationNumber: "JU123456789A",
			AircraftType:       "マルチローター",
			Model:              "DJI Mini 3",
			Manufacturer:       "DJI",
			SerialNumber:       "S1",
		},
		PilotName:           "山田太郎",
		FlightPurpose:       "空撮",
		TakeoffLocation:     "東京都新宿区中央公園",
		TakeoffTime:         "10:00",
		LandingLocation:     "東京都新宿区中央公園",
		LandingTime:         "10:30",
		FlightDuration:      30,
		TotalFlightTime:     100,
		FlightAreas:         []string{"人口集中地区", "夜間飛行"},
		PreFlightInspection: completedInspection(),
		SafetyIssues:        constants.DefaultSafetyIssues,
		MalfunctionDetails:  constants.DefaultMalfunctionDetails,
		CreatedAt:           "2024/05/01 11:00:00",
	}
}

func parseCSV(t *testing.T, content string) [][]string {
	t.Helper()
	reader := csv.NewReader(strings.NewReader(content))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Exported CSV is not parseable: %v", err)
	}
	return rows
}

func TestExportCSV_HeaderRow(t *testing.T) {
	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{sampleRecord()}))

	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 record, got %d rows", len(rows))
	}
	header := rows[0]
	if len(header) != 19 {
		t.Fatalf("Expected 19 columns, got %d", len(header))
	}
	if header[0] != "飛行年月日" || header[18] != "記録作成日時" {
		t.Errorf("Unexpected header boundaries: %q ... %q", header[0], header[18])
	}
}

func TestExportCSV_RecordRow(t *testing.T) {
	record := sampleRecord()
	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{record}))
	row := rows[1]

	if row[0] != "2024-05-01" {
		t.Errorf("Expected flight date in column 0, got %q", row[0])
	}
	if row[1] != "JU123456789A" {
		t.Errorf("Expected registration in column 1, got %q", row[1])
	}
	if row[2] != "マルチローター" {
		t.Errorf("Expected aircraft type, got %q", row[2])
	}
	if row[12] != "30" || row[13] != "100" {
		t.Errorf("Expected durations 30/100, got %q/%q", row[12], row[13])
	}
	if row[14] != "人口集中地区, 夜間飛行" {
		t.Errorf("Flight areas should be joined with comma-space, got %q", row[14])
	}
	if row[15] != "16項目完了" {
		t.Errorf("Expected inspection summary for 16 confirmed items, got %q", row[15])
	}
}

func TestExportCSV_CommaRoundTrip(t *testing.T) {
	record := sampleRecord()
	record.FlightPurpose = "空撮, 点検"
	record.SafetyIssues = "強風のため一時着陸, その後再開"

	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{record}))
	row := rows[1]

	if row[6] != "空撮, 点検" {
		t.Errorf("Comma in purpose did not round-trip: %q", row[6])
	}
	if row[16] != "強風のため一時着陸, その後再開" {
		t.Errorf("Comma in safety issues did not round-trip: %q", row[16])
	}
}

func TestExportCSV_QuoteEscaping(t *testing.T) {
	record := sampleRecord()
	record.FlightRoute = `公園"A地点"周回`

	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{record}))
	if rows[1][7] != `公園"A地点"周回` {
		t.Errorf("Embedded quotes did not round-trip: %q", rows[1][7])
	}
}

func TestExportCSV_MissingOptionalsAreEmptyStrings(t *testing.T) {
	record := sampleRecord()
	record.LicenseNumber = ""
	record.FlightRoute = ""

	content := ExportCSV([]entities.FlightRecord{record})
	if strings.Contains(content, "undefined") || strings.Contains(content, "null") {
		t.Error("Missing optionals must never render as null markers")
	}

	rows := parseCSV(t, content)
	if rows[1][5] != "" || rows[1][7] != "" {
		t.Errorf("Expected empty optional fields, got %q / %q", rows[1][5], rows[1][7])
	}
}

func TestExportCSV_NoInspectionMap(t *testing.T) {
	record := sampleRecord()
	record.PreFlightInspection = nil

	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{record}))
	if rows[1][15] != "点検記録なし" {
		t.Errorf("Expected 点検記録なし for absent inspection map, got %q", rows[1][15])
	}
}

func TestExportCSV_SnapshotFallsBackToSelectedRegistration(t *testing.T) {
	record := sampleRecord()
	record.AircraftInfo = nil

	rows := parseCSV(t, ExportCSV([]entities.FlightRecord{record}))
	if rows[1][1] != "JU123456789A" {
		t.Errorf("Expected raw selected registration fallback, got %q", rows[1][1])
	}
	if rows[1][2] != "" {
		t.Errorf("Expected empty aircraft type without snapshot, got %q", rows[1][2])
	}
}

func TestExportFilename(t *testing.T) {
	asOf := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := ExportFilename(asOf); got != "drone_flight_log_2024-05-01.csv" {
		t.Errorf("Unexpected filename %q", got)
	}
}
