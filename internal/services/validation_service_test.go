package services

import (
	"testing"

	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/models/dtos"
)

// completedInspection builds an inspection map with every required item
// confirmed.
func completedInspection() map[string]bool {
	inspection := make(map[string]bool)
	for _, id := range constants.RequiredChecklistItemIDs(constants.PreFlightChecklist) {
		inspection[id] = true
	}
	return inspection
}

func validCandidate() *dtos.CreateFlightRecordReq {
	return &dtos.CreateFlightRecordReq{
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
		PreFlightInspection: completedInspection(),
	}
}

func TestValidateFlightRecord_Accepted(t *testing.T) {
	if err := ValidateFlightRecord(validCandidate(), constants.PreFlightChecklist); err != nil {
		t.Fatalf("Expected acceptance, got %s: %s", err.Code, err.Message)
	}
}

func TestValidateFlightRecord_NoAircraftSelected(t *testing.T) {
	candidate := validCandidate()
	candidate.SelectedAircraft = ""

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if err.Code != constants.ErrCodeNoAircraftSelected {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeNoAircraftSelected, err.Code)
	}
}

func TestValidateFlightRecord_RequiredChecklistItemFalse(t *testing.T) {
	candidate := validCandidate()
	candidate.PreFlightInspection["batteryLevel"] = false

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if err.Code != constants.ErrCodeChecklistIncomplete {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeChecklistIncomplete, err.Code)
	}
}

func TestValidateFlightRecord_RequiredChecklistItemMissing(t *testing.T) {
	candidate := validCandidate()
	delete(candidate.PreFlightInspection, "noFlyZone")

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil || err.Code != constants.ErrCodeChecklistIncomplete {
		t.Fatalf("Expected checklist rejection, got %v", err)
	}
}

func TestValidateFlightRecord_OptionalChecklistItemMayStayFalse(t *testing.T) {
	candidate := validCandidate()
	candidate.PreFlightInspection["gimbalCamera"] = false
	candidate.PreFlightInspection["compassCalibration"] = false

	if err := ValidateFlightRecord(candidate, constants.PreFlightChecklist); err != nil {
		t.Fatalf("Optional items must not gate acceptance, got %s", err.Code)
	}
}

func TestValidateFlightRecord_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dtos.CreateFlightRecordReq)
	}{
		{"flightDate", func(c *dtos.CreateFlightRecordReq) { c.FlightDate = "" }},
		{"pilotName", func(c *dtos.CreateFlightRecordReq) { c.PilotName = "" }},
		{"flightPurpose", func(c *dtos.CreateFlightRecordReq) { c.FlightPurpose = "" }},
		{"takeoffLocation", func(c *dtos.CreateFlightRecordReq) { c.TakeoffLocation = "" }},
		{"takeoffTime", func(c *dtos.CreateFlightRecordReq) { c.TakeoffTime = "" }},
		{"landingLocation", func(c *dtos.CreateFlightRecordReq) { c.LandingLocation = "" }},
		{"landingTime", func(c *dtos.CreateFlightRecordReq) { c.LandingTime = "" }},
		{"flightDuration", func(c *dtos.CreateFlightRecordReq) { c.FlightDuration = 0 }},
		{"negativeTotalTime", func(c *dtos.CreateFlightRecordReq) { c.TotalFlightTime = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := validCandidate()
			tc.mutate(candidate)

			err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
			if err == nil {
				t.Fatal("Expected rejection")
			}
			// Empty time fields short-circuit at the required-field rule
			// before the ordering comparison can fire.
			if err.Code != constants.ErrCodeRequiredFieldMissing && err.Code != constants.ErrCodeTimeOrderInvalid {
				t.Errorf("Unexpected code %s", err.Code)
			}
		})
	}
}

func TestValidateFlightRecord_TimeOrdering(t *testing.T) {
	candidate := validCandidate()
	candidate.TakeoffTime = "11:00"
	candidate.LandingTime = "10:30"

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if err.Code != constants.ErrCodeTimeOrderInvalid {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeTimeOrderInvalid, err.Code)
	}
}

func TestValidateFlightRecord_EqualTimesRejected(t *testing.T) {
	candidate := validCandidate()
	candidate.TakeoffTime = "10:30"
	candidate.LandingTime = "10:30"

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil || err.Code != constants.ErrCodeTimeOrderInvalid {
		t.Fatalf("Equal takeoff and landing times must be rejected, got %v", err)
	}
}

func TestValidateFlightRecord_ChecklistBeatsFieldErrors(t *testing.T) {
	// Rule order is fixed: an incomplete checklist wins over later failures.
	candidate := validCandidate()
	candidate.PreFlightInspection = map[string]bool{}
	candidate.PilotName = ""
	candidate.TakeoffTime = "12:00"
	candidate.LandingTime = "11:00"

	err := ValidateFlightRecord(candidate, constants.PreFlightChecklist)
	if err == nil || err.Code != constants.ErrCodeChecklistIncomplete {
		t.Fatalf("Expected checklist rejection first, got %v", err)
	}
}
