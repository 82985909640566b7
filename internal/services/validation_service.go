package services

import (
	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/models/dtos"
)

// ValidateFlightRecord checks a candidate record against the canonical
// checklist definition. Rules run in form order and the first failure wins;
// nil means accepted. The engine is pure: persisting an accepted candidate
// is the caller's job.
func ValidateFlightRecord(candidate *dtos.CreateFlightRecordReq, checklist []constants.ChecklistCategory) *DomainError {
	if candidate.SelectedAircraft == "" {
		return NewDomainError(constants.ErrCodeNoAircraftSelected)
	}

	if err := validateChecklist(candidate.PreFlightInspection, checklist); err != nil {
		return err
	}

	if err := validateRequiredFields(candidate); err != nil {
		return err
	}

	// Same-day HH:MM comparison; flights spanning midnight are not
	// supported and fail this rule.
	if candidate.TakeoffTime >= candidate.LandingTime {
		return NewDomainError(constants.ErrCodeTimeOrderInvalid)
	}

	return nil
}

// validateChecklist requires every item flagged required to be present and
// confirmed. The rejection names the rule, not the individual items.
func validateChecklist(inspection map[string]bool, checklist []constants.ChecklistCategory) *DomainError {
	for _, id := range constants.RequiredChecklistItemIDs(checklist) {
		if !inspection[id] {
			return NewDomainError(constants.ErrCodeChecklistIncomplete)
		}
	}
	return nil
}

func validateRequiredFields(candidate *dtos.CreateFlightRecordReq) *DomainError {
	required := []string{
		candidate.FlightDate,
		candidate.PilotName,
		candidate.FlightPurpose,
		candidate.TakeoffLocation,
		candidate.TakeoffTime,
		candidate.LandingLocation,
		candidate.LandingTime,
	}
	for _, field := range required {
		if field == "" {
			return NewDomainError(constants.ErrCodeRequiredFieldMissing)
		}
	}

	// Duration must be a positive minute count; cumulative airframe time
	// may legitimately be zero for a maiden flight.
	if candidate.FlightDuration <= 0 || candidate.TotalFlightTime < 0 {
		return NewDomainError(constants.ErrCodeRequiredFieldMissing)
	}

	return nil
}
