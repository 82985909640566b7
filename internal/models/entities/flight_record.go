package entities

// FlightRecord is one logbook entry. Records are immutable once created;
// the only destructive operation is clearing the whole collection.
type FlightRecord struct {
	// ID is the creation timestamp in Unix milliseconds, monotonic within
	// a single-writer store.
	ID int64 `json:"id"`

	FlightDate       string `json:"flightDate"`
	SelectedAircraft string `json:"selectedAircraft"`
	// AircraftInfo is the registry entry snapshotted at creation time.
	AircraftInfo *AircraftInfo `json:"aircraftInfo,omitempty"`

	PilotName     string `json:"pilotName"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	FlightPurpose string `json:"flightPurpose"`
	FlightRoute   string `json:"flightRoute,omitempty"`

	TakeoffLocation string `json:"takeoffLocation"`
	TakeoffTime     string `json:"takeoffTime"`
	LandingLocation string `json:"landingLocation"`
	LandingTime     string `json:"landingTime"`

	// FlightDuration is this flight's duration in minutes; TotalFlightTime
	// is the airframe's cumulative minutes since manufacture. Both are
	// stored as entered and never re-derived.
	FlightDuration  int `json:"flightDuration"`
	TotalFlightTime int `json:"totalFlightTime"`

	FlightAreas         []string        `json:"flightAreas"`
	PreFlightInspection map[string]bool `json:"preFlightInspection"`

	SafetyIssues       string `json:"safetyIssues"`
	MalfunctionDetails string `json:"malfunctionDetails"`

	CreatedAt string `json:"createdAt"`
}
