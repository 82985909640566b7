package dtos

// RegisterAircraftReq mirrors the aircraft registration form.
type RegisterAircraftReq struct {
	RegistrationNumber  string `json:"registrationNumber"`
	AircraftType        string `json:"aircraftType"`
	Model               string `json:"model"`
	Manufacturer        string `json:"manufacturer"`
	SerialNumber        string `json:"serialNumber"`
	CertificationNumber string `json:"certificationNumber"`
}

// CreateFlightRecordReq mirrors the flight record entry form. The embedded
// aircraft snapshot and the record ID are filled in by the service.
type CreateFlightRecordReq struct {
	FlightDate          string          `json:"flightDate"`
	SelectedAircraft    string          `json:"selectedAircraft"`
	PilotName           string          `json:"pilotName"`
	LicenseNumber       string          `json:"licenseNumber"`
	FlightPurpose       string          `json:"flightPurpose"`
	FlightRoute         string          `json:"flightRoute"`
	TakeoffLocation     string          `json:"takeoffLocation"`
	TakeoffTime         string          `json:"takeoffTime"`
	LandingLocation     string          `json:"landingLocation"`
	LandingTime         string          `json:"landingTime"`
	FlightDuration      int             `json:"flightDuration"`
	TotalFlightTime     int             `json:"totalFlightTime"`
	FlightAreas         []string        `json:"flightAreas"`
	PreFlightInspection map[string]bool `json:"preFlightInspection"`
	SafetyIssues        string          `json:"safetyIssues"`
	MalfunctionDetails  string          `json:"malfunctionDetails"`
}

// RegisterUserReq is the account sign-up payload.
type RegisterUserReq struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	PilotLicense string `json:"pilotLicense"`
	Organization string `json:"organization"`
}

// LoginReq is the credential payload.
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileReq carries the editable profile fields.
type UpdateProfileReq struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	PilotLicense string `json:"pilotLicense"`
	Organization string `json:"organization"`
}
