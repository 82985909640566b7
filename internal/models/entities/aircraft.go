package entities

// AircraftInfo holds the registration-form fields for one unmanned aircraft.
// Records are overwritten wholesale per registration number; a copy is
// snapshotted into every flight record at creation time, so editing the
// registry never rewrites history.
type AircraftInfo struct {
	RegistrationNumber  string `json:"registrationNumber"`
	AircraftType        string `json:"aircraftType"`
	Model               string `json:"model"`
	Manufacturer        string `json:"manufacturer"`
	SerialNumber        string `json:"serialNumber"`
	CertificationNumber string `json:"certificationNumber,omitempty"`
}

// AircraftRegistry maps registration number to aircraft info. It is persisted
// as a single document in the record store.
type AircraftRegistry map[string]AircraftInfo
