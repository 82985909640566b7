package entities

// FlightStats is the dashboard aggregate over the flight record collection.
type FlightStats struct {
	TotalFlights         int `json:"totalFlights"`
	TotalFlightMinutes   int `json:"totalFlightMinutes"`
	AverageFlightMinutes int `json:"averageFlightMinutes"`
	CurrentMonthFlights  int `json:"currentMonthFlights"`
}
