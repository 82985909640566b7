package dtos

import (
	"time"

	"skylogger/dronelog/internal/models/entities"
)

// APIResponse is the standard envelope for all JSON endpoints.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// TypedAPIResponse is the generics variant used by the newer handlers.
type TypedAPIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      *T        `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// UserResponse is the account shape returned to clients. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	PilotLicense string     `json:"pilotLicense,omitempty"`
	Organization string     `json:"organization,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// LoginResponse carries the session token and the signed-in account.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// DashboardResponse is the aggregate view for the landing page: stats,
// registered aircraft, and the most recent records.
type DashboardResponse struct {
	Stats         entities.FlightStats    `json:"stats"`
	Aircraft      []entities.AircraftInfo `json:"aircraft"`
	RecentFlights []entities.FlightRecord `json:"recentFlights"`
}

// FlightListResponse wraps the record collection with its count.
type FlightListResponse struct {
	Total   int                     `json:"total"`
	Records []entities.FlightRecord `json:"records"`
}
