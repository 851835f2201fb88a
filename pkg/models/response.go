package models

import "time"

// EstimateResponse represents the response from an estimate request
type EstimateResponse struct {
	Success        bool             `json:"success"`
	Estimate       *DisplayEstimate `json:"estimate,omitempty"`
	ProcessingTime time.Duration    `json:"processing_time"`
	Provider       string           `json:"provider"`
	RequestID      string           `json:"request_id"`
}

// RoleContextResponse represents a session's role/location context
type RoleContextResponse struct {
	SessionID string          `json:"session_id"`
	Role      string          `json:"role"`
	Location  LocationContext `json:"location"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
