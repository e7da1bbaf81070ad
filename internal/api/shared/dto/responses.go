package dto

import "time"

const (
	HEALTH_STATUS_OK          = "healthy"
	HEALTH_STATUS_UNAVAILABLE = "unavailable"
)

// HealthResponse represents the health status of the API and its storage engine
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}
