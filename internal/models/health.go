package models

// HealthResponse is returned by the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	// example: OK
	Status string `json:"status"`
	// example: GlobeTrotter API is running
	Message string `json:"message"`
}
