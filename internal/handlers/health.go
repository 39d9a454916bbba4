package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

// NewHealthHandler returns a liveness handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:  "OK",
			Message: "GlobeTrotter API is running",
		})
	}
}

// NewNotFoundHandler answers every unknown route.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	}
}

// NewMethodNotAllowedHandler answers known routes called with an unsupported method.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
