package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

//go:generate mockgen -source=destinations.go -destination=mock_destinations.go -package=handlers

// PopularDestinationsGetter returns the most planned destinations.
type PopularDestinationsGetter interface {
	Popular(ctx context.Context) ([]models.Destination, error)
}

// NewPopularDestinationsHandler returns an HTTP handler for popular destinations.
// @Summary Popular destinations
// @Description Top destinations by number of trips
// @Tags destinations
// @Produce json
// @Success 200 {array} models.Destination
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /destinations/popular [get]
func NewPopularDestinationsHandler(svc PopularDestinationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinations, err := svc.Popular(r.Context())
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if destinations == nil {
			destinations = []models.Destination{}
		}
		writeJSON(w, http.StatusOK, destinations)
	}
}
