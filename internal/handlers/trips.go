package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
)

//go:generate mockgen -source=trips.go -destination=mock_trips.go -package=handlers

// TripLister lists the caller's trips.
type TripLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
}

// TripGetter fetches one of the caller's trips.
type TripGetter interface {
	Get(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error)
}

// TripCreator stores a new trip for the caller.
type TripCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error)
}

// NewListTripsHandler returns an HTTP handler listing the caller's trips.
// @Summary List trips
// @Description Returns the caller's trips, newest first
// @Tags trips
// @Produce json
// @Success 200 {array} models.Trip
// @Failure 401 {object} models.ErrorResponse "Access token required"
// @Failure 403 {object} models.ErrorResponse "Invalid token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /trips [get]
// @Security BearerAuth
func NewListTripsHandler(svc TripLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		trips, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, trips)
	}
}

// NewGetTripHandler returns an HTTP handler for a single trip.
// @Summary Get trip
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip id"
// @Success 200 {object} models.Trip
// @Failure 401 {object} models.ErrorResponse "Access token required"
// @Failure 403 {object} models.ErrorResponse "Invalid token"
// @Failure 404 {object} models.ErrorResponse "Trip not found"
// @Router /trips/{tripID} [get]
// @Security BearerAuth
func NewGetTripHandler(svc TripGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Trip not found")
			return
		}

		trip, err := svc.Get(r.Context(), userID, tripID)
		if err != nil {
			if errors.Is(err, services.ErrTripNotFound) {
				writeError(w, http.StatusNotFound, "Trip not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, trip)
	}
}

// NewCreateTripHandler returns an HTTP handler creating a trip.
// @Summary Create trip
// @Tags trips
// @Accept json
// @Produce json
// @Param createTripRequest body models.CreateTripRequest true "Trip"
// @Success 201 {object} models.Trip
// @Failure 400 {object} models.ErrorResponse "Title, start date, and end date are required"
// @Failure 401 {object} models.ErrorResponse "Access token required"
// @Failure 403 {object} models.ErrorResponse "Invalid token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /trips [post]
// @Security BearerAuth
func NewCreateTripHandler(svc TripCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		var req models.CreateTripRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		trip, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, validationMessage(err))
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, trip)
	}
}
