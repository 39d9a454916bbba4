package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

// DefaultCurrency is used when a trip is created without a currency.
const DefaultCurrency = "USD"

// TripStatus is derived from trip dates, it is not stored.
type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// TripDB represents a trip record in the database
type TripDB struct {
	TripID      uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	TotalBudget *float64  `db:"total_budget"`
	Currency    string    `db:"currency"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Stored in trip_destinations.
	DestinationIDs []int64 `db:"-"`
}

// StatusAt reports where the trip stands relative to the day of now.
func (t *TripDB) StatusAt(now time.Time) TripStatus {
	today := truncateDay(now)
	switch {
	case today.Before(truncateDay(t.StartDate)):
		return TripStatusUpcoming
	case today.After(truncateDay(t.EndDate)):
		return TripStatusCompleted
	default:
		return TripStatusOngoing
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Trip is the JSON representation of a trip
// swagger:model Trip
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	TotalBudget *float64   `json:"totalBudget,omitempty"`
	Currency    string     `json:"currency"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	DestinationIDs []int64 `json:"destinationIds"`
}

// View converts a record into its JSON representation as seen at now.
func (t *TripDB) View(now time.Time) *Trip {
	destinationIDs := t.DestinationIDs
	if destinationIDs == nil {
		destinationIDs = []int64{}
	}
	return &Trip{
		ID:          t.TripID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		StartDate:   t.StartDate.Format(DateLayout),
		EndDate:     t.EndDate.Format(DateLayout),
		TotalBudget: t.TotalBudget,
		Currency:    t.Currency,
		Status:      t.StatusAt(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,

		DestinationIDs: destinationIDs,
	}
}

// CreateTripRequest represents the JSON body for trip creation
// swagger:model CreateTripRequest
type CreateTripRequest struct {
	// required: true
	// example: Summer in Lisbon
	Title string `json:"title"`

	// example: Two weeks along the coast
	Description *string `json:"description"`

	// required: true
	// example: 2026-07-01
	StartDate string `json:"startDate"`

	// required: true
	// example: 2026-07-14
	EndDate string `json:"endDate"`

	// example: 2500
	TotalBudget *float64 `json:"totalBudget"`

	// example: EUR
	Currency string `json:"currency"`

	// Destinations visited on the trip
	// example: [1, 3]
	DestinationIDs []int64 `json:"destinationIds"`
}
