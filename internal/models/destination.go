package models

// Destination is a popular travel destination
// swagger:model Destination
type Destination struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Country     string  `json:"country" db:"country"`
	Description *string `json:"description,omitempty" db:"description"`
	ImageURL    *string `json:"imageUrl,omitempty" db:"image_url"`
	TripCount   int64   `json:"tripCount" db:"trip_count"`
}
