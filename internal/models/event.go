package models

// Event types published to the user events topic.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventUserLoggedOut  = "user.logged_out"
	EventTripCreated    = "trip.created"
)

// Event is an audit record published to Kafka after a state change.
type Event struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	UserID    string `json:"user_id"`             // UserID is the user the event belongs to.
	EntityID  string `json:"entity_id,omitempty"` // EntityID references the affected record, e.g. a trip.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix time (seconds) the event occurred.
}
