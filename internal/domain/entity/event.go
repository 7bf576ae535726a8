package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cafe event types published to the event bus.
const (
	EventCafeCreated  = "cafe.created"
	EventCafeUpdated  = "cafe.updated"
	EventCafeVerified = "cafe.verified"
)

// CafeEvent is the payload published when a cafe listing changes. The push
// worker turns these into notifications for subscribers of the cafe's city.
type CafeEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // One of the Event* constants.
	CafeID     uuid.UUID `json:"cafe_id"`              // The cafe the event concerns.
	Name       string    `json:"name"`                 // Cafe name at event time.
	City       string    `json:"city"`                 // City for topic routing.
	District   string    `json:"district,omitempty"`   // District for display, when known.
	Latitude   float64   `json:"latitude"`             // Cafe latitude.
	Longitude  float64   `json:"longitude"`            // Cafe longitude.
	OccurredAt time.Time `json:"occurred_at"`          // When the change happened.
}

// NewCafeEvent builds an event snapshot from the current cafe state.
func NewCafeEvent(eventType string, cafe *Cafe) *CafeEvent {
	return &CafeEvent{
		Type:       eventType,
		CafeID:     cafe.ID,
		Name:       cafe.Name,
		City:       cafe.Location.City,
		District:   cafe.Location.District,
		Latitude:   cafe.Location.Latitude,
		Longitude:  cafe.Location.Longitude,
		OccurredAt: time.Now().UTC(),
	}
}
