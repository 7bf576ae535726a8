// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wifi speed buckets reported for a cafe.
const (
	WifiSlow   = "slow"
	WifiMedium = "medium"
	WifiFast   = "fast"
	WifiFiber  = "fiber"
)

// Noise level buckets reported for a cafe.
const (
	NoiseQuiet    = "quiet"
	NoiseModerate = "moderate"
	NoiseLively   = "lively"
)

// Verification states a cafe listing moves through.
const (
	VerificationUnverified = "unverified"
	VerificationVerified   = "verified"
	VerificationPremium    = "premium"
)

// Cafe is the primary entity: a work-friendly cafe contributed by the community.
type Cafe struct {
	ID        uuid.UUID `json:"id"`                          // The unique identifier for the cafe.
	Name      string    `json:"name" validate:"required"`    // Display name, never empty.
	Address   string    `json:"address" validate:"required"` // Full street address.
	Location  Location  `json:"location"`                    // Geographic position and administrative area.
	Metrics   Metrics   `json:"metrics"`                     // Work-friendliness metrics.
	Amenities []string  `json:"amenities"`                   // Free-text amenity tags; order carries no meaning.
	Hours     Hours     `json:"hours"`                       // Weekly opening schedule.
	Images    []Image   `json:"images"`                      // Ordered gallery of uploaded photos.
	Community Community `json:"community"`                   // Community-maintained attributes.
	CreatedAt time.Time `json:"created_at"`                  // Timestamp of when the cafe was first contributed.
	UpdatedAt time.Time `json:"updated_at"`                  // Timestamp of the last modification.
}

// Location is the geographic position of a cafe.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`   // The geographic latitude.
	Longitude float64 `json:"longitude" validate:"longitude"` // The geographic longitude.
	City      string  `json:"city" validate:"required"`       // City the cafe belongs to.
	District  string  `json:"district,omitempty"`             // Optional district within the city; empty means unknown.
}

// Metrics captures how suitable a cafe is for working.
type Metrics struct {
	WifiSpeed     string `json:"wifi_speed" validate:"oneof=slow medium fast fiber"` // Observed wifi speed bucket.
	ComfortRating int    `json:"comfort_rating" validate:"min=1,max=5"`              // Seating comfort on a 1-5 scale.
	NoiseLevel    string `json:"noise_level" validate:"oneof=quiet moderate lively"` // Typical noise level bucket.
}

// Hours is the weekly opening schedule. A nil day entry means closed that day.
type Hours struct {
	Schedule  map[string]*TimeRange `json:"schedule,omitempty" validate:"dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"` // Weekday name to opening window.
	Is24Hours bool                  `json:"is_24_hours,omitempty"`                                                                                          // True when the cafe never closes.
}

// TimeRange is a single opening window in 24-hour wall clock time.
type TimeRange struct {
	Open  string `json:"open" validate:"required,datetime=15:04"`  // Opening time, HH:MM.
	Close string `json:"close" validate:"required,datetime=15:04"` // Closing time, HH:MM.
}

// Image is one uploaded cafe photo.
type Image struct {
	URL          string    `json:"url" validate:"required,url"`                      // Public URL of the full-size photo.
	ThumbnailURL string    `json:"thumbnail_url,omitempty" validate:"omitempty,url"` // Optional downscaled variant.
	UploadedBy   string    `json:"uploaded_by,omitempty"`                            // Session that contributed the photo.
	UploadedAt   time.Time `json:"uploaded_at"`                                      // Timestamp of the upload.
}

// Community holds the attributes maintained by the contributor community.
type Community struct {
	LoveCount          int       `json:"love_count" validate:"min=0"`                                       // Number of loves received, never negative.
	ContributorID      uuid.UUID `json:"contributor_id"`                                                    // Session or curator that listed the cafe.
	VerificationStatus string    `json:"verification_status" validate:"oneof=unverified verified premium"` // Listing trust level.
}
