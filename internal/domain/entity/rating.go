package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentLength bounds the free-text comment on a rating.
const MaxCommentLength = 280

// Rating is an anonymous session's review of a cafe. Referential integrity to
// the cafe is best-effort only; the backing table enforces nothing.
type Rating struct {
	ID        uuid.UUID     `json:"id"`                                   // The unique identifier for the rating.
	CafeID    uuid.UUID     `json:"cafe_id"`                              // The cafe being rated.
	SessionID string        `json:"session_id" validate:"required"`       // Anonymous contributor session.
	Metrics   RatingMetrics `json:"metrics"`                              // Partial work-metric observations; nil fields were not reported.
	Comment   string        `json:"comment,omitempty" validate:"max=280"` // Optional free-text impression.
	Photos    []string      `json:"photos,omitempty" validate:"dive,url"` // Ordered photo URLs attached to the rating.
	LoveGiven bool          `json:"love_given"`                           // Whether the session also loved the cafe.
	RatedAt   time.Time     `json:"rated_at"`                             // Timestamp of the submission.
}

// RatingMetrics is a partial override of a cafe's work metrics. Every field is
// independently optional; a nil field means the contributor did not report it.
type RatingMetrics struct {
	WifiSpeed     *string `json:"wifi_speed,omitempty" validate:"omitnil,oneof=slow medium fast fiber"` // Observed wifi speed bucket.
	ComfortRating *int    `json:"comfort_rating,omitempty" validate:"omitnil,min=1,max=5"`              // Seating comfort on a 1-5 scale.
	NoiseLevel    *string `json:"noise_level,omitempty" validate:"omitnil,oneof=quiet moderate lively"` // Observed noise level bucket.
}

// Empty reports whether no metric was reported at all.
func (m RatingMetrics) Empty() bool {
	return m.WifiSpeed == nil && m.ComfortRating == nil && m.NoiseLevel == nil
}
