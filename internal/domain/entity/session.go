package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an anonymous contributor session. No account, no profile; the
// session ID is the only identity attached to ratings and uploads.
type Session struct {
	ID        uuid.UUID `json:"id"`         // The session identifier embedded in the token.
	Token     string    `json:"token"`      // Signed bearer token presented on mutations.
	ExpiresAt time.Time `json:"expires_at"` // When the token stops being accepted.
}
