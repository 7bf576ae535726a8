package entity

import "time"

// RateLimitInfo is a snapshot of the store's sliding request window.
type RateLimitInfo struct {
	Limit     int       `json:"limit"`      // Configured maximum requests per window.
	InWindow  int       `json:"in_window"`  // Requests recorded inside the current window.
	Remaining int       `json:"remaining"`  // Requests still admissible right now.
	ResetAt   time.Time `json:"reset_at"`   // When the oldest in-window request ages out; now when the window is empty.
}
