package usecase

import (
	"context"
)

// StorePacer grants admission slots ahead of background store traffic.
// The rate limiter guarding the store satisfies it.
type StorePacer interface {
	// WaitForSlot blocks until the store admits one more request or ctx ends
	WaitForSlot(ctx context.Context) error
}
