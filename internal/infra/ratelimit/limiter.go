// Package ratelimit enforces the client-side request budget for the Sheets API.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"ngopi/internal/domain/entity"

	"github.com/pkg/errors"
)

// Limiter tracks a sliding window of request timestamps and decides admission.
// The window is a multiset: several requests recorded at the identical instant
// all count. One process-wide instance gates every store repository.
type Limiter struct {
	max    int
	window time.Duration

	mu     sync.Mutex
	stamps []time.Time
	now    func() time.Time
}

// New creates a limiter admitting at most maxRequests per window.
func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		max:    maxRequests,
		window: window,
		now:    time.Now,
	}
}

// CanMakeRequest reports whether one more request fits the window right now.
// It records nothing.
func (l *Limiter) CanMakeRequest() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(l.now())

	return len(l.stamps) < l.max
}

// RecordRequest appends the current instant to the window. It performs no
// admission check of its own; callers gate on CanMakeRequest first.
func (l *Limiter) RecordRequest() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stamps = append(l.stamps, l.now())
}

// Info reports the current window state.
func (l *Limiter) Info() entity.RateLimitInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	info := entity.RateLimitInfo{
		Limit:    l.max,
		InWindow: len(l.stamps),
		ResetAt:  now,
	}
	if remaining := l.max - len(l.stamps); remaining > 0 {
		info.Remaining = remaining
	}
	if len(l.stamps) > 0 {
		info.ResetAt = l.stamps[0].Add(l.window)
	}

	return info
}

// WaitForSlot blocks until the window has room or the context ends. When the
// window is full it sleeps until the oldest in-window timestamp expires, then
// re-checks; there is no polling in between. Callers racing for the same slot
// are not ordered; each wake-up re-runs admission.
func (l *Limiter) WaitForSlot(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()
		l.prune(now)
		if len(l.stamps) < l.max {
			l.mu.Unlock()

			return nil
		}
		wait := l.stamps[0].Add(l.window).Sub(now)
		l.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return errors.Wrap(ctx.Err(), "waiting for rate limit slot")
		case <-timer.C:
		}
	}
}

// prune drops timestamps that have left the window. Cleanup is lazy: it runs
// on observation, never on a background timer. Caller holds l.mu.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	idx := 0
	for idx < len(l.stamps) && !l.stamps[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[idx:]...)
	}
}
