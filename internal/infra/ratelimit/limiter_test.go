package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the limiter deterministically in tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter(maxRequests int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	limiter := New(maxRequests, window)
	limiter.now = clock.now

	return limiter, clock
}

func TestLimiter_AdmitsUntilWindowFull(t *testing.T) {
	limiter, clock := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.CanMakeRequest(), "request %d should be admitted", i)
		limiter.RecordRequest()
	}

	assert.False(t, limiter.CanMakeRequest())

	clock.advance(time.Minute + time.Millisecond)

	assert.True(t, limiter.CanMakeRequest())
}

func TestLimiter_IdenticalTimestampsBothCount(t *testing.T) {
	limiter, _ := newTestLimiter(10, time.Minute)

	// The clock is frozen, so both records land on the same instant.
	limiter.RecordRequest()
	limiter.RecordRequest()

	assert.Equal(t, 2, limiter.Info().InWindow)
}

func TestLimiter_InfoReportsWindowState(t *testing.T) {
	limiter, clock := newTestLimiter(5, time.Minute)

	first := clock.current
	limiter.RecordRequest()
	clock.advance(10 * time.Second)
	limiter.RecordRequest()
	clock.advance(10 * time.Second)

	info := limiter.Info()
	assert.Equal(t, 5, info.Limit)
	assert.Equal(t, 2, info.InWindow)
	assert.Equal(t, 3, info.Remaining)
	assert.Equal(t, first.Add(time.Minute), info.ResetAt)
}

func TestLimiter_InfoEmptyWindowResetsNow(t *testing.T) {
	limiter, clock := newTestLimiter(5, time.Minute)

	info := limiter.Info()
	assert.Equal(t, 0, info.InWindow)
	assert.Equal(t, 5, info.Remaining)
	assert.Equal(t, clock.current, info.ResetAt)
}

func TestLimiter_PrunesLazilyOnObservation(t *testing.T) {
	limiter, clock := newTestLimiter(2, time.Minute)

	limiter.RecordRequest()
	limiter.RecordRequest()
	assert.False(t, limiter.CanMakeRequest())

	clock.advance(61 * time.Second)

	assert.True(t, limiter.CanMakeRequest())
	assert.Equal(t, 0, limiter.Info().InWindow)
}

func TestLimiter_WaitForSlotReturnsImmediatelyWhenFree(t *testing.T) {
	limiter := New(1, time.Minute)

	start := time.Now()
	require.NoError(t, limiter.WaitForSlot(context.Background()))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestLimiter_WaitForSlotNeverResolvesEarly(t *testing.T) {
	const window = 150 * time.Millisecond
	limiter := New(2, window)

	recorded := time.Now()
	limiter.RecordRequest()
	limiter.RecordRequest()

	require.NoError(t, limiter.WaitForSlot(context.Background()))

	assert.GreaterOrEqual(t, time.Since(recorded), window)
	assert.True(t, limiter.CanMakeRequest())
}

func TestLimiter_WaitForSlotHonorsCancellation(t *testing.T) {
	limiter := New(1, time.Hour)
	limiter.RecordRequest()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.WaitForSlot(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
