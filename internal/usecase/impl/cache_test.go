package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheFixture struct {
	cache *ListingCache
	pacer *stubPacer
	clock time.Time
}

func newCacheFixture(t *testing.T) *cacheFixture {
	t.Helper()

	f := &cacheFixture{
		pacer: &stubPacer{},
		clock: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	f.cache = NewListingCache(testConfig(), f.pacer, testLogger())
	f.cache.now = func() time.Time { return f.clock }

	return f
}

func (f *cacheFixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func staticLoader(value any) loaderFunc {
	return func(_ context.Context) (any, error) {
		return value, nil
	}
}

func TestListingCache_LookupMiss(t *testing.T) {
	f := newCacheFixture(t)

	_, _, ok := f.cache.lookup("cafes")
	assert.False(t, ok)
}

func TestListingCache_StoreAndLookup(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", "listing", staticLoader("listing"))

	data, fetchedAt, ok := f.cache.lookup("cafes")
	require.True(t, ok)
	assert.Equal(t, "listing", data)
	assert.Equal(t, f.clock, fetchedAt)
}

func TestListingCache_InvalidateDropsKeys(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafe/a", 1, staticLoader(1))
	f.cache.store("cafe/b", 2, staticLoader(2))

	f.cache.invalidate("cafe/a")

	_, _, ok := f.cache.lookup("cafe/a")
	assert.False(t, ok)
	_, _, ok = f.cache.lookup("cafe/b")
	assert.True(t, ok)
}

func TestListingCache_InvalidatePrefix(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", 1, staticLoader(1))
	f.cache.store("cafes|city=Bandung", 2, staticLoader(2))
	f.cache.store("ratings/xyz", 3, staticLoader(3))

	f.cache.invalidatePrefix("cafes")

	_, _, ok := f.cache.lookup("cafes")
	assert.False(t, ok)
	_, _, ok = f.cache.lookup("cafes|city=Bandung")
	assert.False(t, ok)
	_, _, ok = f.cache.lookup("ratings/xyz")
	assert.True(t, ok)
}

func TestListingCache_EvictUnused(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", 1, staticLoader(1))
	f.advance(5 * time.Minute)
	f.cache.store("ratings/xyz", 2, staticLoader(2))

	// 11 minutes since "cafes" was last read, 6 since "ratings/xyz".
	f.advance(6 * time.Minute)

	evicted := f.cache.evictUnused()
	assert.Equal(t, 1, evicted)

	_, _, ok := f.cache.lookup("cafes")
	assert.False(t, ok)
	_, _, ok = f.cache.lookup("ratings/xyz")
	assert.True(t, ok)
}

func TestListingCache_LookupKeepsEntryAlive(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", 1, staticLoader(1))

	// Reads every 8 minutes keep the entry within the retention window.
	f.advance(8 * time.Minute)
	_, _, ok := f.cache.lookup("cafes")
	require.True(t, ok)

	f.advance(8 * time.Minute)
	assert.Equal(t, 0, f.cache.evictUnused())
}

func TestListingCache_StaleKeys(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", 1, staticLoader(1))
	f.advance(3 * time.Minute)
	f.cache.store("ratings/xyz", 2, staticLoader(2))

	// "cafes" is now 6 minutes old, "ratings/xyz" only 3.
	f.advance(3 * time.Minute)

	assert.Equal(t, []string{"cafes"}, f.cache.staleKeys())
}

func TestListingCache_RefreshReloadsThroughPacer(t *testing.T) {
	f := newCacheFixture(t)

	loads := 0
	f.cache.store("cafes", "old", func(_ context.Context) (any, error) {
		loads++

		return "new", nil
	})

	f.advance(6 * time.Minute)
	require.NoError(t, f.cache.refresh(context.Background(), "cafes"))

	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, f.pacer.calls)

	data, fetchedAt, ok := f.cache.lookup("cafes")
	require.True(t, ok)
	assert.Equal(t, "new", data)
	assert.Equal(t, f.clock, fetchedAt)
}

func TestListingCache_RefreshKeepsOldDataOnFailure(t *testing.T) {
	f := newCacheFixture(t)

	f.cache.store("cafes", "old", func(_ context.Context) (any, error) {
		return nil, assert.AnError
	})

	err := f.cache.refresh(context.Background(), "cafes")
	require.Error(t, err)

	data, _, ok := f.cache.lookup("cafes")
	require.True(t, ok)
	assert.Equal(t, "old", data)
}

func TestListingCache_RefreshMissingKeyIsNoop(t *testing.T) {
	f := newCacheFixture(t)

	require.NoError(t, f.cache.refresh(context.Background(), "gone"))
	assert.Equal(t, 0, f.pacer.calls)
}

func TestListingCache_SweepRefreshesStaleEntries(t *testing.T) {
	f := newCacheFixture(t)

	loads := 0
	f.cache.store("cafes", "old", func(_ context.Context) (any, error) {
		loads++

		return "refreshed", nil
	})

	f.advance(6 * time.Minute)
	f.cache.sweep(context.Background())

	assert.Equal(t, 1, loads)

	data, _, ok := f.cache.lookup("cafes")
	require.True(t, ok)
	assert.Equal(t, "refreshed", data)
}

func TestListingCache_SweepEvictsBeforeRefreshing(t *testing.T) {
	f := newCacheFixture(t)

	loads := 0
	f.cache.store("cafes", "old", func(_ context.Context) (any, error) {
		loads++

		return "refreshed", nil
	})

	// Past retention with no reads in between: evicted, never refetched.
	f.advance(11 * time.Minute)
	f.cache.sweep(context.Background())

	assert.Equal(t, 0, loads)
	assert.Equal(t, 0, f.pacer.calls)

	_, _, ok := f.cache.lookup("cafes")
	assert.False(t, ok)
}
