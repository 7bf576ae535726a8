package impl

import (
	"context"
	"log/slog"

	domainerrors "ngopi/internal/domain/errors"

	"github.com/pkg/errors"
)

// storeFailure reports whether err is a store-level failure (admission,
// transport or upstream API). Only those fall back to retained cache data;
// domain errors such as "not found" always propagate.
func storeFailure(err error) bool {
	var rateLimitErr *domainerrors.RateLimitError
	var networkErr *domainerrors.NetworkError
	var sheetsErr *domainerrors.SheetsError

	return errors.As(err, &rateLimitErr) ||
		errors.As(err, &networkErr) ||
		errors.As(err, &sheetsErr)
}

// readThrough serves key from the cache while fresh, refetches with retry when
// stale or missing, and falls back to a still-retained stale entry when every
// attempt fails. The loader is stored with the entry so the background sweep
// can revalidate it later.
func readThrough[T any](ctx context.Context, cache *ListingCache, r *retrier, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if cached, fetchedAt, ok := cache.lookup(key); ok {
		if cache.now().Sub(fetchedAt) < cache.freshFor {
			return cached.(T), nil
		}
	}

	var fetched T
	err := r.doRead(ctx, key, func(ctx context.Context) error {
		result, loadErr := load(ctx)
		if loadErr != nil {
			return loadErr
		}
		fetched = result

		return nil
	})
	if err == nil {
		cache.store(key, fetched, func(ctx context.Context) (any, error) {
			return load(ctx)
		})

		return fetched, nil
	}

	if storeFailure(err) {
		if cached, fetchedAt, ok := cache.lookup(key); ok && cache.now().Sub(fetchedAt) < cache.retainFor {
			r.logger.Warn("serving stale cached data after fetch failure",
				slog.String("key", key),
				slog.Time("fetched_at", fetchedAt),
				slog.Any("error", err),
			)

			return cached.(T), nil
		}
	}

	var zero T

	return zero, err
}
