package impl

import (
	"context"
	"log/slog"
	"time"

	"ngopi/config"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/service"

	"github.com/pkg/errors"
)

// retryDelay returns the backoff before the given retry attempt (1-based):
// the base delay doubled per attempt, capped at max.
func retryDelay(attempt int, base, max time.Duration) time.Duration {
	delay := base << (attempt - 1)
	if delay <= 0 || delay > max {
		return max
	}

	return delay
}

// retrier drives the retry schedule for store calls. Reads get the full
// exponential schedule; mutations get a single fixed-delay retry because a
// replayed append can duplicate a row.
type retrier struct {
	cfg    *config.RetryConfig
	probe  service.ConnectivityProbe
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func newRetrier(cfg *config.RetryConfig, probe service.ConnectivityProbe, logger *slog.Logger) *retrier {
	return &retrier{
		cfg:    cfg,
		probe:  probe,
		logger: logger,
		sleep:  sleepContext,
	}
}

// doRead runs fn, retrying up to MaxAttempts extra times. A retry happens
// only when the failure is classified retryable and the probe still reports
// the network up; rate-limit refusals and client-side API errors end the
// loop immediately.
func (r *retrier) doRead(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	for attempt := 1; err != nil && attempt <= r.cfg.MaxAttempts; attempt++ {
		if !domainerrors.Retryable(err) || !r.probe.Online(ctx) {
			return err
		}

		delay := retryDelay(attempt, r.cfg.BaseDelay, r.cfg.MaxDelay)
		r.logger.Warn("store read failed, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}

		err = fn(ctx)
	}

	return err
}

// doMutation runs fn with at most one retry after a fixed delay. Duplicate
// writes are worse than surfaced failures, so the schedule stays short.
func (r *retrier) doMutation(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if !domainerrors.Retryable(err) || !r.probe.Online(ctx) {
		return err
	}

	r.logger.Warn("store mutation failed, retrying once",
		slog.String("op", op),
		slog.Duration("delay", r.cfg.MutationDelay),
		slog.Any("error", err),
	)
	if sleepErr := r.sleep(ctx, r.cfg.MutationDelay); sleepErr != nil {
		return sleepErr
	}

	return fn(ctx)
}

// sleepContext waits for the duration, honoring cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "retry delay interrupted")
	case <-timer.C:
		return nil
	}
}
