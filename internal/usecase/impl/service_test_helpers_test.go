package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ngopi/config"
	"ngopi/internal/domain/entity"
	mockRepo "ngopi/internal/mocks/repository"
	mockService "ngopi/internal/mocks/service"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
)

// testLogger discards output; the services under test log retries and
// best-effort failures.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubPacer counts admission requests from background revalidation.
type stubPacer struct {
	calls int
	err   error
}

func (p *stubPacer) WaitForSlot(_ context.Context) error {
	p.calls++

	return p.err
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Cache: &config.CacheConfig{
			FreshFor:        5 * time.Minute,
			RetainFor:       10 * time.Minute,
			RevalidateEvery: 15 * time.Minute,
		},
		Retry: &config.RetryConfig{
			MaxAttempts:   3,
			BaseDelay:     time.Second,
			MaxDelay:      30 * time.Second,
			MutationDelay: 2 * time.Second,
		},
	}

	return cfg
}

// cafeFixture wires a cafe service against mocks, with the retry sleeps
// recorded instead of slept and the cache clock controllable.
type cafeFixture struct {
	service   *cafeService
	cafeRepo  *mockRepo.MockCafeRepository
	probe     *mockService.MockConnectivityProbe
	publisher *mockService.MockEventPublisher
	qrcodeSvc *mockService.MockQRCodeService
	cache     *ListingCache
	pacer     *stubPacer

	clock  time.Time
	sleeps []time.Duration
}

func newCafeFixture(t *testing.T) *cafeFixture {
	t.Helper()

	f := &cafeFixture{
		cafeRepo:  mockRepo.NewMockCafeRepository(t),
		probe:     mockService.NewMockConnectivityProbe(t),
		publisher: mockService.NewMockEventPublisher(t),
		qrcodeSvc: mockService.NewMockQRCodeService(t),
		pacer:     &stubPacer{},
		clock:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	cfg := testConfig()
	logger := testLogger()
	f.cache = NewListingCache(cfg, f.pacer, logger)
	f.cache.now = func() time.Time { return f.clock }

	f.service = NewCafeService(CafeServiceParams{
		Config:    cfg,
		Logger:    logger,
		CafeRepo:  f.cafeRepo,
		Cache:     f.cache,
		Probe:     f.probe,
		Publisher: f.publisher,
		QRCodeSvc: f.qrcodeSvc,
	}).(*cafeService)

	f.service.retrier.sleep = func(_ context.Context, d time.Duration) error {
		f.sleeps = append(f.sleeps, d)

		return nil
	}

	return f
}

func (f *cafeFixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

// ratingFixture wires a rating service the same way.
type ratingFixture struct {
	service    *ratingService
	ratingRepo *mockRepo.MockRatingRepository
	cafeRepo   *mockRepo.MockCafeRepository
	probe      *mockService.MockConnectivityProbe
	cache      *ListingCache

	sleeps []time.Duration
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()

	f := &ratingFixture{
		ratingRepo: mockRepo.NewMockRatingRepository(t),
		cafeRepo:   mockRepo.NewMockCafeRepository(t),
		probe:      mockService.NewMockConnectivityProbe(t),
	}

	cfg := testConfig()
	logger := testLogger()
	f.cache = NewListingCache(cfg, &stubPacer{}, logger)

	f.service = NewRatingService(RatingServiceParams{
		Config:     cfg,
		Logger:     logger,
		RatingRepo: f.ratingRepo,
		CafeRepo:   f.cafeRepo,
		Cache:      f.cache,
		Probe:      f.probe,
	}).(*ratingService)

	f.service.retrier.sleep = func(_ context.Context, d time.Duration) error {
		f.sleeps = append(f.sleeps, d)

		return nil
	}

	return f
}

func validCafeInput() *usecase.CafeInput {
	return &usecase.CafeInput{
		Name:    "Kopi Senja",
		Address: "Jl. Kaliurang KM 5 No. 12, Yogyakarta",
		Location: entity.Location{
			Latitude:  -7.7520,
			Longitude: 110.3840,
			City:      "Yogyakarta",
			District:  "Sleman",
		},
		Metrics: entity.Metrics{
			WifiSpeed:     entity.WifiFast,
			ComfortRating: 4,
			NoiseLevel:    entity.NoiseModerate,
		},
		Amenities: []string{"power outlets", "prayer room"},
	}
}

func validCafe() *entity.Cafe {
	return newCafeFromInput(uuid.New(), validCafeInput())
}
