package impl

import (
	"context"
	"log/slog"
	"time"

	"ngopi/config"
	"ngopi/internal/domain/entity"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/repository"
	"ngopi/internal/domain/service"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cafeKeyPrefix and ratingKeyPrefix group the cache keys a mutation must drop.
const (
	cafeListKeyPrefix = "cafes"
	cafeKeyPrefix     = "cafe/"
	ratingKeyPrefix   = "ratings/"
)

// CafeServiceParams holds dependencies for the cafe service, injected by Fx
type CafeServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CafeRepo  repository.CafeRepository
	Cache     *ListingCache
	Probe     service.ConnectivityProbe
	Publisher service.EventPublisher
	QRCodeSvc service.QRCodeService
}

// cafeService coordinates cafe reads and writes: reads go through the listing
// cache with the retry schedule, writes invalidate the affected keys and
// publish change events.
type cafeService struct {
	cafeRepo  repository.CafeRepository
	cache     *ListingCache
	publisher service.EventPublisher
	qrcodeSvc service.QRCodeService
	retrier   *retrier
	logger    *slog.Logger
}

// NewCafeService creates a new cafe service instance
func NewCafeService(params CafeServiceParams) usecase.CafeUsecase {
	return &cafeService{
		cafeRepo:  params.CafeRepo,
		cache:     params.Cache,
		publisher: params.Publisher,
		qrcodeSvc: params.QRCodeSvc,
		retrier:   newRetrier(params.Config.Retry, params.Probe, params.Logger),
		logger:    params.Logger,
	}
}

// GetCafes retrieves cafes matching the filter through the listing cache.
func (s *cafeService) GetCafes(ctx context.Context, filter entity.CafeFilter) ([]*entity.Cafe, error) {
	if filter.Near != nil {
		if err := filter.Near.Validate(); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	return readThrough(ctx, s.cache, s.retrier, filter.Fingerprint(), func(ctx context.Context) ([]*entity.Cafe, error) {
		return s.cafeRepo.GetCafes(ctx, filter)
	})
}

// GetCafeByID retrieves a single cafe listing through the cache.
func (s *cafeService) GetCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	cafe, err := readThrough(ctx, s.cache, s.retrier, cafeKeyPrefix+id.String(), func(ctx context.Context) (*entity.Cafe, error) {
		return s.cafeRepo.GetCafeByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, err
	}

	return cafe, nil
}

// AddCafe creates a new listing contributed by an anonymous session.
func (s *cafeService) AddCafe(ctx context.Context, contributorID uuid.UUID, input *usecase.CafeInput) (*entity.Cafe, error) {
	cafe := newCafeFromInput(contributorID, input)
	if err := cafe.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := s.retrier.doMutation(ctx, "add cafe", func(ctx context.Context) error {
		return s.cafeRepo.AddCafe(ctx, cafe)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCafe(cafe.ID)
	s.publishEvent(ctx, entity.EventCafeCreated, cafe)

	return cafe, nil
}

// BatchAddCafes imports curator-vetted listings in one store call. An empty
// input is a no-op: no store call, no cache churn, no events.
func (s *cafeService) BatchAddCafes(ctx context.Context, inputs []*usecase.CafeInput) ([]*entity.Cafe, error) {
	if len(inputs) == 0 {
		return []*entity.Cafe{}, nil
	}

	cafes := make([]*entity.Cafe, 0, len(inputs))
	for _, input := range inputs {
		// Imported listings have no contributing session.
		cafe := newCafeFromInput(uuid.Nil, input)
		if err := cafe.Validate(); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		cafes = append(cafes, cafe)
	}

	err := s.retrier.doMutation(ctx, "batch add cafes", func(ctx context.Context) error {
		return s.cafeRepo.BatchAddCafes(ctx, cafes)
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidatePrefix(cafeListKeyPrefix)

	return cafes, nil
}

// UpdateCafe overwrites an existing listing in full.
func (s *cafeService) UpdateCafe(ctx context.Context, cafe *entity.Cafe) (*entity.Cafe, error) {
	cafe.UpdatedAt = time.Now().UTC()
	if err := cafe.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := s.retrier.doMutation(ctx, "update cafe", func(ctx context.Context) error {
		return s.cafeRepo.UpdateCafe(ctx, cafe)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, err
	}

	s.invalidateCafe(cafe.ID)
	s.publishEvent(ctx, entity.EventCafeUpdated, cafe)

	return cafe, nil
}

// VerifyCafe moves a listing to the given verification status.
func (s *cafeService) VerifyCafe(ctx context.Context, id uuid.UUID, status string) (*entity.Cafe, error) {
	switch status {
	case entity.VerificationUnverified, entity.VerificationVerified, entity.VerificationPremium:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown verification status: " + status)
	}

	// Fresh read: verification must act on current row contents, not on a
	// possibly stale cache entry.
	cafe, err := s.cafeRepo.GetCafeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, err
	}

	cafe.Community.VerificationStatus = status
	cafe.UpdatedAt = time.Now().UTC()

	err = s.retrier.doMutation(ctx, "verify cafe", func(ctx context.Context) error {
		return s.cafeRepo.UpdateCafe(ctx, cafe)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, err
	}

	s.invalidateCafe(cafe.ID)
	s.publishEvent(ctx, entity.EventCafeVerified, cafe)

	return cafe, nil
}

// ShareQR renders the share QR code PNG for a cafe. The listing must exist;
// the lookup rides the cache so repeated shares cost no store budget.
func (s *cafeService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.GetCafeByID(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateCafeShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

// RateLimitInfo reports the store's current request window.
func (s *cafeService) RateLimitInfo() entity.RateLimitInfo {
	return s.cafeRepo.RateLimitInfo()
}

// invalidateCafe drops every cache key a cafe mutation can stale out.
func (s *cafeService) invalidateCafe(id uuid.UUID) {
	s.cache.invalidatePrefix(cafeListKeyPrefix)
	s.cache.invalidate(cafeKeyPrefix + id.String())
}

// publishEvent publishes a cafe change best-effort. The mutation already
// succeeded; a dead event bus must not turn it into a failure.
func (s *cafeService) publishEvent(ctx context.Context, eventType string, cafe *entity.Cafe) {
	event := entity.NewCafeEvent(eventType, cafe)
	if err := s.publisher.PublishCafeEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish cafe event",
			slog.String("event_type", eventType),
			slog.String("cafe_id", cafe.ID.String()),
			slog.Any("error", err),
		)
	}
}

// newCafeFromInput builds a cafe entity with server-assigned identity,
// community state and timestamps.
func newCafeFromInput(contributorID uuid.UUID, input *usecase.CafeInput) *entity.Cafe {
	now := time.Now().UTC()

	return &entity.Cafe{
		ID:        uuid.New(),
		Name:      input.Name,
		Address:   input.Address,
		Location:  input.Location,
		Metrics:   input.Metrics,
		Amenities: input.Amenities,
		Hours:     input.Hours,
		Images:    input.Images,
		Community: entity.Community{
			LoveCount:          0,
			ContributorID:      contributorID,
			VerificationStatus: entity.VerificationUnverified,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
