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
	"go.uber.org/fx"
)

// RatingServiceParams holds dependencies for the rating service, injected by Fx
type RatingServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	RatingRepo repository.RatingRepository
	CafeRepo   repository.CafeRepository
	Cache      *ListingCache
	Probe      service.ConnectivityProbe
}

// ratingService coordinates rating reads and writes. A rating that gives love
// also bumps the cafe's love count as a best-effort follow-up; the rating
// itself is never rolled back when that follow-up fails.
type ratingService struct {
	ratingRepo repository.RatingRepository
	cafeRepo   repository.CafeRepository
	cache      *ListingCache
	retrier    *retrier
	logger     *slog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: params.RatingRepo,
		cafeRepo:   params.CafeRepo,
		cache:      params.Cache,
		retrier:    newRetrier(params.Config.Retry, params.Probe, params.Logger),
		logger:     params.Logger,
	}
}

// AddRating stores a session's rating of a cafe.
func (s *ratingService) AddRating(ctx context.Context, cafeID uuid.UUID, sessionID string, input *usecase.RatingInput) (*entity.Rating, error) {
	rating := &entity.Rating{
		ID:        uuid.New(),
		CafeID:    cafeID,
		SessionID: sessionID,
		Metrics:   input.Metrics,
		Comment:   input.Comment,
		Photos:    input.Photos,
		LoveGiven: input.LoveGiven,
		RatedAt:   time.Now().UTC(),
	}
	if err := rating.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := s.retrier.doMutation(ctx, "add rating", func(ctx context.Context) error {
		return s.ratingRepo.AddRating(ctx, rating)
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(ratingKeyPrefix + cafeID.String())

	if rating.LoveGiven {
		s.bumpLoveCount(ctx, cafeID)
	}

	return rating, nil
}

// GetCafeRatings retrieves all ratings of one cafe through the cache.
func (s *ratingService) GetCafeRatings(ctx context.Context, cafeID uuid.UUID) ([]*entity.Rating, error) {
	return readThrough(ctx, s.cache, s.retrier, ratingKeyPrefix+cafeID.String(), func(ctx context.Context) ([]*entity.Rating, error) {
		return s.ratingRepo.GetCafeRatings(ctx, cafeID)
	})
}

// bumpLoveCount increments the cafe's love count. Best-effort: the rating is
// already stored, so failures here are logged, never surfaced.
func (s *ratingService) bumpLoveCount(ctx context.Context, cafeID uuid.UUID) {
	cafe, err := s.cafeRepo.GetCafeByID(ctx, cafeID)
	if err != nil {
		s.logger.Warn("failed to load cafe for love count update",
			slog.String("cafe_id", cafeID.String()),
			slog.Any("error", err),
		)

		return
	}

	cafe.Community.LoveCount++
	cafe.UpdatedAt = time.Now().UTC()

	if err := s.cafeRepo.UpdateCafe(ctx, cafe); err != nil {
		s.logger.Warn("failed to update cafe love count",
			slog.String("cafe_id", cafeID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.cache.invalidatePrefix(cafeListKeyPrefix)
	s.cache.invalidate(cafeKeyPrefix + cafeID.String())
}
