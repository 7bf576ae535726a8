package impl

import (
	"context"
	"strings"
	"testing"

	"ngopi/internal/domain/entity"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRatingInput() *usecase.RatingInput {
	wifi := entity.WifiFast
	comfort := 4

	return &usecase.RatingInput{
		Metrics: entity.RatingMetrics{
			WifiSpeed:     &wifi,
			ComfortRating: &comfort,
		},
		Comment: "Colokan banyak, wifi kencang",
	}
}

func TestRatingService_AddRating_Success(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	cafeID := uuid.New()

	var stored *entity.Rating
	f.ratingRepo.EXPECT().
		AddRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(_ context.Context, rating *entity.Rating) {
			stored = rating
		}).
		Return(nil).
		Once()

	rating, err := f.service.AddRating(ctx, cafeID, "session-abc", validRatingInput())
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, stored, rating)
	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.Equal(t, cafeID, rating.CafeID)
	assert.Equal(t, "session-abc", rating.SessionID)
	assert.False(t, rating.RatedAt.IsZero())
	assert.False(t, rating.LoveGiven)
}

func TestRatingService_AddRating_WithLoveBumpsCafe(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	cafe := validCafe()
	cafe.Community.LoveCount = 3

	input := validRatingInput()
	input.LoveGiven = true

	f.ratingRepo.EXPECT().
		AddRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(nil).
		Once()
	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(cafe, nil).
		Once()

	var updated *entity.Cafe
	f.cafeRepo.EXPECT().
		UpdateCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Run(func(_ context.Context, c *entity.Cafe) {
			updated = c
		}).
		Return(nil).
		Once()

	rating, err := f.service.AddRating(ctx, cafe.ID, "session-abc", input)
	require.NoError(t, err)
	assert.True(t, rating.LoveGiven)
	require.NotNil(t, updated)
	assert.Equal(t, 4, updated.Community.LoveCount)
}

func TestRatingService_AddRating_LoveBumpFailureIsBestEffort(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	cafeID := uuid.New()

	input := validRatingInput()
	input.LoveGiven = true

	f.ratingRepo.EXPECT().
		AddRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(nil).
		Once()
	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafeID).
		Return(nil, domainerrors.NewNetworkError("read cafe", assert.AnError)).
		Once()

	// The rating is already stored; the failed follow-up stays invisible.
	rating, err := f.service.AddRating(ctx, cafeID, "session-abc", input)
	require.NoError(t, err)
	assert.NotNil(t, rating)
}

func TestRatingService_AddRating_ValidationFailure(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	input := validRatingInput()
	input.Comment = strings.Repeat("x", entity.MaxCommentLength+1)

	rating, err := f.service.AddRating(ctx, uuid.New(), "session-abc", input)
	assert.Nil(t, rating)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRatingService_AddRating_StoreFailureSurfaced(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.ratingRepo.EXPECT().
		AddRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(domainerrors.NewSheetsError(400, "bad request", assert.AnError)).
		Once()

	rating, err := f.service.AddRating(ctx, uuid.New(), "session-abc", validRatingInput())
	assert.Nil(t, rating)
	require.Error(t, err)
	assert.Empty(t, f.sleeps)
}

func TestRatingService_GetCafeRatings_FetchesOnceWhileFresh(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	cafeID := uuid.New()
	expected := []*entity.Rating{
		{ID: uuid.New(), CafeID: cafeID, SessionID: "session-abc"},
	}

	f.ratingRepo.EXPECT().
		GetCafeRatings(ctx, cafeID).
		Return(expected, nil).
		Once()

	ratings, err := f.service.GetCafeRatings(ctx, cafeID)
	require.NoError(t, err)
	assert.Equal(t, expected, ratings)

	ratings, err = f.service.GetCafeRatings(ctx, cafeID)
	require.NoError(t, err)
	assert.Equal(t, expected, ratings)
}

func TestRatingService_AddRating_InvalidatesCachedRatings(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	cafeID := uuid.New()

	f.ratingRepo.EXPECT().
		GetCafeRatings(ctx, cafeID).
		Return([]*entity.Rating{}, nil).
		Twice()
	f.ratingRepo.EXPECT().
		AddRating(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(nil).
		Once()

	_, err := f.service.GetCafeRatings(ctx, cafeID)
	require.NoError(t, err)

	_, err = f.service.AddRating(ctx, cafeID, "session-abc", validRatingInput())
	require.NoError(t, err)

	_, err = f.service.GetCafeRatings(ctx, cafeID)
	require.NoError(t, err)
}
