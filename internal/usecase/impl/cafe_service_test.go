package impl

import (
	"context"
	"testing"
	"time"

	"ngopi/internal/domain/entity"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/repository"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCafeService_GetCafes_FetchesOnceWhileFresh(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}
	expected := []*entity.Cafe{validCafe()}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return(expected, nil).
		Once()

	cafes, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, cafes)

	// A second lookup within the freshness window never touches the store.
	f.advance(time.Minute)
	cafes, err = f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, cafes)
}

func TestCafeService_GetCafes_RefetchesWhenStale(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return([]*entity.Cafe{validCafe()}, nil).
		Twice()

	_, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)

	f.advance(6 * time.Minute)
	_, err = f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
}

func TestCafeService_GetCafes_RejectsInvalidGeoFilter(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	filter := entity.CafeFilter{
		Near: &entity.GeoFilter{Latitude: -6.2, Longitude: 106.8, RadiusKM: 0},
	}

	cafes, err := f.service.GetCafes(ctx, filter)
	assert.Nil(t, cafes)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCafeService_GetCafeByID_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(cafe, nil).
		Once()

	got, err := f.service.GetCafeByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, cafe, got)

	// Cached under its own key afterwards.
	got, err = f.service.GetCafeByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, cafe, got)
}

func TestCafeService_GetCafeByID_NotFound(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, id).
		Return(nil, repository.ErrCafeNotFound).
		Once()

	cafe, err := f.service.GetCafeByID(ctx, id)
	assert.Nil(t, cafe)
	assert.Equal(t, domainerrors.ErrCafeNotFound, err)
}

func TestCafeService_AddCafe_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	contributorID := uuid.New()

	var stored *entity.Cafe
	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Run(func(_ context.Context, cafe *entity.Cafe) {
			stored = cafe
		}).
		Return(nil).
		Once()

	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.AnythingOfType("*entity.CafeEvent")).
		Return(nil).
		Once()

	cafe, err := f.service.AddCafe(ctx, contributorID, validCafeInput())
	require.NoError(t, err)
	require.NotNil(t, cafe)
	assert.Equal(t, stored, cafe)
	assert.NotEqual(t, uuid.Nil, cafe.ID)
	assert.Equal(t, contributorID, cafe.Community.ContributorID)
	assert.Equal(t, entity.VerificationUnverified, cafe.Community.VerificationStatus)
	assert.Equal(t, 0, cafe.Community.LoveCount)
	assert.False(t, cafe.CreatedAt.IsZero())
}

func TestCafeService_AddCafe_PublishesCreatedEvent(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Return(nil).
		Once()

	var published *entity.CafeEvent
	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.AnythingOfType("*entity.CafeEvent")).
		Run(func(_ context.Context, event *entity.CafeEvent) {
			published = event
		}).
		Return(nil).
		Once()

	input := validCafeInput()
	cafe, err := f.service.AddCafe(ctx, uuid.New(), input)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, entity.EventCafeCreated, published.Type)
	assert.Equal(t, cafe.ID, published.CafeID)
	assert.Equal(t, input.Location.City, published.City)
}

func TestCafeService_AddCafe_ValidationFailure(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	input := validCafeInput()
	input.Name = ""

	cafe, err := f.service.AddCafe(ctx, uuid.New(), input)
	assert.Nil(t, cafe)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Name")
}

func TestCafeService_AddCafe_InvalidatesListings(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return([]*entity.Cafe{}, nil).
		Twice()
	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.Anything).
		Return(nil).
		Once()

	_, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)

	_, err = f.service.AddCafe(ctx, uuid.New(), validCafeInput())
	require.NoError(t, err)

	// The listing was dropped from the cache, so this hits the store again.
	_, err = f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
}

func TestCafeService_BatchAddCafes_EmptyInputIsNoop(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	cafes, err := f.service.BatchAddCafes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cafes)
}

func TestCafeService_BatchAddCafes_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	second := validCafeInput()
	second.Name = "Kedai Pagi"
	inputs := []*usecase.CafeInput{validCafeInput(), second}

	var stored []*entity.Cafe
	f.cafeRepo.EXPECT().
		BatchAddCafes(ctx, mock.AnythingOfType("[]*entity.Cafe")).
		Run(func(_ context.Context, cafes []*entity.Cafe) {
			stored = cafes
		}).
		Return(nil).
		Once()

	cafes, err := f.service.BatchAddCafes(ctx, inputs)
	require.NoError(t, err)
	require.Len(t, cafes, 2)
	assert.Equal(t, stored, cafes)

	for _, cafe := range cafes {
		assert.Equal(t, uuid.Nil, cafe.Community.ContributorID)
		assert.Equal(t, entity.VerificationUnverified, cafe.Community.VerificationStatus)
	}
}

func TestCafeService_BatchAddCafes_RejectsInvalidEntry(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	bad := validCafeInput()
	bad.Metrics.ComfortRating = 9
	inputs := []*usecase.CafeInput{validCafeInput(), bad}

	cafes, err := f.service.BatchAddCafes(ctx, inputs)
	assert.Nil(t, cafes)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCafeService_UpdateCafe_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()
	previousUpdate := cafe.UpdatedAt.Add(-time.Hour)
	cafe.UpdatedAt = previousUpdate

	f.cafeRepo.EXPECT().
		UpdateCafe(ctx, cafe).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.MatchedBy(func(event *entity.CafeEvent) bool {
			return event.Type == entity.EventCafeUpdated
		})).
		Return(nil).
		Once()

	updated, err := f.service.UpdateCafe(ctx, cafe)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(previousUpdate))
}

func TestCafeService_UpdateCafe_NotFound(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()

	f.cafeRepo.EXPECT().
		UpdateCafe(ctx, cafe).
		Return(repository.ErrCafeNotFound).
		Once()

	updated, err := f.service.UpdateCafe(ctx, cafe)
	assert.Nil(t, updated)
	assert.Equal(t, domainerrors.ErrCafeNotFound, err)
}

func TestCafeService_VerifyCafe_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(cafe, nil).
		Once()

	var stored *entity.Cafe
	f.cafeRepo.EXPECT().
		UpdateCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Run(func(_ context.Context, updated *entity.Cafe) {
			stored = updated
		}).
		Return(nil).
		Once()

	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.MatchedBy(func(event *entity.CafeEvent) bool {
			return event.Type == entity.EventCafeVerified
		})).
		Return(nil).
		Once()

	verified, err := f.service.VerifyCafe(ctx, cafe.ID, entity.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationVerified, verified.Community.VerificationStatus)
	assert.Equal(t, entity.VerificationVerified, stored.Community.VerificationStatus)
}

func TestCafeService_VerifyCafe_UnknownStatus(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	cafe, err := f.service.VerifyCafe(ctx, uuid.New(), "certified")
	assert.Nil(t, cafe)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCafeService_VerifyCafe_NotFound(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, id).
		Return(nil, repository.ErrCafeNotFound).
		Once()

	cafe, err := f.service.VerifyCafe(ctx, id, entity.VerificationVerified)
	assert.Nil(t, cafe)
	assert.Equal(t, domainerrors.ErrCafeNotFound, err)
}

func TestCafeService_ShareQR_Success(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(cafe, nil).
		Once()
	f.qrcodeSvc.EXPECT().
		GenerateCafeShareQR(cafe.ID).
		Return(png, nil).
		Once()

	got, err := f.service.ShareQR(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCafeService_ShareQR_CafeMissing(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, id).
		Return(nil, repository.ErrCafeNotFound).
		Once()

	png, err := f.service.ShareQR(ctx, id)
	assert.Nil(t, png)
	assert.Equal(t, domainerrors.ErrCafeNotFound, err)
}

func TestCafeService_RateLimitInfo(t *testing.T) {
	f := newCafeFixture(t)
	info := entity.RateLimitInfo{
		Limit:     300,
		InWindow:  42,
		Remaining: 258,
		ResetAt:   time.Now().Add(30 * time.Second),
	}

	f.cafeRepo.EXPECT().
		RateLimitInfo().
		Return(info).
		Once()

	assert.Equal(t, info, f.service.RateLimitInfo())
}
