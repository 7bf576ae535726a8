package impl

import (
	"context"
	"testing"
	"time"

	"ngopi/internal/domain/entity"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCafeService_GetCafes_RetriesTransientFailures(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}
	expected := []*entity.Cafe{validCafe()}

	f.probe.EXPECT().Online(ctx).Return(true).Times(2)

	calls := 0
	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		RunAndReturn(func(_ context.Context, _ entity.CafeFilter) ([]*entity.Cafe, error) {
			calls++
			if calls < 3 {
				return nil, domainerrors.NewNetworkError("list cafes", assert.AnError)
			}

			return expected, nil
		}).
		Times(3)

	cafes, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, cafes)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, f.sleeps)
}

func TestCafeService_GetCafes_RateLimitSurfacesImmediately(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return(nil, domainerrors.NewRateLimitError(300, 300, time.Now().Add(time.Minute))).
		Once()

	cafes, err := f.service.GetCafes(ctx, filter)
	assert.Nil(t, cafes)
	require.Error(t, err)

	var rateLimitErr *domainerrors.RateLimitError
	assert.True(t, errors.As(err, &rateLimitErr))
	assert.Empty(t, f.sleeps)
}

func TestCafeService_GetCafes_ServesStaleAfterStoreFailure(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}
	expected := []*entity.Cafe{validCafe()}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return(expected, nil).
		Once()

	_, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)

	// Entry is stale but still retained; every refetch attempt fails.
	f.advance(6 * time.Minute)
	f.probe.EXPECT().Online(ctx).Return(true).Times(3)
	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return(nil, domainerrors.NewNetworkError("list cafes", assert.AnError)).
		Times(4)

	cafes, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, cafes)
}

func TestCafeService_GetCafes_StaleFallbackExpiresWithRetention(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	filter := entity.CafeFilter{City: "Bandung"}

	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return([]*entity.Cafe{validCafe()}, nil).
		Once()

	_, err := f.service.GetCafes(ctx, filter)
	require.NoError(t, err)

	// Past the retention window the stale copy is no longer acceptable.
	f.advance(11 * time.Minute)
	f.probe.EXPECT().Online(ctx).Return(true).Times(3)
	f.cafeRepo.EXPECT().
		GetCafes(ctx, filter).
		Return(nil, domainerrors.NewNetworkError("list cafes", assert.AnError)).
		Times(4)

	cafes, err := f.service.GetCafes(ctx, filter)
	assert.Nil(t, cafes)
	require.Error(t, err)

	var networkErr *domainerrors.NetworkError
	assert.True(t, errors.As(err, &networkErr))
}

func TestCafeService_GetCafeByID_NoStaleFallbackForNotFound(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()
	cafe := validCafe()

	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(cafe, nil).
		Once()

	_, err := f.service.GetCafeByID(ctx, cafe.ID)
	require.NoError(t, err)

	// The row was deleted upstream; the cached copy must not mask that.
	f.advance(6 * time.Minute)
	f.cafeRepo.EXPECT().
		GetCafeByID(ctx, cafe.ID).
		Return(nil, repository.ErrCafeNotFound).
		Once()

	got, err := f.service.GetCafeByID(ctx, cafe.ID)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrCafeNotFound, err)
}

func TestCafeService_AddCafe_RetriedOnceAfterNetworkFailure(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	f.probe.EXPECT().Online(ctx).Return(true).Once()

	calls := 0
	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		RunAndReturn(func(_ context.Context, _ *entity.Cafe) error {
			calls++
			if calls == 1 {
				return domainerrors.NewNetworkError("append cafe", assert.AnError)
			}

			return nil
		}).
		Times(2)

	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.Anything).
		Return(nil).
		Once()

	cafe, err := f.service.AddCafe(ctx, uuid.New(), validCafeInput())
	require.NoError(t, err)
	assert.NotNil(t, cafe)
	assert.Equal(t, []time.Duration{2 * time.Second}, f.sleeps)
}

func TestCafeService_AddCafe_MutationFailureSurfaced(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	f.probe.EXPECT().Online(ctx).Return(true).Once()
	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Return(domainerrors.NewNetworkError("append cafe", assert.AnError)).
		Times(2)

	cafe, err := f.service.AddCafe(ctx, uuid.New(), validCafeInput())
	assert.Nil(t, cafe)
	require.Error(t, err)

	var networkErr *domainerrors.NetworkError
	assert.True(t, errors.As(err, &networkErr))
}

func TestCafeService_AddCafe_PublishFailureDoesNotFailMutation(t *testing.T) {
	f := newCafeFixture(t)
	ctx := context.Background()

	f.cafeRepo.EXPECT().
		AddCafe(ctx, mock.AnythingOfType("*entity.Cafe")).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		PublishCafeEvent(ctx, mock.Anything).
		Return(assert.AnError).
		Once()

	cafe, err := f.service.AddCafe(ctx, uuid.New(), validCafeInput())
	require.NoError(t, err)
	assert.NotNil(t, cafe)
}
