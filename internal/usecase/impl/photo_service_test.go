package impl

import (
	"context"
	"strings"
	"testing"

	mockService "ngopi/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_UploadPhoto_Success(t *testing.T) {
	mockStorage := mockService.NewMockPhotoStorage(t)
	svc := NewPhotoService(mockStorage)

	ctx := context.Background()
	body := strings.NewReader("jpeg bytes")

	mockStorage.EXPECT().
		SavePhoto(ctx, "image/jpeg", body).
		Return("http://localhost:8080/media/abc.jpg", nil).
		Once()

	url, err := svc.UploadPhoto(ctx, "image/jpeg", body)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/abc.jpg", url)
}

func TestPhotoService_UploadPhoto_StorageFailure(t *testing.T) {
	mockStorage := mockService.NewMockPhotoStorage(t)
	svc := NewPhotoService(mockStorage)

	ctx := context.Background()
	body := strings.NewReader("jpeg bytes")

	mockStorage.EXPECT().
		SavePhoto(ctx, "image/jpeg", body).
		Return("", assert.AnError).
		Once()

	url, err := svc.UploadPhoto(ctx, "image/jpeg", body)
	assert.Empty(t, url)
	assert.Error(t, err)
}
