package impl

import (
	"context"
	"io"

	"ngopi/internal/domain/service"
	"ngopi/internal/usecase"
)

// photoService stores uploaded photos. Type and size policy live in the
// storage implementation; this layer only shapes the use case.
type photoService struct {
	storage service.PhotoStorage
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(storage service.PhotoStorage) usecase.PhotoUsecase {
	return &photoService{
		storage: storage,
	}
}

// UploadPhoto stores one photo and returns its public URL.
func (s *photoService) UploadPhoto(ctx context.Context, contentType string, body io.Reader) (string, error) {
	return s.storage.SavePhoto(ctx, contentType, body)
}
