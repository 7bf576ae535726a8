package usecase

import (
	"context"
	"io"
)

// PhotoUsecase defines the interface for photo upload use cases
type PhotoUsecase interface {
	// UploadPhoto stores one photo and returns its public URL
	UploadPhoto(ctx context.Context, contentType string, body io.Reader) (string, error)
}
