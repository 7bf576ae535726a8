package service

import (
	"context"
	"io"
)

// PhotoStorage defines the interface for storing uploaded cafe and rating
// photos. Implementations pick the object key; callers only get the URL back.
type PhotoStorage interface {
	// SavePhoto streams one photo into storage and returns its public URL.
	SavePhoto(ctx context.Context, contentType string, body io.Reader) (string, error)
}
