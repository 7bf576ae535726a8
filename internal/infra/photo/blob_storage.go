// Package photo contains the concrete implementation of photo storage on top
// of gocloud.dev blob buckets.
package photo

import (
	"context"
	"io"
	"mime"
	"strings"

	"ngopi/config"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/service"
	"ngopi/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

// photoExtensions maps accepted upload media types to stored extensions.
// Anything outside this map is rejected before a single byte is written.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
}

// NewBlobStorage opens the configured bucket and returns the photo storage.
// The bucket URL scheme picks the backend: file://, gs://, s3:// or mem://.
func NewBlobStorage(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Media
	if cfg == nil {
		return nil, errors.New("media config is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %q", cfg.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxUploadBytes,
	}, nil
}

// SavePhoto streams the body into the bucket under a fresh key and returns
// the public URL. Bodies over the size cap leave nothing behind in the bucket.
func (s *blobStorage) SavePhoto(ctx context.Context, contentType string, body io.Reader) (string, error) {
	mediaType := normalizeContentType(contentType)
	ext, ok := photoExtensions[mediaType]
	if !ok {
		return "", domainerrors.ErrPhotoTypeUnsupported
	}

	key := "photos/" + uuid.New().String() + ext

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: mediaType})
	if err != nil {
		return "", domainerrors.ErrPhotoUploadFailed.WrapMessage("failed to open bucket writer")
	}

	// Reading one byte past the cap distinguishes an at-limit body from an
	// oversized one without buffering the whole upload.
	written, err := io.Copy(writer, io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		_ = writer.Close()
		s.discard(ctx, key)

		return "", domainerrors.ErrPhotoUploadFailed.WrapMessage("failed to write photo to bucket")
	}

	if err := writer.Close(); err != nil {
		s.discard(ctx, key)

		return "", domainerrors.ErrPhotoUploadFailed.WrapMessage("failed to finalize photo write")
	}

	if written > s.maxBytes {
		s.discard(ctx, key)

		return "", domainerrors.ErrPhotoTooLarge
	}

	return s.publicBaseURL + "/" + key, nil
}

// discard removes a partially or wrongly written object. Failures are
// ignored; the object is unreachable because no URL was ever returned.
func (s *blobStorage) discard(ctx context.Context, key string) {
	_ = s.bucket.Delete(ctx, key)
}

// normalizeContentType strips parameters such as charset from a Content-Type
// header value. Unparseable input falls back to a trimmed lowercase compare.
func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}

	return mediaType
}
