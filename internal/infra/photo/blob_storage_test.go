package photo

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "ngopi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, maxBytes int64) *blobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: "http://localhost:8080/media",
		maxBytes:      maxBytes,
	}
}

func storedKeys(t *testing.T, storage *blobStorage) []string {
	t.Helper()

	var keys []string
	iter := storage.bucket.List(&blob.ListOptions{Prefix: "photos/"})
	for {
		obj, err := iter.Next(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		keys = append(keys, obj.Key)
	}

	return keys
}

func TestBlobStorage_SavePhotoReturnsPublicURL(t *testing.T) {
	storage := newTestStorage(t, 1<<20)

	url, err := storage.SavePhoto(context.Background(), "image/png", strings.NewReader("png bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/media/photos/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "http://localhost:8080/media/")
	data, err := storage.bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))

	attrs, err := storage.bucket.Attributes(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_DistinctUploadsGetDistinctKeys(t *testing.T) {
	storage := newTestStorage(t, 1<<20)

	first, err := storage.SavePhoto(context.Background(), "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := storage.SavePhoto(context.Background(), "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, storedKeys(t, storage), 2)
}

func TestBlobStorage_RejectsUnsupportedType(t *testing.T) {
	storage := newTestStorage(t, 1<<20)

	url, err := storage.SavePhoto(context.Background(), "image/gif", strings.NewReader("gif bytes"))

	assert.ErrorIs(t, err, domainerrors.ErrPhotoTypeUnsupported)
	assert.Empty(t, url)
	assert.Empty(t, storedKeys(t, storage))
}

func TestBlobStorage_RejectsOversizedBody(t *testing.T) {
	storage := newTestStorage(t, 10)

	url, err := storage.SavePhoto(context.Background(), "image/webp", strings.NewReader(strings.Repeat("x", 20)))

	assert.ErrorIs(t, err, domainerrors.ErrPhotoTooLarge)
	assert.Empty(t, url)
	assert.Empty(t, storedKeys(t, storage))
}

func TestBlobStorage_AcceptsBodyExactlyAtLimit(t *testing.T) {
	storage := newTestStorage(t, 10)

	_, err := storage.SavePhoto(context.Background(), "image/webp", strings.NewReader(strings.Repeat("x", 10)))

	require.NoError(t, err)
	assert.Len(t, storedKeys(t, storage), 1)
}

func TestBlobStorage_StripsContentTypeParameters(t *testing.T) {
	storage := newTestStorage(t, 1<<20)

	url, err := storage.SavePhoto(context.Background(), "image/jpeg; quality=85", strings.NewReader("jpeg bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestNormalizeContentType(t *testing.T) {
	assert.Equal(t, "image/png", normalizeContentType("image/png"))
	assert.Equal(t, "image/jpeg", normalizeContentType("image/jpeg; charset=binary"))
	assert.Equal(t, "image/webp", normalizeContentType(" IMAGE/WEBP "))
}
