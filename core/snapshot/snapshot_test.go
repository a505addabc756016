package snapshot_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"content-sync/core/snapshot"
	"content-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := snapshot.Encode([]map[string]string{{"url": "https://x/?a=1&b=<2>"}})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"url\": \"https://x/?a=1&b=<2>\"\n  }\n]\n", string(data))
}

func TestFileWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	w := snapshot.NewFileWriter(dir)

	require.NoError(t, w.Write(context.Background(), "products", []byte("[1]\n")))
	got, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", string(got))

	require.NoError(t, w.Write(context.Background(), "products", []byte("[2]\n")))
	got, err = os.ReadFile(w.Path("products"))
	require.NoError(t, err)
	assert.Equal(t, "[2]\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileWriter_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := snapshot.NewFileWriter(dir).Write(ctx, "posts", []byte("[]"))
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(dir, "posts.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBucketWriter(t *testing.T) {
	t.Run("ObjectName", func(t *testing.T) {
		assert.Equal(t, "data/tours.json", snapshot.NewBucketWriter(nil, "b", "/data/").ObjectName("tours"))
		assert.Equal(t, "tours.json", snapshot.NewBucketWriter(nil, "b", "").ObjectName("tours"))
	})

	t.Run("Write", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "content", "data/posts.json", mock.Anything, int64(2),
			minio.PutObjectOptions{ContentType: "application/json"}).Return(minio.UploadInfo{}, nil)

		w := snapshot.NewBucketWriter(client, "content", "data")
		require.NoError(t, w.Write(context.Background(), "posts", []byte("[]")))
		client.AssertExpectations(t)
	})

	t.Run("WriteError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "content", "data/posts.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := snapshot.NewBucketWriter(client, "content", "data").Write(context.Background(), "posts", []byte("[]"))
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("EnsureBucketCreatesMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "content").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "content", mock.Anything).Return(nil)

		require.NoError(t, snapshot.NewBucketWriter(client, "content", "data").EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("EnsureBucketExisting", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "content").Return(true, nil)

		require.NoError(t, snapshot.NewBucketWriter(client, "content", "data").EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}
