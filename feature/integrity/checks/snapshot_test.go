package checks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"content-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("[{\"slug\":\"a\"},{\"slug\":\"b\"}]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tours.json"), []byte("{\"not\":\"an array\"}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts.json"), []byte("[broken"), 0o644))

	reports, err := CheckSnapshot(dir)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, FileReport{Name: "products", Present: true, Valid: true, Records: 2, ModifiedAt: reports[0].ModifiedAt}, reports[0])
	assert.False(t, reports[0].ModifiedAt.IsZero())

	assert.True(t, reports[1].Present)
	assert.False(t, reports[1].Valid)

	assert.Equal(t, FileReport{Name: "donations"}, reports[2])

	assert.True(t, reports[3].Present)
	assert.False(t, reports[3].Valid)
}

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestCheckPublished(t *testing.T) {
	client := new(mocks.Client)
	modified := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	client.On("BucketExists", mock.Anything, "content").Return(true, nil)
	client.On("ListObjects", mock.Anything, "content", minio.ListObjectsOptions{Prefix: "data/"}).Return(objects(
		minio.ObjectInfo{Key: "data/products.json", Size: 120, LastModified: modified},
		minio.ObjectInfo{Key: "data/posts.json", Size: 40, LastModified: modified},
		minio.ObjectInfo{Key: "data/other.json", Size: 1},
	))

	reports, err := CheckPublished(context.Background(), client, "content", "/data/")
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, ObjectReport{Name: "products", Present: true, Size: 120, ModifiedAt: modified}, reports[0])
	assert.False(t, reports[1].Present)
	assert.False(t, reports[2].Present)
	assert.True(t, reports[3].Present)
	client.AssertExpectations(t)
}

func TestCheckPublished_Errors(t *testing.T) {
	t.Run("Missing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "content").Return(false, nil)

		_, err := CheckPublished(context.Background(), client, "content", "data")
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "content").Return(false, errors.New("dial tcp"))

		_, err := CheckPublished(context.Background(), client, "content", "data")
		assert.ErrorContains(t, err, "dial tcp")
	})

	t.Run("List Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "content").Return(true, nil)
		client.On("ListObjects", mock.Anything, "content", mock.Anything).Return(objects(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := CheckPublished(context.Background(), client, "content", "")
		assert.ErrorContains(t, err, "access denied")
	})
}
