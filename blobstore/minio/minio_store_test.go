package minio

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/blobstore"
)

var _ blobstore.BlobStore = (*Store)(nil)

func TestStore_Keys(t *testing.T) {
	s, err := NewStoreWithCredentials("localhost:9000", "k", "s", false, "bucket", "/bitvec/")
	require.NoError(t, err)
	assert.NotNil(t, s.Client())

	assert.Equal(t, "bitvec/a/b", s.key("a/b"))
	assert.Equal(t, "bitvec/", s.key(""))
	assert.Equal(t, "a/b", s.name("bitvec/a/b"))

	bare := NewStore(nil, "bucket", "")
	assert.Equal(t, "a", bare.key("a"))
	assert.Equal(t, "a", bare.name("a"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-bitvec"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "test.bvec", data))

	got, err := store.Get(ctx, "test.bvec")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "test.bvec")

	require.NoError(t, store.Delete(ctx, "test.bvec"))
	_, err = store.Get(ctx, "test.bvec")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
