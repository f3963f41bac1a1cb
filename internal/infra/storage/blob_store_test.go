package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	key := "products/p1/i1/photo.png"
	require.NoError(t, store.Put(ctx, key, "image/png", []byte("png-bytes")))

	attrs, err := store.bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.EqualValues(t, len("png-bytes"), attrs.Size)

	require.NoError(t, store.Delete(ctx, key))

	exists, err := store.bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStore_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.NoError(t, store.Delete(ctx, "products/none"))
}

func TestBlobStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "file://"+t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Put(ctx, "products/p/i/a.jpg", "image/jpeg", []byte{0xff, 0xd8, 0xff}))
	data, err := store.bucket.ReadAll(ctx, "products/p/i/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
