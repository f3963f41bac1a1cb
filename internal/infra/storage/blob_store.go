// Package storage keeps product media in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStore implements service.ObjectStore on top of a portable bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the dependencies of the object store.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStore opens the configured bucket and closes it on shutdown.
func NewObjectStore(params Params) (service.ObjectStore, error) {
	bucketURL := params.Config.Storage.BucketURL

	store, err := Open(params.Ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Object store opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a bucket by URL, e.g. mem:// or file:///var/lib/catalog.
func Open(ctx context.Context, bucketURL string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

// Put writes data under key, replacing any existing object.
func (s *blobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "write object %s", key)
	}

	return nil
}

// Delete removes the object; a missing object counts as deleted.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "delete object %s", key)
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
