package service

import "context"

// ObjectStore stores binary media. Keys are opaque slash-separated paths.
type ObjectStore interface {
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
