package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is an uploaded media object attached to a product. Its ownership is
// the owning product's.
type Image struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	FileName    string // Sanitized client file name.
	StorageKey  string // Object key in the bucket.
	ContentType string // Sniffed content type, image/jpeg or image/png.
	Size        int64
	Checksum    string // Hex SHA-256 of the stored bytes.
	CreatedAt   time.Time
}
