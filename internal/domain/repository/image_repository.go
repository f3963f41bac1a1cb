package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when an image record is not found.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines persistence for product image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}
