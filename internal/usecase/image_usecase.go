package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadImageInput is one uploaded file.
type UploadImageInput struct {
	FileName string
	Data     []byte
}

// ImageUsecase defines media operations on a product's images.
type ImageUsecase interface {
	UploadImage(ctx context.Context, principal *entity.User, productID uuid.UUID, input UploadImageInput) (*entity.Image, error)
	ListImages(ctx context.Context, productID uuid.UUID) ([]*entity.Image, error)
	GetImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.Image, error)
	DeleteImage(ctx context.Context, principal *entity.User, productID, imageID uuid.UUID) error
}
