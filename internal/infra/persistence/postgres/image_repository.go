package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	var imageM model.ProductImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by ID")
	}

	return toImageDomain(&imageM), nil
}

func (repo *imageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Image, error) {
	var imageModels []*model.ProductImageModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find images by product")
	}

	images := make([]*entity.Image, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

func (repo *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductImageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

func (repo *imageRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete images by product")
	}

	return nil
}

// --- Mapper Functions ---

func toImageDomain(data *model.ProductImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:          data.ID,
		ProductID:   data.ProductID,
		FileName:    data.FileName,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		Size:        data.Size,
		Checksum:    data.Checksum,
		CreatedAt:   data.CreatedAt,
	}
}

func fromImageDomain(data *entity.Image) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		FileName:    data.FileName,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		Size:        data.Size,
		Checksum:    data.Checksum,
		CreatedAt:   data.CreatedAt,
	}
}
