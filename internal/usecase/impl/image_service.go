package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
	"catalog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageTypes are the sniffed content types accepted for upload.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

type imageService struct {
	productRepo  repository.ProductRepository
	imageRepo    repository.ImageRepository
	objectStore  service.ObjectStore
	maxImageSize int64
	logger       *slog.Logger
	now          func() time.Time
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageRepo   repository.ImageRepository
	ObjectStore service.ObjectStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewImageService creates a new image service instance
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		productRepo:  params.ProductRepo,
		imageRepo:    params.ImageRepo,
		objectStore:  params.ObjectStore,
		maxImageSize: params.Config.Storage.MaxImageSize,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// UploadImage stores the object first and then its metadata row. If the row
// cannot be written the object is removed again.
func (srv *imageService) UploadImage(ctx context.Context, principal *entity.User, productID uuid.UUID, input usecase.UploadImageInput) (*entity.Image, error) {
	if _, err := loadOwnedProduct(ctx, srv.productRepo, principal, productID); err != nil {
		return nil, err
	}

	size := int64(len(input.Data))
	if size == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}
	if size > srv.maxImageSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("file exceeds the %s limit", util.FormatBytes(srv.maxImageSize)))
	}

	contentType := http.DetectContentType(input.Data)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return nil, domainerrors.ErrUnsupportedMediaType
	}

	imageID := uuid.New()
	fileName := util.SanitizeFileName(input.FileName)
	image := &entity.Image{
		ID:          imageID,
		ProductID:   productID,
		FileName:    fileName,
		StorageKey:  storageKey(productID, imageID, fileName),
		ContentType: contentType,
		Size:        size,
		Checksum:    util.ChecksumBytes(input.Data),
		CreatedAt:   srv.now(),
	}

	if err := srv.objectStore.Put(ctx, image.StorageKey, contentType, input.Data); err != nil {
		srv.log(ctx).Error("Failed to store image object", slog.String("storage_key", image.StorageKey), slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		if delErr := srv.objectStore.Delete(ctx, image.StorageKey); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image object", slog.String("storage_key", image.StorageKey), slog.Any("error", delErr))
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to save image metadata")
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("image_id", imageID.String()),
		slog.String("size", util.FormatBytes(size)),
	)

	return image, nil
}

// ListImages returns a product's images. Reads are public.
func (srv *imageService) ListImages(ctx context.Context, productID uuid.UUID) ([]*entity.Image, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	images, err := srv.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return images, nil
}

// GetImage returns one image of a product.
func (srv *imageService) GetImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.Image, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	return srv.findImage(ctx, productID, imageID)
}

// DeleteImage removes the object and then the row.
func (srv *imageService) DeleteImage(ctx context.Context, principal *entity.User, productID, imageID uuid.UUID) error {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	// Both rows must exist before ownership is judged, so a missing image is 404.
	image, err := srv.findImage(ctx, productID, imageID)
	if err != nil {
		return err
	}

	if err := service.AuthorizeMutation(principal, product); err != nil {
		return err
	}

	if err := srv.objectStore.Delete(ctx, image.StorageKey); err != nil {
		srv.log(ctx).Error("Failed to delete image object", slog.String("storage_key", image.StorageKey), slog.Any("error", err))

		return domainerrors.ErrStorageFailed
	}

	if err := srv.imageRepo.Delete(ctx, imageID); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return domainerrors.ErrImageNotFound
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

func (srv *imageService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// findImage treats an image attached to another product as missing.
func (srv *imageService) findImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.Image, error) {
	image, err := srv.imageRepo.FindByID(ctx, imageID)
	if errors.Is(err, repository.ErrImageNotFound) {
		return nil, domainerrors.ErrImageNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find image")
	}

	if image.ProductID != productID {
		return nil, domainerrors.ErrImageNotFound
	}

	return image, nil
}

func storageKey(productID, imageID uuid.UUID, fileName string) string {
	return fmt.Sprintf("products/%s/%s/%s", productID, imageID, fileName)
}
