package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	objectStore service.ObjectStore
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		objectStore: params.ObjectStore,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateProduct stores a product owned by owner.
func (srv *productService) CreateProduct(ctx context.Context, owner *entity.User, input usecase.ProductInput) (*entity.Product, error) {
	now := srv.now()
	product := &entity.Product{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		CreatedAt: now,
	}
	product.Apply(trimFields(input.Fields()), now)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapProductWriteError(err)
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()))

	return product, nil
}

// GetProduct returns a product. Reads are public.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ReplaceProduct overwrites every mutable field.
func (srv *productService) ReplaceProduct(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.ProductInput) error {
	return srv.update(ctx, principal, id, input.Fields())
}

// PatchProduct overwrites only the fields that are set.
func (srv *productService) PatchProduct(ctx context.Context, principal *entity.User, id uuid.UUID, fields entity.ProductFields) error {
	if fields.IsEmpty() {
		return domainerrors.ErrValidationFailed.WithDetails("at least one field is required")
	}

	return srv.update(ctx, principal, id, fields)
}

func (srv *productService) update(ctx context.Context, principal *entity.User, id uuid.UUID, fields entity.ProductFields) error {
	product, err := loadOwnedProduct(ctx, srv.productRepo, principal, id)
	if err != nil {
		return err
	}

	product.Apply(trimFields(fields), srv.now())

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return mapProductWriteError(err)
	}

	return nil
}

// DeleteProduct removes the product with its image rows in one transaction and
// then removes the stored objects. Object cleanup failures are only logged.
func (srv *productService) DeleteProduct(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	if _, err := loadOwnedProduct(ctx, srv.productRepo, principal, id); err != nil {
		return err
	}

	var images []*entity.Image
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		images, err = repoFactory.ImageRepo().FindByProduct(ctx, id)
		if err != nil {
			return err
		}

		if err := repoFactory.ImageRepo().DeleteByProduct(ctx, id); err != nil {
			return err
		}

		return repoFactory.ProductRepo().Delete(ctx, id)
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	for _, image := range images {
		if err := srv.objectStore.Delete(ctx, image.StorageKey); err != nil {
			srv.log(ctx).Warn("Failed to delete image object",
				slog.String("storage_key", image.StorageKey),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()), slog.Int("images", len(images)))

	return nil
}

// loadOwnedProduct resolves the product before checking ownership, so a
// missing product is reported as not found rather than forbidden.
func loadOwnedProduct(ctx context.Context, repo repository.ProductRepository, principal *entity.User, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := service.AuthorizeMutation(principal, product); err != nil {
		return nil, err
	}

	return product, nil
}

func mapProductWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateSKU):
		return domainerrors.ErrSKUAlreadyExists
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	default:
		return errors.Wrap(err, "failed to write product")
	}
}

func trimFields(fields entity.ProductFields) entity.ProductFields {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)

		return &v
	}

	return entity.ProductFields{
		Name:         trim(fields.Name),
		Description:  trim(fields.Description),
		SKU:          trim(fields.SKU),
		Manufacturer: trim(fields.Manufacturer),
		Quantity:     fields.Quantity,
	}
}
