package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput is a complete product description used on create and full replace.
type ProductInput struct {
	Name         string
	Description  string
	SKU          string
	Manufacturer string
	Quantity     int
}

// Fields returns input as a full set of product fields.
func (in ProductInput) Fields() entity.ProductFields {
	return entity.ProductFields{
		Name:         &in.Name,
		Description:  &in.Description,
		SKU:          &in.SKU,
		Manufacturer: &in.Manufacturer,
		Quantity:     &in.Quantity,
	}
}

// ProductUsecase defines product operations. Mutations resolve the product
// first and then require the principal to own it.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, owner *entity.User, input ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ReplaceProduct(ctx context.Context, principal *entity.User, id uuid.UUID, input ProductInput) error
	PatchProduct(ctx context.Context, principal *entity.User, id uuid.UUID, fields entity.ProductFields) error
	DeleteProduct(ctx context.Context, principal *entity.User, id uuid.UUID) error
}
