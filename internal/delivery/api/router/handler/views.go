package handler

import (
	"time"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the only representation of a user sent to callers. It has no
// field for the password hash or the verification token.
type UserView struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	EmailVerified  bool      `json:"email_verified"`
	AccountCreated time.Time `json:"account_created"`
	AccountUpdated time.Time `json:"account_updated"`
}

func newUserView(user *entity.User) UserView {
	return UserView{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		EmailVerified:  user.EmailVerified,
		AccountCreated: user.CreatedAt,
		AccountUpdated: user.UpdatedAt,
	}
}

// ProductView is the public representation of a product.
type ProductView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SKU             string    `json:"sku"`
	Manufacturer    string    `json:"manufacturer"`
	Quantity        int       `json:"quantity"`
	OwnerUserID     uuid.UUID `json:"owner_user_id"`
	DateAdded       time.Time `json:"date_added"`
	DateLastUpdated time.Time `json:"date_last_updated"`
}

func newProductView(product *entity.Product) ProductView {
	return ProductView{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		SKU:             product.SKU,
		Manufacturer:    product.Manufacturer,
		Quantity:        product.Quantity,
		OwnerUserID:     product.OwnerID,
		DateAdded:       product.CreatedAt,
		DateLastUpdated: product.UpdatedAt,
	}
}

// ImageView is the public representation of a product image.
type ImageView struct {
	ID          uuid.UUID `json:"image_id"`
	ProductID   uuid.UUID `json:"product_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"checksum"`
	StorageKey  string    `json:"storage_key"`
	DateCreated time.Time `json:"date_created"`
}

func newImageView(image *entity.Image) ImageView {
	return ImageView{
		ID:          image.ID,
		ProductID:   image.ProductID,
		FileName:    image.FileName,
		ContentType: image.ContentType,
		Size:        image.Size,
		Checksum:    image.Checksum,
		StorageKey:  image.StorageKey,
		DateCreated: image.CreatedAt,
	}
}
