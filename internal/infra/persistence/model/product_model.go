package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerUserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	SKU          string    `gorm:"column:sku;type:varchar(100);unique;not null"`
	Manufacturer string    `gorm:"type:varchar(255);not null"`
	Quantity     int       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Images []ProductImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	StorageKey  string    `gorm:"type:varchar(512);not null;unique"`
	ContentType string    `gorm:"type:varchar(50);not null"`
	Size        int64     `gorm:"not null"`
	Checksum    string    `gorm:"type:char(64);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
