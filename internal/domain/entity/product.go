package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnedResource is anything whose mutations are gated on its owning user.
type OwnedResource interface {
	OwnerIdentityID() uuid.UUID
}

// Product is a catalog entry owned by the user who created it.
type Product struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the product.
	OwnerID      uuid.UUID // The creating user. Fixed at creation.
	Name         string
	Description  string
	SKU          string // Unique across the catalog.
	Manufacturer string
	Quantity     int // Stock on hand, 0..100.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerIdentityID implements OwnedResource.
func (p *Product) OwnerIdentityID() uuid.UUID {
	return p.OwnerID
}

// ProductFields is the mutable part of a product. Nil pointers are left untouched.
type ProductFields struct {
	Name         *string
	Description  *string
	SKU          *string
	Manufacturer *string
	Quantity     *int
}

// IsEmpty reports whether no field is set.
func (f ProductFields) IsEmpty() bool {
	return f.Name == nil && f.Description == nil && f.SKU == nil && f.Manufacturer == nil && f.Quantity == nil
}

// Apply copies the set fields onto the product. The owner is not part of
// ProductFields and therefore can never change here.
func (p *Product) Apply(fields ProductFields, now time.Time) {
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.Description != nil {
		p.Description = *fields.Description
	}
	if fields.SKU != nil {
		p.SKU = *fields.SKU
	}
	if fields.Manufacturer != nil {
		p.Manufacturer = *fields.Manufacturer
	}
	if fields.Quantity != nil {
		p.Quantity = *fields.Quantity
	}

	p.UpdatedAt = now
}
