package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is the body of POST and PUT. Quantity is a pointer so that
// zero stock is distinguishable from a missing field.
type ProductRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=2000"`
	SKU          string `json:"sku" validate:"required,max=64"`
	Manufacturer string `json:"manufacturer" validate:"required,max=255"`
	Quantity     *int   `json:"quantity" validate:"required,min=0,max=100"`
}

func (r ProductRequest) input() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		SKU:          r.SKU,
		Manufacturer: r.Manufacturer,
		Quantity:     *r.Quantity,
	}
}

// PatchProductRequest is the body of PATCH. Absent fields are left untouched.
type PatchProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=64"`
	Manufacturer *string `json:"manufacturer" validate:"omitempty,min=1,max=255"`
	Quantity     *int    `json:"quantity" validate:"omitempty,min=0,max=100"`
}

// CreateProduct creates a product owned by the caller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), user, req.input())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newProductView(product))
}

// GetProduct returns a product to anyone.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// ReplaceProduct overwrites every mutable field of the caller's product.
func (h *ProductHandler) ReplaceProduct(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.productUC.ReplaceProduct(c.Request().Context(), user, id, req.input()); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PatchProduct updates the supplied fields of the caller's product.
func (h *ProductHandler) PatchProduct(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req PatchProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := entity.ProductFields{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	}
	if err := h.productUC.PatchProduct(c.Request().Context(), user, id, fields); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct deletes the caller's product and its images.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), user, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
