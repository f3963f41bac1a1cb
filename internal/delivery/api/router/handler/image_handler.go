package handler

import (
	"io"
	"net/http"

	"catalog/config"
	"catalog/internal/delivery/api/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying the upload.
const imageFormField = "file"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Config  *config.Config
}

// ImageHandler holds dependencies for product image handlers.
type ImageHandler struct {
	imageUC      usecase.ImageUsecase
	maxImageSize int64
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC:      params.ImageUC,
		maxImageSize: params.Config.Storage.MaxImageSize,
	}
}

// UploadImage attaches a JPEG or PNG image to the caller's product.
func (h *ImageHandler) UploadImage(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	// One byte past the limit is enough for the use case to reject it
	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	image, err := h.imageUC.UploadImage(c.Request().Context(), user, productID, usecase.UploadImageInput{
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newImageView(image))
}

// ListImages lists a product's images.
func (h *ImageHandler) ListImages(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	images, err := h.imageUC.ListImages(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	views := make([]ImageView, 0, len(images))
	for _, image := range images {
		views = append(views, newImageView(image))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetImage returns one image of a product.
func (h *ImageHandler) GetImage(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathUUID(c, "image_id")
	if err != nil {
		return err
	}

	image, err := h.imageUC.GetImage(c.Request().Context(), productID, imageID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newImageView(image))
}

// DeleteImage removes an image from the caller's product.
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathUUID(c, "image_id")
	if err != nil {
		return err
	}

	if err := h.imageUC.DeleteImage(c.Request().Context(), user, productID, imageID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
