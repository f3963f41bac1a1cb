package handler

import (
	"encoding/json"
	"io"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindJSON decodes a JSON body strictly: unknown fields and trailing data are
// rejected so that read-only fields such as email or owner_user_id cannot be smuggled in.
func bindJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		return domainerrors.ErrValidationFailed.WithDetails("invalid request body: " + err.Error())
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return domainerrors.ErrValidationFailed.WithDetails("request body must contain a single JSON object")
	}

	return nil
}

// principal returns the authenticated user or the missing-credentials error.
func principal(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.Principal(c)
	if !ok {
		return nil, domainerrors.ErrCredentialsMissing
	}

	return user, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}
