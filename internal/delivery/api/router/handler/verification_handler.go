package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
}

// VerificationHandler serves the email confirmation link.
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler.
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{verificationUC: params.VerificationUC}
}

// VerifyQuery holds the query parameters of GET /v1/verify. The token must be
// shaped like the issued UUIDv4 before any lookup happens.
type VerifyQuery struct {
	Email string `query:"email" validate:"required,email"`
	Token string `query:"token" validate:"required,uuid4"`
}

// Verify confirms an email address with the emailed token.
func (h *VerificationHandler) Verify(c echo.Context) error {
	var query VerifyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return err
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	outcome, err := h.verificationUC.Confirm(c.Request().Context(), query.Email, query.Token)
	if err != nil {
		return err
	}

	if outcome == entity.VerificationAlreadyVerified {
		return response.Message(c, http.StatusOK, "Email address is already verified")
	}

	return response.Message(c, http.StatusOK, "Email address verified")
}
