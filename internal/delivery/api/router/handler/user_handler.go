// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC         usecase.UserUsecase
	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC         usecase.UserUsecase
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:         params.UserUC,
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// CreateUserRequest is the body of POST /v1/user.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,maxbytes=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// UpdateUserRequest is the body of PUT /v1/user/self. Only these fields may change.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Password  *string `json:"password" validate:"omitempty,min=8,maxbytes=72"`
}

// ResendVerificationRequest is the body of POST /v1/user/verification.
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateUser registers a new, unverified user.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newUserView(user))
}

// GetSelf returns the authenticated user.
func (h *UserHandler) GetSelf(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// UpdateSelf changes the authenticated user's names or password.
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if err := h.userUC.UpdateUser(c.Request().Context(), user, input); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ResendVerification issues a new verification token for an unverified user.
func (h *UserHandler) ResendVerification(c echo.Context) error {
	var req ResendVerificationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	outcome, err := h.verificationUC.Resend(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	if outcome == entity.VerificationAlreadyVerified {
		return response.Message(c, http.StatusOK, "Email address is already verified")
	}

	return response.Message(c, http.StatusAccepted, "Verification email queued")
}
