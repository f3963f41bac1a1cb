package middleware

import (
	"fmt"
	"net/http"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthMiddleware authenticates requests with HTTP Basic credentials.
type AuthMiddleware struct {
	authUC    usecase.AuthUsecase
	challenge string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:    params.AuthUC,
		challenge: fmt.Sprintf("Basic realm=%q", params.Config.Auth.Realm),
	}
}

// Authenticate resolves the Authorization header into a verified principal
// and stores it on the context. Unverified users are rejected here too.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authUC.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusUnauthorized {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, m.challenge)
			}

			return err
		}

		deliverycontext.SetPrincipal(c, user)

		return next(c)
	}
}
