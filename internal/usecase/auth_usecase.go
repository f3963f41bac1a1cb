// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// AuthUsecase turns a transport credential into an authenticated principal.
type AuthUsecase interface {
	// Authenticate decodes an Authorization header value and returns the
	// verified user without secrets. It never mutates the stored user.
	Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
