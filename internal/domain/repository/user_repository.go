// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailFromPrimary is FindByEmail guaranteed to read the primary.
	// Verification decisions use it so replica lag cannot hide a fresh token.
	FindByEmailFromPrimary(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, including its pending verification fields.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the profile fields, the password hash and the update
	// timestamp. Verification fields are never written here.
	Update(ctx context.Context, user *entity.User) error

	// ReplaceVerificationToken stores a new pending token for a user that is
	// still unverified. It reports false when the user was verified meanwhile.
	ReplaceVerificationToken(ctx context.Context, id uuid.UUID, token string, issuedAt time.Time) (bool, error)

	// ConfirmVerification marks the user verified and clears the token pair,
	// but only while the stored token still equals token. It reports whether
	// this call performed the transition.
	ConfirmVerification(ctx context.Context, id uuid.UUID, token string, verifiedAt time.Time) (bool, error)
}
