package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserInput carries the profile fields a user may change. Nil means unchanged.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// CreateUser stores a new unverified user and announces its verification token.
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)

	// UpdateUser applies input to the principal's own record.
	UpdateUser(ctx context.Context, principal *entity.User, input UpdateUserInput) error
}
