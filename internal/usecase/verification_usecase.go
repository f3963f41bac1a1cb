package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// VerificationUsecase manages the single-use email verification token.
type VerificationUsecase interface {
	// Issue puts user into the pending state with a fresh token. It does not persist.
	Issue(user *entity.User)

	// Announce publishes the pending token of user to the notifier.
	Announce(ctx context.Context, user *entity.User) error

	// Confirm evaluates a submitted token. Invalid and expired tokens come back
	// as errors alongside the outcome; already verified is not an error.
	Confirm(ctx context.Context, email, token string) (entity.VerificationOutcome, error)

	// Resend replaces the pending token of an unverified user and announces it.
	Resend(ctx context.Context, email string) (entity.VerificationOutcome, error)
}
