// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	basicScheme = "Basic"

	// dummyPassword feeds a throwaway hash so unknown principals cost one bcrypt comparison too.
	dummyPassword = "catalog-timing-equalizer"

	// fallbackTimingHash is a well-formed cost-10 bcrypt hash used when the
	// hasher cannot produce one at startup.
	fallbackTimingHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger

	// timingHash is checked against for unknown emails.
	timingHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	timingHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		params.Logger.Warn("Failed to prepare timing hash, using the built-in one", slog.Any("error", err))
		timingHash = fallbackTimingHash
	}

	return &authService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
		timingHash: timingHash,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Authenticate resolves a Basic credential to a verified user.
func (srv *authService) Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	email, password, err := parseBasicCredentials(authorizationHeader)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		// Same hasher work as a wrong password, so timing does not reveal unknown emails.
		srv.hasher.Check(password, srv.timingHash)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up credentials", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	return user.WithoutSecrets(), nil
}

// parseBasicCredentials splits "Basic base64(principal:secret)". The secret
// may itself contain ':' so only the first separator counts.
func parseBasicCredentials(header string) (principal, secret string, err error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "", domainerrors.ErrCredentialsMissing
	}

	scheme, payload, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, basicScheme) {
		return "", "", domainerrors.ErrUnsupportedAuthScheme
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", "", domainerrors.ErrMalformedCredentials
	}

	decoded, decodeErr := base64.StdEncoding.DecodeString(payload)
	if decodeErr != nil {
		return "", "", domainerrors.ErrMalformedCredentials
	}

	principal, secret, found := strings.Cut(string(decoded), ":")
	if !found || principal == "" {
		return "", "", domainerrors.ErrMalformedCredentials
	}

	return principal, secret, nil
}
