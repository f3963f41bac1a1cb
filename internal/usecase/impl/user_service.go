package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	verification usecase.VerificationUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Verification usecase.VerificationUsecase
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		verification: params.Verification,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateUser stores a new unverified user and announces its verification token.
// A failed announcement does not fail the creation; the user can ask for a resend.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	now := srv.now()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.SetPassword(input.Password, srv.hasher); err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	srv.verification.Issue(user)

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	if err := srv.verification.Announce(ctx, user); err != nil {
		srv.log(ctx).Warn("User created but verification event was not published",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("User created", slog.String("user_id", user.ID.String()))

	return user, nil
}

// UpdateUser applies the allowed profile changes to the principal's record.
func (srv *userService) UpdateUser(ctx context.Context, principal *entity.User, input usecase.UpdateUserInput) error {
	user, err := srv.userRepo.FindByID(ctx, principal.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Password != nil {
		if err := user.SetPassword(*input.Password, srv.hasher); err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
	}

	user.TouchUpdatedAt(srv.now())

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return nil
}
