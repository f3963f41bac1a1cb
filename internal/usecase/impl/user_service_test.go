package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      *userService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	verification *mockUsecase.MockVerificationUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	verification := mockUsecase.NewMockVerificationUsecase(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		Verification: verification,
		Logger:       newDiscardLogger(),
	}).(*userService)
	srv.now = fixedClock(fixedNow)

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		verification: verification,
	}
}

func issueRun(user *entity.User) {
	user.IssueVerificationToken(uuid.NewString(), fixedNow)
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123!").Return("$2a$10$hash", nil)
	fx.verification.EXPECT().Issue(mock.Anything).Run(issueRun)
	fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "jane@example.com" && u.PasswordHash == "$2a$10$hash" && u.HasPendingVerification()
	})).Return(nil)
	fx.verification.EXPECT().Announce(ctx, mock.Anything).Return(nil)

	user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
		Email:     "  Jane@Example.com ",
		Password:  "Secret123!",
		FirstName: " Jane ",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane", user.FirstName)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.Equal(t, fixedNow, user.UpdatedAt)
}

func TestUserService_CreateUser_AnnounceFailureIsTolerated(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
	fx.verification.EXPECT().Issue(mock.Anything).Run(issueRun)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.verification.EXPECT().Announce(ctx, mock.Anything).Return(errors.New("broker down"))

	user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Email: "a@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Email: "A@x.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
		fx.verification.EXPECT().Issue(mock.Anything).Run(issueRun)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

		_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Email: "a@x.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("password length exceeds 72 bytes"))

	_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_UpdateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	principal := &entity.User{ID: uuid.New()}
	stored := &entity.User{ID: principal.ID, Email: "a@x.com", FirstName: "Old", LastName: "Name", PasswordHash: "old"}
	first := "New"
	password := "N3wSecret!"

	fx.userRepo.EXPECT().FindByID(ctx, principal.ID).Return(stored, nil)
	fx.hasher.EXPECT().Hash(password).Return("new-hash", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.FirstName == "New" && u.LastName == "Name" && u.PasswordHash == "new-hash" && u.UpdatedAt.Equal(fixedNow)
	})).Return(nil)

	err := fx.service.UpdateUser(ctx, principal, usecase.UpdateUserInput{FirstName: &first, Password: &password})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	principal := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, principal.ID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.UpdateUser(ctx, principal, usecase.UpdateUserInput{})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	principal := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, principal.ID).Return(&entity.User{ID: principal.ID}, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("connection reset"))

	err := fx.service.UpdateUser(ctx, principal, usecase.UpdateUserInput{})

	assert.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}
