package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(dummyPassword).Return("$2a$10$dummy", nil).Once()

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func basicHeader(principal, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(principal+":"+secret))
}

func newStoredUser(verified bool) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: "$2a$10$stored",
		FirstName:    "Ada",
		LastName:     "Lovelace",
	}
	if verified {
		user.EmailVerified = true
	} else {
		user.IssueVerificationToken(uuid.NewString(), fixedNow)
	}

	return user
}

func TestParseBasicCredentials(t *testing.T) {
	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name          string
		header        string
		wantPrincipal string
		wantSecret    string
		wantErr       error
	}{
		{name: "missing", header: "", wantErr: domainerrors.ErrCredentialsMissing},
		{name: "blank", header: "   ", wantErr: domainerrors.ErrCredentialsMissing},
		{name: "bearer scheme", header: "Bearer abc.def", wantErr: domainerrors.ErrUnsupportedAuthScheme},
		{name: "scheme only", header: "Basic", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "not base64", header: "Basic !!!", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "no separator", header: "Basic " + encode("a@x.com"), wantErr: domainerrors.ErrMalformedCredentials},
		{name: "empty principal", header: "Basic " + encode(":secret"), wantErr: domainerrors.ErrMalformedCredentials},
		{name: "valid", header: "Basic " + encode("a@x.com:secret"), wantPrincipal: "a@x.com", wantSecret: "secret"},
		{name: "case insensitive scheme", header: "bAsIc " + encode("a@x.com:secret"), wantPrincipal: "a@x.com", wantSecret: "secret"},
		{name: "secret keeps later colons", header: "Basic " + encode("a@x.com:pa:ss:word"), wantPrincipal: "a@x.com", wantSecret: "pa:ss:word"},
		{name: "empty secret", header: "Basic " + encode("a@x.com:"), wantPrincipal: "a@x.com", wantSecret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, secret, err := parseBasicCredentials(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrincipal, principal)
			assert.Equal(t, tt.wantSecret, secret)
		})
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	stored := newStoredUser(true)

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(true)

	principal, err := fx.service.Authenticate(ctx, basicHeader("A@X.com", "secret"))
	require.NoError(t, err)

	assert.Equal(t, stored.ID, principal.ID)
	assert.Empty(t, principal.PasswordHash)
	assert.Equal(t, "$2a$10$stored", stored.PasswordHash, "stored user must not be mutated")
}

func TestAuthService_Authenticate_UnverifiedIsDistinct(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(newStoredUser(false), nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(true)

	_, err := fx.service.Authenticate(ctx, basicHeader("a@x.com", "secret"))

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnverifiedWithWrongPasswordIsInvalid(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(newStoredUser(false), nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$stored").Return(false)

	_, err := fx.service.Authenticate(ctx, basicHeader("a@x.com", "wrong"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Check("secret", "$2a$10$dummy").Return(false).Twice()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(newStoredUser(true), nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(false)

	_, unknownErr := fx.service.Authenticate(ctx, basicHeader("ghost@x.com", "secret"))
	_, unknownAgainErr := fx.service.Authenticate(ctx, basicHeader("ghost@x.com", "secret"))
	_, wrongErr := fx.service.Authenticate(ctx, basicHeader("a@x.com", "secret"))

	assert.Equal(t, domainerrors.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, unknownAgainErr)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestNewAuthService_TimingHashFallback(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("entropy exhausted")).Once()

	srv := NewAuthService(AuthServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: newDiscardLogger()})

	userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Check("secret", fallbackTimingHash).Return(false).Once()

	_, err := srv.Authenticate(ctx, basicHeader("ghost@x.com", "secret"))

	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestFallbackTimingHash_IsRealBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(fallbackTimingHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// A parse failure would return early and defeat the timing match.
	assert.ErrorIs(t, bcrypt.CompareHashAndPassword([]byte(fallbackTimingHash), []byte("secret")), bcrypt.ErrMismatchedHashAndPassword)
}

func TestAuthService_Authenticate_MalformedSkipsLookup(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Authenticate(context.Background(), "Basic not-base64!")

	assert.ErrorIs(t, err, domainerrors.ErrMalformedCredentials)
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Authenticate(ctx, basicHeader("a@x.com", "secret"))

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "infrastructure failures are not credential errors")
}
