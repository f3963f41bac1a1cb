package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testExpiry = 60 * time.Second

type verificationServiceFixtures struct {
	service   *verificationService
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := newVerificationService(userRepo, publisher, VerificationConfig{Expiry: testExpiry}, newDiscardLogger())
	srv.now = fixedClock(fixedNow)

	return verificationServiceFixtures{
		service:   srv,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func pendingUser(token string, issuedAt time.Time) *entity.User {
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}
	user.IssueVerificationToken(token, issuedAt)

	return user
}

func TestVerificationService_Issue(t *testing.T) {
	fx := createTestVerificationService(t)
	fx.service.newToken = func() string { return "fresh" }
	user := &entity.User{ID: uuid.New()}

	fx.service.Issue(user)

	require.True(t, user.HasPendingVerification())
	assert.Equal(t, "fresh", *user.VerificationToken)
	assert.Equal(t, fixedNow, *user.TokenCreatedAt)
}

func TestVerificationService_Issue_DefaultTokenIsUUIDv4(t *testing.T) {
	srv := newVerificationService(nil, nil, VerificationConfig{Expiry: testExpiry}, newDiscardLogger())
	user := &entity.User{}

	srv.Issue(user)

	parsed, err := uuid.Parse(*user.VerificationToken)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestVerificationService_Confirm_Success(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	token := uuid.NewString()
	user := pendingUser(token, fixedNow.Add(-10*time.Second))

	fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
	fx.userRepo.EXPECT().ConfirmVerification(ctx, user.ID, token, fixedNow).Return(true, nil)

	outcome, err := fx.service.Confirm(ctx, " A@x.com ", token)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationOK, outcome)
}

func TestVerificationService_Confirm_ExpiryBoundary(t *testing.T) {
	token := uuid.NewString()

	t.Run("59 seconds confirms", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser(token, fixedNow.Add(-59*time.Second))

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
		fx.userRepo.EXPECT().ConfirmVerification(ctx, user.ID, token, fixedNow).Return(true, nil)

		outcome, err := fx.service.Confirm(ctx, "a@x.com", token)
		require.NoError(t, err)
		assert.Equal(t, entity.VerificationOK, outcome)
	})

	t.Run("61 seconds is expired", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser(token, fixedNow.Add(-61*time.Second))

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)

		outcome, err := fx.service.Confirm(ctx, "a@x.com", token)
		assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenExpired)
		assert.Equal(t, entity.VerificationExpired, outcome)
	})
}

func TestVerificationService_Confirm_WrongToken(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	user := pendingUser(uuid.NewString(), fixedNow)

	fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)

	outcome, err := fx.service.Confirm(ctx, "a@x.com", uuid.NewString())

	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)
	assert.Equal(t, entity.VerificationInvalidToken, outcome)
}

func TestVerificationService_Confirm_AlreadyVerifiedIsNoop(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", EmailVerified: true}

	fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)

	outcome, err := fx.service.Confirm(ctx, "a@x.com", uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationAlreadyVerified, outcome)
}

func TestVerificationService_Confirm_MalformedTokenSkipsLookup(t *testing.T) {
	fx := createTestVerificationService(t)

	outcome, err := fx.service.Confirm(context.Background(), "a@x.com", "not-a-uuid")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, entity.VerificationInvalidToken, outcome)
}

func TestVerificationService_Confirm_UnknownUser(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Confirm(ctx, "nobody@x.com", uuid.NewString())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestVerificationService_Confirm_LostRace(t *testing.T) {
	token := uuid.NewString()

	t.Run("other request verified first", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser(token, fixedNow)
		verified := &entity.User{ID: user.ID, Email: user.Email, EmailVerified: true}

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil).Once()
		fx.userRepo.EXPECT().ConfirmVerification(ctx, user.ID, token, fixedNow).Return(false, nil)
		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(verified, nil).Once()

		outcome, err := fx.service.Confirm(ctx, "a@x.com", token)
		require.NoError(t, err)
		assert.Equal(t, entity.VerificationAlreadyVerified, outcome)
	})

	t.Run("token replaced meanwhile", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser(token, fixedNow)
		reissued := pendingUser(uuid.NewString(), fixedNow)

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil).Once()
		fx.userRepo.EXPECT().ConfirmVerification(ctx, user.ID, token, fixedNow).Return(false, nil)
		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(reissued, nil).Once()

		outcome, err := fx.service.Confirm(ctx, "a@x.com", token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)
		assert.Equal(t, entity.VerificationInvalidToken, outcome)
	})
}

func TestVerificationService_Confirm_StoreFailure(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	token := uuid.NewString()
	user := pendingUser(token, fixedNow)

	fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
	fx.userRepo.EXPECT().ConfirmVerification(ctx, user.ID, token, fixedNow).Return(false, errors.New("deadlock"))

	_, err := fx.service.Confirm(ctx, "a@x.com", token)

	assert.ErrorContains(t, err, "deadlock")
}

// casUserRepo keeps one user and implements ConfirmVerification as a compare-and-swap.
type casUserRepo struct {
	repository.UserRepository

	mu   sync.Mutex
	user entity.User
}

func (r *casUserRepo) FindByEmailFromPrimary(_ context.Context, _ string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := r.user

	return &clone, nil
}

func (r *casUserRepo) ConfirmVerification(_ context.Context, _ uuid.UUID, token string, verifiedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.user.EmailVerified || r.user.VerificationToken == nil || *r.user.VerificationToken != token {
		return false, nil
	}
	r.user.MarkVerified(verifiedAt)

	return true, nil
}

func TestVerificationService_Confirm_ConcurrentAtMostOnce(t *testing.T) {
	token := uuid.NewString()
	repo := &casUserRepo{user: *pendingUser(token, fixedNow)}
	srv := newVerificationService(repo, nil, VerificationConfig{Expiry: testExpiry}, newDiscardLogger())
	srv.now = fixedClock(fixedNow)

	const workers = 16
	outcomes := make(chan entity.VerificationOutcome, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := srv.Confirm(context.Background(), "a@x.com", token)
			assert.NoError(t, err)
			outcomes <- outcome
		}()
	}
	wg.Wait()
	close(outcomes)

	counts := map[entity.VerificationOutcome]int{}
	for outcome := range outcomes {
		counts[outcome]++
	}

	assert.Equal(t, 1, counts[entity.VerificationOK])
	assert.Equal(t, workers-1, counts[entity.VerificationAlreadyVerified])

	// A replay after the fact is a no-op.
	outcome, err := srv.Confirm(context.Background(), "a@x.com", token)
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationAlreadyVerified, outcome)
}

func TestVerificationService_Announce(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	user := pendingUser("tok", fixedNow)

	fx.publisher.EXPECT().
		PublishVerificationEvent(ctx, mock.AnythingOfType("*service.VerificationEvent")).
		Run(func(_ context.Context, event *service.VerificationEvent) {
			assert.Equal(t, "req-42", event.RequestID)
			assert.Equal(t, user.ID.String(), event.UserID)
			assert.Equal(t, "a@x.com", event.Email)
			assert.Equal(t, "tok", event.Token)
			assert.Equal(t, fixedNow, event.IssuedAt)
		}).
		Return(nil)

	require.NoError(t, fx.service.Announce(ctx, user))
}

func TestVerificationService_Announce_RequiresPendingToken(t *testing.T) {
	fx := createTestVerificationService(t)

	err := fx.service.Announce(context.Background(), &entity.User{EmailVerified: true})

	assert.Error(t, err)
}

func TestVerificationService_Resend(t *testing.T) {
	t.Run("replaces and announces", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.service.newToken = func() string { return "new-token" }
		ctx := context.Background()
		user := pendingUser("old-token", fixedNow.Add(-time.Hour))

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
		fx.userRepo.EXPECT().ReplaceVerificationToken(ctx, user.ID, "new-token", fixedNow).Return(true, nil)
		fx.publisher.EXPECT().
			PublishVerificationEvent(ctx, mock.MatchedBy(func(e *service.VerificationEvent) bool {
				return e.Token == "new-token"
			})).
			Return(nil)

		outcome, err := fx.service.Resend(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, entity.VerificationOK, outcome)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").
			Return(&entity.User{ID: uuid.New(), EmailVerified: true}, nil)

		outcome, err := fx.service.Resend(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, entity.VerificationAlreadyVerified, outcome)
	})

	t.Run("verified between read and write", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser("old", fixedNow)

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
		fx.userRepo.EXPECT().ReplaceVerificationToken(ctx, user.ID, mock.Anything, fixedNow).Return(false, nil)

		outcome, err := fx.service.Resend(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, entity.VerificationAlreadyVerified, outcome)
	})

	t.Run("publisher down", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		user := pendingUser("old", fixedNow)

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(user, nil)
		fx.userRepo.EXPECT().ReplaceVerificationToken(ctx, user.ID, mock.Anything, fixedNow).Return(true, nil)
		fx.publisher.EXPECT().PublishVerificationEvent(ctx, mock.Anything).Return(errors.New("unavailable"))

		_, err := fx.service.Resend(ctx, "a@x.com")
		assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmailFromPrimary(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Resend(ctx, "a@x.com")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
