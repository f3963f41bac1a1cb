package impl

import (
	"context"
	"log/slog"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
	"catalog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerificationConfig carries the token lifetime.
type VerificationConfig struct {
	Expiry time.Duration
}

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	expiry    time.Duration
	logger    *slog.Logger

	now      func() time.Time
	newToken func() string
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	cfg := VerificationConfig{}
	if params.Config != nil && params.Config.Auth != nil {
		cfg.Expiry = params.Config.Auth.VerificationExpiry
	}

	params.Logger.Info("Verification tokens configured", slog.String("expiry", util.FormatDuration(cfg.Expiry)))

	return newVerificationService(params.UserRepo, params.Publisher, cfg, params.Logger)
}

func newVerificationService(
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	cfg VerificationConfig,
	logger *slog.Logger,
) *verificationService {
	return &verificationService{
		userRepo:  userRepo,
		publisher: publisher,
		expiry:    cfg.Expiry,
		logger:    logger,
		now:       time.Now,
		newToken:  uuid.NewString,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Issue puts user into the pending state with a fresh token.
func (srv *verificationService) Issue(user *entity.User) {
	user.IssueVerificationToken(srv.newToken(), srv.now())
}

// Announce publishes the pending token of user.
func (srv *verificationService) Announce(ctx context.Context, user *entity.User) error {
	if !user.HasPendingVerification() {
		return errors.New("user has no pending verification")
	}

	event := &service.VerificationEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Token:     *user.VerificationToken,
		IssuedAt:  *user.TokenCreatedAt,
	}

	if err := srv.publisher.PublishVerificationEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish verification event")
	}

	return nil
}

// Confirm checks the submitted token and performs the one-time transition
// with a conditional write, so concurrent confirmations succeed at most once.
func (srv *verificationService) Confirm(ctx context.Context, email, token string) (entity.VerificationOutcome, error) {
	if _, err := uuid.Parse(token); err != nil {
		return entity.VerificationInvalidToken, domainerrors.ErrValidationFailed.WithDetails("token is not a valid identifier")
	}

	user, err := srv.findUser(ctx, email)
	if err != nil {
		return entity.VerificationInvalidToken, err
	}

	now := srv.now()
	outcome := user.CheckVerification(token, now, srv.expiry)

	switch outcome {
	case entity.VerificationAlreadyVerified:
		return outcome, nil
	case entity.VerificationInvalidToken:
		return outcome, domainerrors.ErrInvalidVerificationToken
	case entity.VerificationExpired:
		return outcome, domainerrors.ErrVerificationTokenExpired
	case entity.VerificationOK:
	}

	confirmed, err := srv.userRepo.ConfirmVerification(ctx, user.ID, token, now)
	if err != nil {
		return entity.VerificationInvalidToken, errors.Wrap(err, "failed to confirm verification")
	}

	if !confirmed {
		// Lost a race: either another request verified first or the token was replaced.
		return srv.resolveLostRace(ctx, email)
	}

	srv.log(ctx).Info("Email verified", slog.String("user_id", user.ID.String()))

	return entity.VerificationOK, nil
}

func (srv *verificationService) resolveLostRace(ctx context.Context, email string) (entity.VerificationOutcome, error) {
	current, err := srv.findUser(ctx, email)
	if err != nil {
		return entity.VerificationInvalidToken, err
	}

	if current.EmailVerified {
		return entity.VerificationAlreadyVerified, nil
	}

	return entity.VerificationInvalidToken, domainerrors.ErrInvalidVerificationToken
}

// Resend replaces the pending token of an unverified user and announces it.
func (srv *verificationService) Resend(ctx context.Context, email string) (entity.VerificationOutcome, error) {
	user, err := srv.findUser(ctx, email)
	if err != nil {
		return entity.VerificationInvalidToken, err
	}

	if user.EmailVerified {
		return entity.VerificationAlreadyVerified, nil
	}

	token, issuedAt := srv.newToken(), srv.now()

	replaced, err := srv.userRepo.ReplaceVerificationToken(ctx, user.ID, token, issuedAt)
	if err != nil {
		return entity.VerificationInvalidToken, errors.Wrap(err, "failed to replace verification token")
	}
	if !replaced {
		return entity.VerificationAlreadyVerified, nil
	}

	user.IssueVerificationToken(token, issuedAt)

	if err := srv.Announce(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to announce verification token", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return entity.VerificationInvalidToken, domainerrors.ErrServiceUnavailable.WrapMessage("verification email could not be queued")
	}

	return entity.VerificationOK, nil
}

func (srv *verificationService) findUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmailFromPrimary(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}
