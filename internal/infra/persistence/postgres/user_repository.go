// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByEmail retrieves a single user by their normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "email = ?", email)
}

// FindByEmailFromPrimary is FindByEmail pinned to the primary, for reads
// that decide a write and must not observe replica lag.
func (repo *userRepository) FindByEmailFromPrimary(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "email = ?", email)
}

func (repo *userRepository) findOne(db *gorm.DB, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := db.Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its pending verification fields.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("user violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists the profile fields, the password hash and the update timestamp.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"password_hash": user.PasswordHash,
			"updated_at":    user.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ReplaceVerificationToken stores a new pending token for a user that is still unverified.
func (repo *userRepository) ReplaceVerificationToken(ctx context.Context, id uuid.UUID, token string, issuedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("id = ? AND email_verified = ?", id, false).
		Updates(map[string]any{
			"verification_token": token,
			"token_created_at":   issuedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to replace verification token")
	}

	return result.RowsAffected == 1, nil
}

// ConfirmVerification flips the user to verified only while the stored token
// still equals token, so concurrent confirmations succeed at most once.
func (repo *userRepository) ConfirmVerification(ctx context.Context, id uuid.UUID, token string, verifiedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("id = ? AND email_verified = ? AND verification_token = ?", id, false, token).
		Updates(map[string]any{
			"email_verified":     true,
			"verification_token": nil,
			"token_created_at":   nil,
			"updated_at":         verifiedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to confirm verification")
	}

	return result.RowsAffected == 1, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		EmailVerified:     data.EmailVerified,
		VerificationToken: data.VerificationToken,
		TokenCreatedAt:    data.TokenCreatedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		EmailVerified:     data.EmailVerified,
		VerificationToken: data.VerificationToken,
		TokenCreatedAt:    data.TokenCreatedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
