// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hasher is the slice of the password hashing service the User entity needs.
type Hasher interface {
	Hash(password string) (string, error)
}

// User is the identity principal of the system. It authenticates with its
// email and password and owns products.
type User struct {
	ID                uuid.UUID  // Immutable once assigned.
	Email             string     // Unique, lower-cased login principal.
	PasswordHash      string     // bcrypt hash; never serialized outward.
	FirstName         string     // Given name.
	LastName          string     // Family name.
	EmailVerified     bool       // Becomes true exactly once and never reverts.
	VerificationToken *string    // Present only while a verification is pending.
	TokenCreatedAt    *time.Time // Present iff VerificationToken is present.
	CreatedAt         time.Time  // Timestamp of when this account was created.
	UpdatedAt         time.Time  // Timestamp of the last modification.
}

// NormalizeEmail trims and lower-cases an email so that lookups and the
// uniqueness constraint operate on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword replaces the stored hash with a fresh hash of plaintext.
// Empty passwords are rejected by request validation before this is reached.
func (u *User) SetPassword(plaintext string, hasher Hasher) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	u.PasswordHash = hash

	return nil
}

// TouchUpdatedAt records a modification.
func (u *User) TouchUpdatedAt(now time.Time) {
	u.UpdatedAt = now
}

// IssueVerificationToken moves the user into the pending state with a new token.
func (u *User) IssueVerificationToken(token string, issuedAt time.Time) {
	u.EmailVerified = false
	u.VerificationToken = &token
	u.TokenCreatedAt = &issuedAt
}

// HasPendingVerification reports whether a token is outstanding.
func (u *User) HasPendingVerification() bool {
	return !u.EmailVerified && u.VerificationToken != nil && u.TokenCreatedAt != nil
}

// CheckVerification evaluates a submitted token against the pending
// verification without mutating the user. The checks run in a fixed order:
// already verified, token mismatch, then expiry.
func (u *User) CheckVerification(submitted string, now time.Time, expiry time.Duration) VerificationOutcome {
	if u.EmailVerified {
		return VerificationAlreadyVerified
	}

	if !u.HasPendingVerification() {
		return VerificationInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(*u.VerificationToken), []byte(submitted)) != 1 {
		return VerificationInvalidToken
	}

	if now.Sub(*u.TokenCreatedAt) > expiry {
		return VerificationExpired
	}

	return VerificationOK
}

// MarkVerified completes the verification and clears the token pair.
func (u *User) MarkVerified(now time.Time) {
	u.EmailVerified = true
	u.VerificationToken = nil
	u.TokenCreatedAt = nil
	u.UpdatedAt = now
}

// WithoutSecrets returns a copy of the user with the password hash and the
// pending token removed. It is what the authenticator hands to handlers.
func (u *User) WithoutSecrets() *User {
	clone := *u
	clone.PasswordHash = ""
	clone.VerificationToken = nil
	clone.TokenCreatedAt = nil

	return &clone
}
