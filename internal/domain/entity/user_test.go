package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHasher struct {
	hash string
	err  error
}

func (h stubHasher) Hash(string) (string, error) {
	return h.hash, h.err
}

func newPendingUser(token string, issuedAt time.Time) *User {
	u := &User{ID: uuid.New(), Email: "a@x.com"}
	u.IssueVerificationToken(token, issuedAt)

	return u
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUser_SetPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("Secret123!", stubHasher{hash: "$2a$10$hash"}))
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)

	u = &User{PasswordHash: "old"}
	err := u.SetPassword("Secret123!", stubHasher{err: errors.New("boom")})
	assert.Error(t, err)
	assert.Equal(t, "old", u.PasswordHash)
}

func TestUser_IssueVerificationToken_KeepsPairConsistent(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u := newPendingUser("tok", issuedAt)

	assert.False(t, u.EmailVerified)
	require.NotNil(t, u.VerificationToken)
	require.NotNil(t, u.TokenCreatedAt)
	assert.Equal(t, "tok", *u.VerificationToken)
	assert.Equal(t, issuedAt, *u.TokenCreatedAt)
	assert.True(t, u.HasPendingVerification())
}

func TestUser_CheckVerification(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expiry := 60 * time.Second

	tests := []struct {
		name      string
		user      func() *User
		submitted string
		at        time.Time
		want      VerificationOutcome
	}{
		{
			name:      "fresh matching token",
			user:      func() *User { return newPendingUser("tok", issuedAt) },
			submitted: "tok",
			at:        issuedAt.Add(10 * time.Second),
			want:      VerificationOK,
		},
		{
			name:      "59 seconds is inside the window",
			user:      func() *User { return newPendingUser("tok", issuedAt) },
			submitted: "tok",
			at:        issuedAt.Add(59 * time.Second),
			want:      VerificationOK,
		},
		{
			name:      "exactly the window is not expired",
			user:      func() *User { return newPendingUser("tok", issuedAt) },
			submitted: "tok",
			at:        issuedAt.Add(60 * time.Second),
			want:      VerificationOK,
		},
		{
			name:      "61 seconds is expired",
			user:      func() *User { return newPendingUser("tok", issuedAt) },
			submitted: "tok",
			at:        issuedAt.Add(61 * time.Second),
			want:      VerificationExpired,
		},
		{
			name:      "mismatch is checked before expiry",
			user:      func() *User { return newPendingUser("tok", issuedAt) },
			submitted: "other",
			at:        issuedAt.Add(time.Hour),
			want:      VerificationInvalidToken,
		},
		{
			name:      "prefix is not a match",
			user:      func() *User { return newPendingUser("token-abc", issuedAt) },
			submitted: "token",
			at:        issuedAt,
			want:      VerificationInvalidToken,
		},
		{
			name:      "no pending token",
			user:      func() *User { return &User{} },
			submitted: "tok",
			at:        issuedAt,
			want:      VerificationInvalidToken,
		},
		{
			name: "verified user wins over any token",
			user: func() *User {
				u := newPendingUser("tok", issuedAt)
				u.MarkVerified(issuedAt)

				return u
			},
			submitted: "anything",
			at:        issuedAt.Add(time.Hour),
			want:      VerificationAlreadyVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user().CheckVerification(tt.submitted, tt.at, expiry))
		})
	}
}

func TestUser_MarkVerified_ClearsToken(t *testing.T) {
	issuedAt := time.Now()
	u := newPendingUser("tok", issuedAt)

	u.MarkVerified(issuedAt.Add(time.Second))

	assert.True(t, u.EmailVerified)
	assert.Nil(t, u.VerificationToken)
	assert.Nil(t, u.TokenCreatedAt)
	assert.Equal(t, issuedAt.Add(time.Second), u.UpdatedAt)
	// the cleared token string no longer matches, but the verified state wins
	assert.Equal(t, VerificationAlreadyVerified, u.CheckVerification("tok", issuedAt, time.Minute))
}

func TestUser_WithoutSecrets(t *testing.T) {
	u := newPendingUser("tok", time.Now())
	u.PasswordHash = "hash"

	stripped := u.WithoutSecrets()

	assert.Empty(t, stripped.PasswordHash)
	assert.Nil(t, stripped.VerificationToken)
	assert.Nil(t, stripped.TokenCreatedAt)
	assert.Equal(t, "hash", u.PasswordHash, "original must not be mutated")
	assert.NotNil(t, u.VerificationToken)
}

func TestProduct_Apply(t *testing.T) {
	owner := uuid.New()
	p := &Product{OwnerID: owner, Name: "old", Quantity: 1}
	name := "new"
	qty := 0
	now := time.Now()

	p.Apply(ProductFields{Name: &name, Quantity: &qty}, now)

	assert.Equal(t, "new", p.Name)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, owner, p.OwnerIdentityID())
	assert.Equal(t, now, p.UpdatedAt)
	assert.True(t, ProductFields{}.IsEmpty())
	assert.False(t, ProductFields{Quantity: &qty}.IsEmpty())
}
