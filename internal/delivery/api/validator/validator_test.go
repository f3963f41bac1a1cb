package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifyQuery struct {
	Email string `query:"email" validate:"required,email"`
	Token string `query:"token" validate:"required,uuid4"`
}

type createBody struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=100"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&verifyQuery{Email: "a@x.com", Token: "3f1c2b9e-8a4d-4f7e-9c1a-2b3d4e5f6a7b"}))

	err := v.Validate(&verifyQuery{Email: "nope", Token: "123"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email must be a valid email address", "token must be a valid UUID"}, verr.Fields)
}

func TestValidator_RangeUsesJSONName(t *testing.T) {
	v := New()
	qty := 101

	err := v.Validate(&createBody{Quantity: &qty})

	assert.EqualError(t, err, "quantity must be at most 100")
	assert.EqualError(t, v.Validate(&createBody{}), "quantity is required")
}

type passwordBody struct {
	Password    string  `json:"password" validate:"required,min=8,maxbytes=72"`
	NewPassword *string `json:"new_password" validate:"omitempty,min=8,maxbytes=72"`
}

func TestValidator_MaxBytesCountsBytesNotRunes(t *testing.T) {
	v := New()
	multibyte := strings.Repeat("é", 40) // 40 runes, 80 bytes

	require.NoError(t, v.Validate(&passwordBody{Password: strings.Repeat("a", 72)}))
	assert.EqualError(t, v.Validate(&passwordBody{Password: multibyte}), "password must be at most 72 bytes")
	assert.EqualError(t, v.Validate(&passwordBody{Password: "Secret123!", NewPassword: &multibyte}), "new_password must be at most 72 bytes")
}
