package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/validator"
	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrForbidden, "delete product"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_DetailsOnlyForClientErrors(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrValidationFailed.WithDetails("at least one field is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "at least one field is required", body.Error.Details)

	rec, body = handleError(t, domainerrors.ErrServiceUnavailable.WithDetails("connection refused"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	rec, body := handleError(t, &validator.ValidationError{Fields: []string{"email is required"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, []any{"email is required"}, body.Error.Details)
}

func TestErrorMiddleware_EchoError(t *testing.T) {
	rec, body := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}
