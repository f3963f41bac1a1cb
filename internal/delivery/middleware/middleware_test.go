package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is kept", incoming: "trace-abc-123", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters are replaced", incoming: "bad\x00id"},
		{name: "spaces are replaced", incoming: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.incoming}
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())
				assert.NotNil(t, deliverycontext.Logger(c.Request().Context(), nil))

				return nil
			})(c)

			require.NoError(t, err)
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.RequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware_LogsQueryKeysOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/verify?email=a@x.com&token=3f1c2b9e-8a4d-4f7e-9c1a-2b3d4e5f6a7b", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "query_keys")
	assert.Contains(t, out, "token")
	assert.NotContains(t, out, "3f1c2b9e-8a4d-4f7e-9c1a-2b3d4e5f6a7b")
	assert.NotContains(t, out, "a@x.com")
}

func TestLoggerMiddleware_LogsFinalErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := m.Handle(func(echo.Context) error {
		return echo.ErrNotFound
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "level=WARN")
}
