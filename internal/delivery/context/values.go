// Package context carries per-request values between the HTTP layer and the
// services: the request ID, the request-scoped logger and the authenticated
// principal.
package context

import (
	"context"
	"log/slog"

	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context keys.
const (
	echoRequestIDKey = "catalog.request_id"
	echoPrincipalKey = "catalog.principal"
)

// Attach records the request ID and logger on both the echo.Context and the
// request's context.Context, so handlers and services see the same values.
func Attach(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID of the current request, or "" before Attach ran.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request ID stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}

	return fallback
}

// SetPrincipal stores the authenticated user.
func SetPrincipal(c echo.Context, user *entity.User) {
	c.Set(echoPrincipalKey, user)
}

// Principal returns the authenticated user, if the request went through
// the authentication middleware.
func Principal(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(echoPrincipalKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}
