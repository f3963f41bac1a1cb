package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// NoCache marks responses as uncacheable and not to be content-sniffed.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set(echo.HeaderXContentTypeOptions, "nosniff")

		return next(c)
	}
}

// AllowMethods answers 405 without a body for any other method, HEAD included.
func AllowMethods(methods ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		allowed[method] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[c.Request().Method]; !ok {
				return c.NoContent(http.StatusMethodNotAllowed)
			}

			return next(c)
		}
	}
}

// RequireEmptyRequest answers 400 without a body when the request carries
// query parameters, a body or a positive Content-Length.
func RequireEmptyRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isEmptyRequest(c.Request()) {
			return c.NoContent(http.StatusBadRequest)
		}

		return next(c)
	}
}

func isEmptyRequest(req *http.Request) bool {
	if req.URL.RawQuery != "" {
		return false
	}

	// ContentLength is -1 for chunked bodies of unknown size
	if req.ContentLength != 0 {
		return false
	}

	if raw := req.Header.Get(echo.HeaderContentLength); raw != "" {
		length, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || length > 0 {
			return false
		}
	}

	if req.Body != nil && req.Body != http.NoBody {
		var peek [1]byte
		if n, _ := req.Body.Read(peek[:]); n > 0 {
			return false
		}
	}

	return true
}
