package handler

import (
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// Probe answers 200 when a database write succeeds and 503 otherwise, both
// without a body. Method and shape checks run as route middleware.
func (h *HealthHandler) Probe(c echo.Context) error {
	if err := h.healthUC.Probe(c.Request().Context()); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
