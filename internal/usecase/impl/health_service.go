package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

type healthService struct {
	healthRepo repository.HealthCheckRepository
	logger     *slog.Logger
	now        func() time.Time
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	HealthRepo repository.HealthCheckRepository
	Logger     *slog.Logger
}

// NewHealthService creates a new health service instance
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		healthRepo: params.HealthRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// Probe writes one health check row. Every failure, transient or not, is
// reported as the same unavailability error and never retried here.
func (srv *healthService) Probe(ctx context.Context) error {
	if err := srv.healthRepo.Record(ctx, srv.now()); err != nil {
		deliverycontext.Logger(ctx, srv.logger).Warn("Liveness probe write failed", slog.Any("error", err))

		return domainerrors.ErrServiceUnavailable
	}

	return nil
}
