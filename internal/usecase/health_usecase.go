package usecase

import "context"

// HealthUsecase proves the service can write to its database.
type HealthUsecase interface {
	// Probe performs one minimal write. Any failure means unavailable.
	Probe(ctx context.Context) error
}
