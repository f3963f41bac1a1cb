package repository

import (
	"context"
	"time"
)

// HealthCheckRepository records liveness probes. Each call is a real write
// against the primary database.
type HealthCheckRepository interface {
	Record(ctx context.Context, checkedAt time.Time) error
}
