package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type healthCheckRepository struct {
	db *gorm.DB
}

// NewHealthCheckRepository is the constructor for healthCheckRepository.
func NewHealthCheckRepository(db *gorm.DB) repository.HealthCheckRepository {
	return &healthCheckRepository{db: db}
}

// Record inserts one audit row through the primary; a replica cannot prove the write path.
func (repo *healthCheckRepository) Record(ctx context.Context, checkedAt time.Time) error {
	row := &model.HealthCheckModel{CheckedAt: checkedAt.UTC()}

	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to record health check")
	}

	return nil
}
