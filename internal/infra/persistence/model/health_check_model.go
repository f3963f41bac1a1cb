package model

import "time"

// HealthCheckModel mirrors the append-only 'health_checks' table written by the liveness probe.
type HealthCheckModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CheckedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (HealthCheckModel) TableName() string {
	return "health_checks"
}
