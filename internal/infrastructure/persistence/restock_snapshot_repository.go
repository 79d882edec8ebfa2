package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pharmacy/backend/internal/domain/insights"
)

// GormSnapshotRepository implements SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// InsertBatch appends one snapshot row per shopping list line
func (r *GormSnapshotRepository) InsertBatch(ctx context.Context, snapshots []insights.RestockSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&snapshots).Error
}

// Ensure GormSnapshotRepository implements SnapshotRepository
var _ insights.SnapshotRepository = (*GormSnapshotRepository)(nil)
