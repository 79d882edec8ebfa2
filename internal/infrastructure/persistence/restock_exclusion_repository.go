package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pharmacy/backend/internal/domain/insights"
)

// GormExclusionRepository implements ExclusionRepository using GORM
type GormExclusionRepository struct {
	db *gorm.DB
}

// NewGormExclusionRepository creates a new GormExclusionRepository
func NewGormExclusionRepository(db *gorm.DB) *GormExclusionRepository {
	return &GormExclusionRepository{db: db}
}

// Insert appends a new exclusion row. Rows are never updated or deleted.
func (r *GormExclusionRepository) Insert(ctx context.Context, exclusion *insights.RestockExclusion) error {
	return r.db.WithContext(ctx).Create(exclusion).Error
}

// ActiveProductIDs returns the set of products with at least one exclusion
// still in effect at the given instant
func (r *GormExclusionRepository) ActiveProductIDs(ctx context.Context, tenantID uuid.UUID, now time.Time) (map[uuid.UUID]struct{}, error) {
	var productIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&insights.RestockExclusion{}).
		Distinct("product_id").
		Where("tenant_id = ? AND blocked_until > ?", tenantID, now).
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, err
	}

	active := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		active[id] = struct{}{}
	}
	return active, nil
}

// Ensure GormExclusionRepository implements ExclusionRepository
var _ insights.ExclusionRepository = (*GormExclusionRepository)(nil)
