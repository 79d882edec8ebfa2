package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pharmacy/backend/internal/domain/insights"
)

// GormClassificationRepository implements ClassificationRepository using GORM
type GormClassificationRepository struct {
	db *gorm.DB
}

// NewGormClassificationRepository creates a new GormClassificationRepository
func NewGormClassificationRepository(db *gorm.DB) *GormClassificationRepository {
	return &GormClassificationRepository{db: db}
}

// Upsert inserts or fully replaces the classification row of a product
func (r *GormClassificationRepository) Upsert(ctx context.Context, classification *insights.ProductClassification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"classification", "participation_pct", "accumulated_pct",
				"total_sold_amount", "total_sold_quantity", "turnover_rate",
				"average_stock", "last_calculated", "updated_at",
			}),
		}).
		Create(classification).Error
}

// FindForTenant returns classification rows ordered by participation
// descending, optionally filtered to one class
func (r *GormClassificationRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID, class *insights.Class) ([]insights.ProductClassification, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("participation_pct DESC")
	if class != nil {
		query = query.Where("classification = ?", *class)
	}

	var rows []insights.ProductClassification
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ClassByProduct returns the persisted class per product for a tenant
func (r *GormClassificationRepository) ClassByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]insights.Class, error) {
	var results []struct {
		ProductID      uuid.UUID      `gorm:"column:product_id"`
		Classification insights.Class `gorm:"column:classification"`
	}
	if err := r.db.WithContext(ctx).
		Model(&insights.ProductClassification{}).
		Select("product_id, classification").
		Where("tenant_id = ?", tenantID).
		Scan(&results).Error; err != nil {
		return nil, err
	}

	classes := make(map[uuid.UUID]insights.Class, len(results))
	for _, row := range results {
		classes[row.ProductID] = row.Classification
	}
	return classes, nil
}

// Ensure GormClassificationRepository implements ClassificationRepository
var _ insights.ClassificationRepository = (*GormClassificationRepository)(nil)
