package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pharmacy/backend/internal/domain/insights"
)

// GormSalesHistoryRepository aggregates sales order lines for the
// classification and restock analyses
type GormSalesHistoryRepository struct {
	db *gorm.DB
}

// NewGormSalesHistoryRepository creates a new GormSalesHistoryRepository
func NewGormSalesHistoryRepository(db *gorm.DB) *GormSalesHistoryRepository {
	return &GormSalesHistoryRepository{db: db}
}

// TotalsByProduct sums quantity and line amount per product over orders
// created since the given time, skipping orders in any excluded status.
// Products without matching lines are absent from the result.
func (r *GormSalesHistoryRepository) TotalsByProduct(ctx context.Context, tenantID uuid.UUID, since time.Time, excludedStatuses []string) (map[uuid.UUID]insights.ProductSalesTotals, error) {
	var results []struct {
		ProductID     uuid.UUID       `gorm:"column:product_id"`
		TotalQuantity decimal.Decimal `gorm:"column:total_quantity"`
		TotalAmount   decimal.Decimal `gorm:"column:total_amount"`
	}

	query := r.db.WithContext(ctx).
		Table("sales_order_items soi").
		Select(`soi.product_id,
			COALESCE(SUM(soi.quantity), 0) as total_quantity,
			COALESCE(SUM(soi.amount), 0) as total_amount`).
		Joins("JOIN sales_orders so ON so.id = soi.order_id").
		Where("so.tenant_id = ? AND so.created_at >= ?", tenantID, since)
	if len(excludedStatuses) > 0 {
		query = query.Where("so.status NOT IN ?", excludedStatuses)
	}

	if err := query.Group("soi.product_id").Scan(&results).Error; err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]insights.ProductSalesTotals, len(results))
	for _, row := range results {
		totals[row.ProductID] = insights.ProductSalesTotals{
			Quantity: row.TotalQuantity,
			Value:    row.TotalAmount,
		}
	}
	return totals, nil
}

// Ensure GormSalesHistoryRepository implements SalesHistoryRepository
var _ insights.SalesHistoryRepository = (*GormSalesHistoryRepository)(nil)
