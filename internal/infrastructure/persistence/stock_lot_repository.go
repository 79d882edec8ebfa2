package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pharmacy/backend/internal/domain/inventory"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// GormStockLotRepository implements StockLotRepository using GORM
type GormStockLotRepository struct {
	db *gorm.DB
}

// NewGormStockLotRepository creates a new GormStockLotRepository
func NewGormStockLotRepository(db *gorm.DB) *GormStockLotRepository {
	return &GormStockLotRepository{db: db}
}

// FindByIDForTenant finds a stock lot by ID within a tenant
func (r *GormStockLotRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*inventory.StockLot, error) {
	var lot inventory.StockLot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByProduct returns all lots of one product, newest first
func (r *GormStockLotRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]inventory.StockLot, error) {
	var lots []inventory.StockLot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("created_at DESC").
		Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// Save creates or updates a stock lot
func (r *GormStockLotRepository) Save(ctx context.Context, lot *inventory.StockLot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

// SumByProduct sums every lot per product, negative lots included
func (r *GormStockLotRepository) SumByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	return r.sumByProduct(r.db.WithContext(ctx).
		Table("stock_lots").
		Where("tenant_id = ?", tenantID))
}

// SumOnHandByProduct sums only positive lots per product
func (r *GormStockLotRepository) SumOnHandByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	return r.sumByProduct(r.db.WithContext(ctx).
		Table("stock_lots").
		Where("tenant_id = ? AND quantity > 0", tenantID))
}

func (r *GormStockLotRepository) sumByProduct(query *gorm.DB) (map[uuid.UUID]decimal.Decimal, error) {
	var results []struct {
		ProductID uuid.UUID       `gorm:"column:product_id"`
		Total     decimal.Decimal `gorm:"column:total"`
	}
	if err := query.
		Select("product_id, COALESCE(SUM(quantity), 0) as total").
		Group("product_id").
		Scan(&results).Error; err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal, len(results))
	for _, row := range results {
		sums[row.ProductID] = row.Total
	}
	return sums, nil
}

// Ensure GormStockLotRepository implements StockLotRepository
var _ inventory.StockLotRepository = (*GormStockLotRepository)(nil)
