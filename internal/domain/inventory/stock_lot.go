package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockLot is a single received batch of a product. A product usually has
// several lots on hand; all stock math in this system works on lot sums,
// individual lots are never exposed to the analytics layer.
//
// Quantity is signed: manual adjustments and correction entries may drive
// a lot negative. Consumers decide whether negative lots participate in a
// sum (see StockLotRepository).
type StockLot struct {
	shared.TenantEntity
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_lot_product"`
	LotNumber string          `gorm:"type:varchar(50);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ExpiresAt *time.Time      `gorm:"index"`
}

// TableName returns the table name for GORM
func (StockLot) TableName() string {
	return "stock_lots"
}

// NewStockLot creates a new stock lot for a received batch
func NewStockLot(tenantID, productID uuid.UUID, lotNumber string, quantity, unitCost decimal.Decimal) (*StockLot, error) {
	if lotNumber == "" {
		return nil, shared.NewDomainError("INVALID_LOT_NUMBER", "Lot number cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &StockLot{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ProductID:    productID,
		LotNumber:    lotNumber,
		Quantity:     quantity,
		UnitCost:     unitCost,
	}, nil
}

// SetExpiry sets the lot expiry date
func (l *StockLot) SetExpiry(expiresAt time.Time) {
	l.ExpiresAt = &expiresAt
	l.UpdatedAt = time.Now()
}

// Adjust applies a signed quantity delta to the lot. Adjustments may drive
// the lot negative; that is a deliberate audit trail of shrinkage and
// correction entries, not an error.
func (l *StockLot) Adjust(delta decimal.Decimal) error {
	if delta.IsZero() {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment delta cannot be zero")
	}

	l.Quantity = l.Quantity.Add(delta)
	l.UpdatedAt = time.Now()

	return nil
}

// IsExpired reports whether the lot is past its expiry date
func (l *StockLot) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}
