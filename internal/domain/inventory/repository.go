package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLotRepository defines the persistence interface for stock lots.
//
// The two sum queries are intentionally distinct and must not be unified:
// classification turnover math includes negative adjustment lots
// (SumByProduct), while restock sizing counts only sellable stock
// (SumOnHandByProduct). Both group over the same lot rows.
type StockLotRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*StockLot, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]StockLot, error)
	Save(ctx context.Context, lot *StockLot) error

	// SumByProduct returns the signed sum of all lot quantities per product,
	// including negative adjustment lots.
	SumByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)

	// SumOnHandByProduct returns the sum of positive lot quantities per
	// product; lots at or below zero are left out entirely.
	SumOnHandByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
