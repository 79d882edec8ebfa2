package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// SalesOrderRepository defines the persistence interface for sales orders
type SalesOrderRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrder, error)
	FindByOrderNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*SalesOrder, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]SalesOrder, error)
	Save(ctx context.Context, order *SalesOrder) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// GenerateOrderNumber produces the next sequential order number for a
	// tenant, e.g. SO-20260828-0001.
	GenerateOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
