package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.TenantRepository[Product]
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	// FindActive returns all products with status "active" for a tenant.
	// The restock recommender iterates this set.
	FindActive(ctx context.Context, tenantID uuid.UUID) ([]Product, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Product, error)
	ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error)
}
