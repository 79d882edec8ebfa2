package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ClassificationRepository persists classification snapshots. Upsert fully
// replaces the row for a product; there is no partial update.
type ClassificationRepository interface {
	Upsert(ctx context.Context, classification *ProductClassification) error

	// FindForTenant returns classification rows ordered by participation
	// percentage descending, optionally filtered to one class.
	FindForTenant(ctx context.Context, tenantID uuid.UUID, class *Class) ([]ProductClassification, error)

	// ClassByProduct returns the persisted class per product. Products
	// without a row are absent; callers default them to class C.
	ClassByProduct(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]Class, error)
}

// ExclusionRepository persists restock exclusions. Insert-only.
type ExclusionRepository interface {
	Insert(ctx context.Context, exclusion *RestockExclusion) error

	// ActiveProductIDs returns the set of products with at least one
	// exclusion whose blocked-until lies after now.
	ActiveProductIDs(ctx context.Context, tenantID uuid.UUID, now time.Time) (map[uuid.UUID]struct{}, error)
}

// SnapshotRepository persists shopping list audit rows. Append-only; each
// row is an independent insert.
type SnapshotRepository interface {
	InsertBatch(ctx context.Context, snapshots []RestockSnapshot) error
}
