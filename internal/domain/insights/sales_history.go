package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default trailing windows. Classification looks further back than restock
// sizing; both are overridable through configuration.
const (
	DefaultClassificationWindowDays = 90
	DefaultRestockWindowDays        = 30
)

// Order statuses excluded from each aggregation. Classification only
// counts firm revenue, so pending orders are left out; restock velocity
// deliberately includes pending demand and drops only cancellations.
var (
	ClassificationExcludedStatuses = []string{"cancelled", "pending"}
	RestockExcludedStatuses        = []string{"cancelled"}
)

// ProductSalesTotals holds the aggregated sales of one product over a
// trailing window.
type ProductSalesTotals struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// SalesHistoryRepository aggregates order line items joined to their parent
// order. The result is sparse: products with no matching lines in the
// window are absent, never zero-filled.
type SalesHistoryRepository interface {
	TotalsByProduct(ctx context.Context, tenantID uuid.UUID, since time.Time, excludedStatuses []string) (map[uuid.UUID]ProductSalesTotals, error)
}
