package insights

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// DefaultSnoozeDays is how long an exclusion suppresses a product when the
// operator does not pick a duration.
const DefaultSnoozeDays = 7

// RestockExclusion is a time-bounded suppression of a product from the
// restock list. Rows are insert-only: snoozing the same product again adds
// a new row rather than extending the old one, and expired rows are never
// cleaned up. The recommender only asks whether any row is still active.
type RestockExclusion struct {
	shared.TenantEntity
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BlockedUntil time.Time `gorm:"not null;index"`
	Reason       string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (RestockExclusion) TableName() string {
	return "restock_exclusions"
}

// NewRestockExclusion creates an exclusion lasting the given number of days
func NewRestockExclusion(tenantID, productID uuid.UUID, days int, reason string) (*RestockExclusion, error) {
	if days <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Snooze duration must be positive")
	}

	return &RestockExclusion{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ProductID:    productID,
		BlockedUntil: time.Now().AddDate(0, 0, days),
		Reason:       reason,
	}, nil
}

// IsActive reports whether the exclusion still suppresses the product
func (e *RestockExclusion) IsActive(now time.Time) bool {
	return e.BlockedUntil.After(now)
}
