package insights

import (
	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SnapshotStatus is the workflow status of an archived recommendation row
type SnapshotStatus string

const (
	SnapshotStatusPending SnapshotStatus = "pending"
	SnapshotStatusOrdered SnapshotStatus = "ordered"
	SnapshotStatusSkipped SnapshotStatus = "skipped"
)

// RestockSnapshot is an immutable audit row of one generated shopping list
// line. A generated list becomes N independent rows; there is no batch
// identifier tying them together, and rows are never deduplicated against
// earlier lists.
type RestockSnapshot struct {
	shared.TenantEntity
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	VMD               decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CurrentStock      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SuggestedQuantity int64           `gorm:"not null"`
	Priority          Priority        `gorm:"type:varchar(10);not null"`
	Status            SnapshotStatus  `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (RestockSnapshot) TableName() string {
	return "restock_snapshots"
}

// NewRestockSnapshot archives one recommendation line with status pending
func NewRestockSnapshot(tenantID uuid.UUID, rec Recommendation) *RestockSnapshot {
	return &RestockSnapshot{
		TenantEntity:      shared.NewTenantEntity(tenantID),
		ProductID:         rec.ProductID,
		VMD:               rec.VMD,
		CurrentStock:      rec.CurrentStock,
		SuggestedQuantity: rec.SuggestedQuantity,
		Priority:          rec.Priority,
		Status:            SnapshotStatusPending,
	}
}
