package insights

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pharmacy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Class is the ABC revenue class of a product: A products carry the top of
// cumulative revenue, C products the long tail.
type Class string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
)

// IsValid checks if the class is one of A, B, C
func (c Class) IsValid() bool {
	switch c {
	case ClassA, ClassB, ClassC:
		return true
	}
	return false
}

// String returns the string representation of the class
func (c Class) String() string {
	return string(c)
}

// ParseClass parses a class letter, accepting lower case
func ParseClass(s string) (Class, error) {
	switch s {
	case "A", "a":
		return ClassA, nil
	case "B", "b":
		return ClassB, nil
	case "C", "c":
		return ClassC, nil
	}
	return "", shared.NewDomainError("INVALID_CLASS", "Class must be one of A, B, C")
}

// Cumulative revenue share thresholds of the A and B bands, in percent.
var (
	classALimit = decimal.NewFromInt(70)
	classBLimit = decimal.NewFromInt(90)
)

// ProductClassification is the durable classification snapshot of one
// product. It is fully overwritten on every recompute; a product with no
// row is treated as class C by all consumers.
type ProductClassification struct {
	shared.TenantEntity
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_classification_tenant_product,priority:2"`
	Classification    Class           `gorm:"type:varchar(1);not null"`
	ParticipationPct  decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	AccumulatedPct    decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	TotalSoldAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalSoldQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TurnoverRate      decimal.Decimal `gorm:"type:decimal(9,2);not null"`
	AverageStock      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // stock sum at calculation time, not a period average
	LastCalculated    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductClassification) TableName() string {
	return "product_classifications"
}

// BuildClassification runs the ABC analysis over aggregated sales and
// stock sums and returns one classification row per sold product.
//
// Products are ranked by revenue descending and walked accumulating each
// product's revenue share. The class of a boundary-crossing product is the
// class of the band where the running total started, not where it ended:
// a product taking the cumulative share from 65% to 75% is still class A.
//
// Rank order between products with exactly equal revenue is not defined
// (it follows map iteration) and two runs over identical data may order
// ties differently; classes only depend on the cumulative walk, so the
// resulting bands stay consistent.
//
// An empty sales map yields nil: callers must leave the previous
// classification untouched in that case.
func BuildClassification(
	tenantID uuid.UUID,
	sales map[uuid.UUID]ProductSalesTotals,
	stockByProduct map[uuid.UUID]decimal.Decimal,
	now time.Time,
) []ProductClassification {
	if len(sales) == 0 {
		return nil
	}

	grandTotal := decimal.Zero
	for _, totals := range sales {
		grandTotal = grandTotal.Add(totals.Value)
	}

	ranked := make([]uuid.UUID, 0, len(sales))
	for productID := range sales {
		ranked = append(ranked, productID)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return sales[ranked[i]].Value.GreaterThan(sales[ranked[j]].Value)
	})

	hundred := decimal.NewFromInt(100)
	accumulated := decimal.Zero
	rows := make([]ProductClassification, 0, len(ranked))

	for _, productID := range ranked {
		totals := sales[productID]

		participation := decimal.Zero
		if grandTotal.IsPositive() {
			participation = totals.Value.Div(grandTotal).Mul(hundred)
		}

		before := accumulated
		accumulated = accumulated.Add(participation)

		stock := stockByProduct[productID]
		turnover := decimal.Zero
		if stock.IsPositive() {
			turnover = totals.Quantity.Div(stock).Round(2)
		}

		rows = append(rows, ProductClassification{
			TenantEntity:      shared.NewTenantEntity(tenantID),
			ProductID:         productID,
			Classification:    classify(before, accumulated),
			ParticipationPct:  participation,
			AccumulatedPct:    accumulated,
			TotalSoldAmount:   totals.Value,
			TotalSoldQuantity: totals.Quantity,
			TurnoverRate:      turnover,
			AverageStock:      stock,
			LastCalculated:    now,
		})
	}

	return rows
}

// classify assigns the class for one step of the cumulative walk.
// before is the running total prior to this product's own share,
// after the total including it.
func classify(before, after decimal.Decimal) Class {
	switch {
	case after.LessThanOrEqual(classALimit):
		return ClassA
	case after.LessThanOrEqual(classBLimit):
		if before.LessThan(classALimit) {
			return ClassA
		}
		return ClassB
	default:
		if before.LessThan(classBLimit) {
			return ClassB
		}
		return ClassC
	}
}
