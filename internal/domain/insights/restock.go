package insights

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Priority is the urgency band of a restock recommendation
type Priority string

const (
	PriorityRed    Priority = "red"
	PriorityYellow Priority = "yellow"
	PriorityGreen  Priority = "green"
)

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// Weight returns the sort weight of the priority; lower sorts first
func (p Priority) Weight() int {
	switch p {
	case PriorityRed:
		return 0
	case PriorityYellow:
		return 1
	default:
		return 2
	}
}

// CoverageDays returns the target days of stock to hold for a class
func (c Class) CoverageDays() decimal.Decimal {
	switch c {
	case ClassA:
		return decimal.NewFromInt(30)
	case ClassB:
		return decimal.NewFromInt(21)
	default:
		return decimal.NewFromInt(10)
	}
}

// Recommendation is one line of the restock list. It is recomputed in full
// on every request and never persisted unless explicitly snapshotted.
type Recommendation struct {
	ProductID         uuid.UUID
	Classification    Class
	VMD               decimal.Decimal // average daily units sold over the demand window
	CurrentStock      decimal.Decimal
	DaysToEmpty       decimal.Decimal
	SuggestedQuantity int64
	Priority          Priority
	Reason            string
}

// Thresholds of the priority matrix, in days of remaining stock.
var (
	criticalRunway = decimal.NewFromInt(1)
	classARedDays  = decimal.NewFromInt(7)
	classBRedDays  = decimal.NewFromInt(5)
	classBWarnDays = decimal.NewFromInt(10)
	classCWarnDays = decimal.NewFromInt(2)
)

// BuildRecommendations computes the restock list for a set of active
// products. classes carries the persisted ABC classification and may be
// stale relative to the sales and stock inputs; products without an entry
// default to class C. excluded products are skipped entirely, as are
// products with no demand in the window or with sufficient stock.
//
// The result is sorted by priority (red, yellow, green) and, within a
// priority, by velocity descending.
func BuildRecommendations(
	products []uuid.UUID,
	sales map[uuid.UUID]ProductSalesTotals,
	onHand map[uuid.UUID]decimal.Decimal,
	classes map[uuid.UUID]Class,
	excluded map[uuid.UUID]struct{},
	windowDays int,
) []Recommendation {
	window := decimal.NewFromInt(int64(windowDays))
	recommendations := make([]Recommendation, 0, len(products))

	for _, productID := range products {
		if _, ok := excluded[productID]; ok {
			continue
		}

		vmd := sales[productID].Quantity.Div(window)
		if !vmd.IsPositive() {
			continue
		}

		class, ok := classes[productID]
		if !ok {
			class = ClassC
		}

		stock := onHand[productID]
		daysToEmpty := stock.Div(vmd)

		idealStock := vmd.Mul(class.CoverageDays())
		suggested := idealStock.Sub(stock).Ceil()
		if !suggested.IsPositive() {
			continue
		}

		priority, reason := prioritize(class, daysToEmpty)

		recommendations = append(recommendations, Recommendation{
			ProductID:         productID,
			Classification:    class,
			VMD:               vmd,
			CurrentStock:      stock,
			DaysToEmpty:       daysToEmpty,
			SuggestedQuantity: suggested.IntPart(),
			Priority:          priority,
			Reason:            reason,
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		wi, wj := recommendations[i].Priority.Weight(), recommendations[j].Priority.Weight()
		if wi != wj {
			return wi < wj
		}
		return recommendations[i].VMD.GreaterThan(recommendations[j].VMD)
	})

	return recommendations
}

// prioritize maps class and remaining runway onto a priority band.
// A runway of one day or less is critical regardless of class.
func prioritize(class Class, daysToEmpty decimal.Decimal) (Priority, string) {
	if daysToEmpty.LessThanOrEqual(criticalRunway) {
		return PriorityRed, "CRITICAL: imminent stockout"
	}

	switch class {
	case ClassA:
		if daysToEmpty.LessThanOrEqual(classARedDays) {
			return PriorityRed, "Class A item with low stock"
		}
		return PriorityYellow, "Preventive restock (Class A)"
	case ClassB:
		if daysToEmpty.LessThanOrEqual(classBRedDays) {
			return PriorityRed, "Stockout risk"
		}
		if daysToEmpty.LessThanOrEqual(classBWarnDays) {
			return PriorityYellow, "Restock recommended"
		}
		return PriorityGreen, "Low urgency"
	default:
		if daysToEmpty.LessThanOrEqual(classCWarnDays) {
			return PriorityYellow, "Class C item nearing depletion"
		}
		return PriorityGreen, "Opportunistic restock"
	}
}
