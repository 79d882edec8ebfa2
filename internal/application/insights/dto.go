package insights

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecomputeClassificationResponse reports the outcome of a classification run.
type RecomputeClassificationResponse struct {
	ProductsClassified int       `json:"products_classified"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

// ClassificationResponse is one row of the ABC ranking.
type ClassificationResponse struct {
	ProductID         string    `json:"product_id"`
	ProductName       string    `json:"product_name"`
	ProductSKU        string    `json:"product_sku"`
	Classification    string    `json:"classification"`
	ParticipationPct  float64   `json:"participation_pct"`
	AccumulatedPct    float64   `json:"accumulated_pct"`
	TotalSoldAmount   float64   `json:"total_sold_amount"`
	TotalSoldQuantity float64   `json:"total_sold_quantity"`
	TurnoverRate      float64   `json:"turnover_rate"`
	AverageStock      float64   `json:"average_stock"`
	LastCalculated    time.Time `json:"last_calculated"`
}

// RecommendationResponse is one line of the restock list.
type RecommendationResponse struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	ProductSKU        string  `json:"product_sku"`
	Classification    string  `json:"classification"`
	VMD               float64 `json:"vmd"`
	CurrentStock      float64 `json:"current_stock"`
	DaysToEmpty       float64 `json:"days_to_empty"`
	SuggestedQuantity int64   `json:"suggested_quantity"`
	Priority          string  `json:"priority"`
	Reason            string  `json:"reason"`
}

// SnoozeRequest hides a product from the restock list for a number of days.
// Days defaults when zero.
type SnoozeRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Days      int    `json:"days" binding:"omitempty,min=1,max=365"`
	Reason    string `json:"reason" binding:"omitempty,max=500"`
}

// SnoozeResponse confirms an exclusion.
type SnoozeResponse struct {
	ProductID    string    `json:"product_id"`
	BlockedUntil time.Time `json:"blocked_until"`
}

// ShoppingListItemRequest is one recommendation line as shown to the
// caller. Operators may trim or edit the list before saving; whatever is
// submitted is what gets archived.
type ShoppingListItemRequest struct {
	ProductID         string  `json:"product_id" binding:"required,uuid"`
	VMD               float64 `json:"vmd" binding:"gte=0"`
	CurrentStock      float64 `json:"current_stock" binding:"gte=0"`
	SuggestedQuantity int64   `json:"suggested_quantity" binding:"required,min=1"`
	Priority          string  `json:"priority" binding:"required,oneof=red yellow green"`
}

// ShoppingListRequest carries the lines to archive. An empty list is
// accepted and saves nothing.
type ShoppingListRequest struct {
	Items []ShoppingListItemRequest `json:"items" binding:"omitempty,dive"`
}

// ShoppingListResponse reports how many recommendation rows were captured.
type ShoppingListResponse struct {
	ItemsSaved int `json:"items_saved"`
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
