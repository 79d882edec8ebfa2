package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmacy/backend/internal/domain/inventory"
)

// ReceiveLotRequest represents a received batch of a product
type ReceiveLotRequest struct {
	ProductID string           `json:"product_id" binding:"required,uuid"`
	LotNumber string           `json:"lot_number" binding:"required,min=1,max=50"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	ExpiresAt *time.Time       `json:"expires_at"`
}

// AdjustLotRequest applies a signed quantity delta to a lot
type AdjustLotRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// StockLotResponse represents a stock lot in API responses
type StockLotResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	LotNumber string     `json:"lot_number"`
	Quantity  float64    `json:"quantity"`
	UnitCost  float64    `json:"unit_cost"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// StockLevelResponse is the lot-summed stock of one product. Total sums
// every lot including negative ones; OnHand counts only positive lots.
type StockLevelResponse struct {
	ProductID string  `json:"product_id"`
	Total     float64 `json:"total"`
	OnHand    float64 `json:"on_hand"`
}

func toStockLotResponse(l *inventory.StockLot) *StockLotResponse {
	return &StockLotResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		LotNumber: l.LotNumber,
		Quantity:  toFloat64(l.Quantity),
		UnitCost:  toFloat64(l.UnitCost),
		ExpiresAt: l.ExpiresAt,
		CreatedAt: l.CreatedAt,
	}
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
