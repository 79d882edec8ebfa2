package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmacy/backend/internal/domain/trade"
)

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	CustomerID *uuid.UUID              `json:"customer_id"`
	Remark     string                  `json:"remark" binding:"max=500"`
	Items      []SalesOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SalesOrderItemRequest is one line of a new sales order. UnitPrice is
// optional; when absent the product's current selling price is captured.
type SalesOrderItemRequest struct {
	ProductID string           `json:"product_id" binding:"required,uuid"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// SalesOrderItemResponse represents an order line in API responses
type SalesOrderItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Amount      float64   `json:"amount"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID          uuid.UUID                `json:"id"`
	OrderNumber string                   `json:"order_number"`
	CustomerID  *uuid.UUID               `json:"customer_id,omitempty"`
	Status      string                   `json:"status"`
	TotalAmount float64                  `json:"total_amount"`
	Remark      string                   `json:"remark"`
	Items       []SalesOrderItemResponse `json:"items"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// SalesOrderListFilter represents filter options for the order list
type SalesOrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func toSalesOrderResponse(o *trade.SalesOrder) *SalesOrderResponse {
	items := make([]SalesOrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = SalesOrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    toFloat64(item.Quantity),
			UnitPrice:   toFloat64(item.UnitPrice),
			Amount:      toFloat64(item.Amount),
		}
	}
	return &SalesOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Status:      o.Status.String(),
		TotalAmount: toFloat64(o.TotalAmount),
		Remark:      o.Remark,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
