package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmacy/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU                  string           `json:"sku" binding:"required,min=1,max=50"`
	Name                 string           `json:"name" binding:"required,min=1,max=200"`
	Description          string           `json:"description" binding:"max=2000"`
	Barcode              string           `json:"barcode" binding:"max=50"`
	RegistryCode         string           `json:"registry_code" binding:"max=50"`
	DosageForm           string           `json:"dosage_form" binding:"max=50"`
	RequiresPrescription bool             `json:"requires_prescription"`
	Unit                 string           `json:"unit" binding:"required,min=1,max=20"`
	PurchasePrice        *decimal.Decimal `json:"purchase_price"`
	SellingPrice         *decimal.Decimal `json:"selling_price"`
	MinStock             *decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Barcode       *string          `json:"barcode" binding:"omitempty,max=50"`
	RegistryCode  *string          `json:"registry_code" binding:"omitempty,max=50"`
	DosageForm    *string          `json:"dosage_form" binding:"omitempty,max=50"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	MinStock      *decimal.Decimal `json:"min_stock"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                   uuid.UUID `json:"id"`
	SKU                  string    `json:"sku"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Barcode              string    `json:"barcode"`
	RegistryCode         string    `json:"registry_code"`
	DosageForm           string    `json:"dosage_form"`
	RequiresPrescription bool      `json:"requires_prescription"`
	Unit                 string    `json:"unit"`
	PurchasePrice        float64   `json:"purchase_price"`
	SellingPrice         float64   `json:"selling_price"`
	MinStock             float64   `json:"min_stock"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:                   p.ID,
		SKU:                  p.SKU,
		Name:                 p.Name,
		Description:          p.Description,
		Barcode:              p.Barcode,
		RegistryCode:         p.RegistryCode,
		DosageForm:           p.DosageForm,
		RequiresPrescription: p.RequiresPrescription,
		Unit:                 p.Unit,
		PurchasePrice:        toFloat64(p.PurchasePrice),
		SellingPrice:         toFloat64(p.SellingPrice),
		MinStock:             toFloat64(p.MinStock),
		Status:               string(p.Status),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
