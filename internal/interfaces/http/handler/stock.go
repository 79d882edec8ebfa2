package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/pharmacy/backend/internal/application/inventory"
)

// StockHandler handles stock lot API endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// ReceiveLot godoc
// @Summary      Receive a stock lot
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventory.ReceiveLotRequest true "Received lot"
// @Success      201 {object} dto.Response{data=inventory.StockLotResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/lots [post]
func (h *StockHandler) ReceiveLot(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req inventoryapp.ReceiveLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lot, err := h.stockService.ReceiveLot(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lot)
}

// AdjustLot godoc
// @Summary      Apply a signed quantity adjustment to a lot
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Lot ID"
// @Param        request body inventory.AdjustLotRequest true "Quantity delta"
// @Success      200 {object} dto.Response{data=inventory.StockLotResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/lots/{id} [patch]
func (h *StockHandler) AdjustLot(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	var req inventoryapp.AdjustLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lot, err := h.stockService.AdjustLot(c.Request.Context(), tenantID, lotID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lot)
}

// ListLots godoc
// @Summary      List the lots of a product
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=[]inventory.StockLotResponse}
// @Router       /inventory/products/{id}/lots [get]
func (h *StockHandler) ListLots(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	lots, err := h.stockService.ListLots(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lots)
}

// StockLevels godoc
// @Summary      Get per-product stock levels
// @Description  Total sums every lot including negative ones; on_hand counts only positive lots.
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=[]inventory.StockLevelResponse}
// @Router       /inventory/levels [get]
func (h *StockHandler) StockLevels(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	levels, err := h.stockService.StockLevels(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, levels)
}
