package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/pharmacy/backend/internal/application/trade"
)

// SalesOrderHandler handles sales order API endpoints
type SalesOrderHandler struct {
	BaseHandler
	salesOrderService *tradeapp.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(salesOrderService *tradeapp.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{
		salesOrderService: salesOrderService,
	}
}

// Create godoc
// @Summary      Create a sales order
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        request body trade.CreateSalesOrderRequest true "Sales order request"
// @Success      201 {object} dto.Response{data=trade.SalesOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/sales-orders [post]
func (h *SalesOrderHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req tradeapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.salesOrderService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get godoc
// @Summary      Get a sales order by ID
// @Tags         trade
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=trade.SalesOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/sales-orders/{id} [get]
func (h *SalesOrderHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.salesOrderService.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @Summary      List sales orders
// @Tags         trade
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]trade.SalesOrderResponse}
// @Router       /trade/sales-orders [get]
func (h *SalesOrderHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var filter tradeapp.SalesOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.salesOrderService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Complete godoc
// @Summary      Complete a pending sales order
// @Tags         trade
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=trade.SalesOrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/sales-orders/{id}/complete [post]
func (h *SalesOrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.salesOrderService.Complete)
}

// Cancel godoc
// @Summary      Cancel a pending sales order
// @Tags         trade
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=trade.SalesOrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/sales-orders/{id}/cancel [post]
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.salesOrderService.Cancel)
}

// transition parses the order ID and applies a status transition
func (h *SalesOrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, tenantID, id uuid.UUID) (*tradeapp.SalesOrderResponse, error),
) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := apply(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
