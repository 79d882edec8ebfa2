package handler

import (
	"github.com/gin-gonic/gin"

	insightsapp "github.com/pharmacy/backend/internal/application/insights"
)

// InsightsHandler handles the inventory intelligence API endpoints
type InsightsHandler struct {
	BaseHandler
	classificationService *insightsapp.ClassificationService
	restockService        *insightsapp.RestockService
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(
	classificationService *insightsapp.ClassificationService,
	restockService *insightsapp.RestockService,
) *InsightsHandler {
	return &InsightsHandler{
		classificationService: classificationService,
		restockService:        restockService,
	}
}

// ClassificationListQuery filters the ABC ranking by class
type ClassificationListQuery struct {
	Class string `form:"class" binding:"omitempty,oneof=A B C"`
}

// RecomputeClassification godoc
// @Summary      Recompute the ABC revenue classification
// @Description  Aggregates the trailing sales window and rewrites one classification row per sold product. Supports Idempotency-Key.
// @Tags         insights
// @Produce      json
// @Success      200 {object} dto.Response{data=insights.RecomputeClassificationResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /insights/classification/recompute [post]
func (h *InsightsHandler) RecomputeClassification(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	result, err := h.classificationService.Recompute(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListClassification godoc
// @Summary      List the current ABC classification
// @Tags         insights
// @Produce      json
// @Param        class query string false "Filter by class (A, B or C)"
// @Success      200 {object} dto.Response{data=[]insights.ClassificationResponse}
// @Router       /insights/classification [get]
func (h *InsightsHandler) ListClassification(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var query ClassificationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	rows, err := h.classificationService.List(c.Request.Context(), tenantID, query.Class)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// RestockRecommendations godoc
// @Summary      Get the restock recommendation list
// @Description  Products with demand in the trailing window, most urgent first. Snoozed products are hidden.
// @Tags         insights
// @Produce      json
// @Success      200 {object} dto.Response{data=[]insights.RecommendationResponse}
// @Router       /insights/restock [get]
func (h *InsightsHandler) RestockRecommendations(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	recommendations, err := h.restockService.Recommendations(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recommendations)
}

// SnoozeRestock godoc
// @Summary      Hide a product from the restock list
// @Description  Adds an exclusion that keeps the product off the restock list until it expires.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        request body insights.SnoozeRequest true "Product and snooze duration"
// @Success      201 {object} dto.Response{data=insights.SnoozeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /insights/restock/exclusions [post]
func (h *InsightsHandler) SnoozeRestock(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req insightsapp.SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	exclusion, err := h.restockService.Snooze(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, exclusion)
}

// SaveShoppingList godoc
// @Summary      Archive a shopping list
// @Description  Inserts one pending snapshot row per provided line, exactly as submitted. Supports Idempotency-Key.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        request body insights.ShoppingListRequest true "Shopping list lines"
// @Success      201 {object} dto.Response{data=insights.ShoppingListResponse}
// @Router       /insights/restock/shopping-list [post]
func (h *InsightsHandler) SaveShoppingList(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req insightsapp.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.restockService.SaveShoppingList(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
