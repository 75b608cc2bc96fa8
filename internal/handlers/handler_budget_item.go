package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetItemHandler struct {
	itemService portssvc.BudgetItemSvcFacade
}

func newBudgetItemHandler(is portssvc.BudgetItemSvcFacade) *budgetItemHandler {
	return &budgetItemHandler{itemService: is}
}

func registerBudgetItemRoutes(rg *gin.RouterGroup, itemService portssvc.BudgetItemSvcFacade) {
	h := newBudgetItemHandler(itemService)

	items := rg.Group("/budget-items")
	{
		items.GET("", h.listItems)
		items.POST("", h.createItem)
		items.GET("/:id", h.getItem)
		items.PATCH("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

// createItem godoc
// @Summary Create a budget item
// @Tags budget-items
// @Accept json
// @Produce json
// @Param item body dto.CreateBudgetItemRequest true "Item details; budgetId is required"
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-items [post]
func (h *budgetItemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.itemService.CreateBudgetItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create budget item")
		return
	}

	logger.Info("Budget item created", slog.String("budget_item_id", item.BudgetItemID), slog.Int64("budget_id", item.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetItemResponse(item))
}

// listItems godoc
// @Summary List budget items
// @Tags budget-items
// @Produce json
// @Param budgetId query int false "Budget ID"
// @Param entityId query int false "Entity ID"
// @Success 200 {array} dto.BudgetItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-items [get]
func (h *budgetItemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBudgetItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.itemService.ListBudgetItems(c.Request.Context(), domain.BudgetItemFilter{
		BudgetID: params.BudgetID,
		EntityID: params.EntityID,
	})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list budget items")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetItemResponses(items))
}

// getItem godoc
// @Summary Get a budget item
// @Tags budget-items
// @Produce json
// @Param id path string true "Budget item ID"
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-items/{id} [get]
func (h *budgetItemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	item, err := h.itemService.GetBudgetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve budget item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

// updateItem godoc
// @Summary Update a budget item
// @Tags budget-items
// @Accept json
// @Produce json
// @Param id path string true "Budget item ID"
// @Param item body dto.UpdateBudgetItemRequest true "Fields to update"
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-items/{id} [patch]
func (h *budgetItemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.itemService.UpdateBudgetItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update budget item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a budget item
// @Tags budget-items
// @Param id path string true "Budget item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-items/{id} [delete]
func (h *budgetItemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.itemService.DeleteBudgetItem(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete budget item")
		return
	}
	c.Status(http.StatusNoContent)
}
