package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/middleware"
	"github.com/SscSPs/trt_portal/internal/utils/charts"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests for budgets and their statistics.
type budgetHandler struct {
	budgetService     portssvc.BudgetSvcFacade
	statisticsService portssvc.BudgetStatisticsSvc
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, ss portssvc.BudgetStatisticsSvc) *budgetHandler {
	return &budgetHandler{
		budgetService:     bs,
		statisticsService: ss,
	}
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, statisticsService portssvc.BudgetStatisticsSvc) {
	h := newBudgetHandler(budgetService, statisticsService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/statistics", h.getStatistics)
		budgets.GET("/statistics/chart.png", h.getStatisticsChart)
		budgets.GET("/statistics/categories.png", h.getCategoryChart)
		budgets.GET("/:id", h.getBudget)
		budgets.PATCH("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a budget, optionally with its line items
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create budget")
		return
	}

	logger.Info("Budget created", slog.Int64("budget_id", budget.BudgetID), slog.Int("items", len(budget.Items)))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List budgets
// @Description Lists budgets with their items, newest fiscal year first
// @Tags budgets
// @Produce json
// @Param fiscalYear query int false "Fiscal year"
// @Param entityId query int false "Entity ID"
// @Success 200 {array} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), domain.BudgetFilter{
		FiscalYear: params.FiscalYear,
		EntityID:   params.EntityID,
	})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

// getBudget godoc
// @Summary Get a budget
// @Description Returns a budget with its items
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), budgetID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [patch]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Deletes a budget and its items
// @Tags budgets
// @Param id path int true "Budget ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted", slog.Int64("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

// getStatistics godoc
// @Summary Budget statistics
// @Description Aggregates budgets into totals, yearly trends, category and entity breakdowns.
// @Description Without entityId every budget is included.
// @Tags budgets
// @Produce json
// @Param entityId query int false "Restrict to budgets of this entity"
// @Success 200 {object} domain.BudgetStatistics
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/statistics [get]
func (h *budgetHandler) getStatistics(c *gin.Context) {
	stats, ok := h.compileStatistics(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getStatisticsChart godoc
// @Summary Budget trends chart
// @Description Renders allocated versus estimated spend per fiscal year as a PNG grouped bar chart.
// @Tags budgets
// @Produce png
// @Param entityId query int false "Restrict to budgets of this entity"
// @Success 200 {file} binary
// @Success 204 "No budgets to chart"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/statistics/chart.png [get]
func (h *budgetHandler) getStatisticsChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, ok := h.compileStatistics(c)
	if !ok {
		return
	}
	if len(stats.YearlyTrends) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	png, err := charts.YearlyTrendsPNG(stats.EntityName, stats.YearlyTrends)
	if err != nil {
		logger.Error("Failed to render statistics chart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *budgetHandler) compileStatistics(c *gin.Context) (*domain.BudgetStatistics, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BudgetStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return nil, false
	}

	stats, err := h.statisticsService.GetBudgetStatistics(c.Request.Context(), params.EntityID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compile budget statistics")
		return nil, false
	}
	return stats, true
}

// getCategoryChart godoc
// @Summary Budget categories chart
// @Description Renders the category breakdown as a PNG pie chart. Categories with a zero amount are left out.
// @Tags budgets
// @Produce png
// @Param entityId query int false "Restrict to budgets of this entity"
// @Success 200 {file} binary
// @Success 204 "No categories to chart"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/statistics/categories.png [get]
func (h *budgetHandler) getCategoryChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, ok := h.compileStatistics(c)
	if !ok {
		return
	}

	png, err := charts.CategoryBreakdownPNG(stats.CategoryBreakdown)
	if err != nil {
		logger.Error("Failed to render category chart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render chart"})
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
