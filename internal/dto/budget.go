package dto

import (
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/utils/budgeting"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget, optionally with items.
type CreateBudgetRequest struct {
	Name        string                    `json:"name" binding:"required,max=255"`
	FiscalYear  int                       `json:"fiscalYear" binding:"required,fiscalyear"`
	TotalAmount decimal.Decimal           `json:"totalAmount" binding:"required"`
	StartDate   *time.Time                `json:"startDate"`
	EndDate     *time.Time                `json:"endDate"`
	Notes       *string                   `json:"notes" binding:"omitempty,max=2000"`
	EntityID    *int64                    `json:"entityId" binding:"omitempty,gt=0"`
	Items       []CreateBudgetItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateBudgetRequest defines a partial budget update.
type UpdateBudgetRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	FiscalYear  *int             `json:"fiscalYear" binding:"omitempty,fiscalyear"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Notes       *string          `json:"notes" binding:"omitempty,max=2000"`
	EntityID    *int64           `json:"entityId" binding:"omitempty,gt=0"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	FiscalYear *int   `form:"fiscalYear" binding:"omitempty,fiscalyear"`
	EntityID   *int64 `form:"entityId" binding:"omitempty,gt=0"`
}

// CreateBudgetItemRequest defines the data needed to create a budget item.
// BudgetID is ignored when the item is nested in a CreateBudgetRequest.
type CreateBudgetItemRequest struct {
	Description string          `json:"description" binding:"max=500"`
	Category    *string         `json:"category" binding:"omitempty,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       *string         `json:"notes" binding:"omitempty,max=2000"`
	BudgetID    int64           `json:"budgetId" binding:"omitempty,gt=0"`
	EntityID    *int64          `json:"entityId" binding:"omitempty,gt=0"`
}

// UpdateBudgetItemRequest defines a partial budget item update.
type UpdateBudgetItemRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Notes       *string          `json:"notes" binding:"omitempty,max=2000"`
	EntityID    *int64           `json:"entityId" binding:"omitempty,gt=0"`
}

// ListBudgetItemsParams defines query parameters for listing budget items.
type ListBudgetItemsParams struct {
	BudgetID *int64 `form:"budgetId" binding:"omitempty,gt=0"`
	EntityID *int64 `form:"entityId" binding:"omitempty,gt=0"`
}

// BudgetStatisticsParams defines query parameters for budget statistics.
type BudgetStatisticsParams struct {
	EntityID *int64 `form:"entityId" binding:"omitempty,gt=0"`
}

// BudgetResponse is the public representation of a budget.
type BudgetResponse struct {
	BudgetID    int64                `json:"id"`
	Name        string               `json:"name"`
	FiscalYear  int                  `json:"fiscalYear"`
	TotalAmount decimal.Decimal      `json:"totalAmount"`
	StartDate   *time.Time           `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Notes       *string              `json:"notes"`
	EntityID    *int64               `json:"entityId"`
	Items       []BudgetItemResponse `json:"items"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// BudgetItemResponse is the public representation of a budget item.
type BudgetItemResponse struct {
	BudgetItemID string          `json:"id"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes"`
	BudgetID     int64           `json:"budgetId"`
	EntityID     *int64          `json:"entityId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToBudgetResponse converts a domain.Budget to its DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		Name:        b.Name,
		FiscalYear:  b.FiscalYear,
		TotalAmount: b.TotalAmount,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Notes:       b.Notes,
		EntityID:    b.EntityID,
		Items:       ToBudgetItemResponses(b.Items),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.LastUpdatedAt,
	}
}

// ToBudgetResponses converts a slice of budgets to DTOs.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return out
}

// ToBudgetItemResponse converts a domain.BudgetItem to its DTO. The category
// is the explicit one when set, otherwise the one encoded in the description.
func ToBudgetItemResponse(item *domain.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		BudgetItemID: item.BudgetItemID,
		Description:  item.Description,
		Category:     budgeting.ItemCategory(*item),
		Amount:       item.Amount,
		Notes:        item.Notes,
		BudgetID:     item.BudgetID,
		EntityID:     item.EntityID,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.LastUpdatedAt,
	}
}

// ToBudgetItemResponses converts a slice of budget items to DTOs.
func ToBudgetItemResponses(items []domain.BudgetItem) []BudgetItemResponse {
	out := make([]BudgetItemResponse, len(items))
	for i := range items {
		out[i] = ToBudgetItemResponse(&items[i])
	}
	return out
}
