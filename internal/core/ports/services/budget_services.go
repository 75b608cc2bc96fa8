package services

import (
	"context"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/dto"
)

// BudgetSvcFacade defines budget operations.
type BudgetSvcFacade interface {
	GetBudget(ctx context.Context, budgetID int64) (*domain.Budget, error)
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error)
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID int64) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest, userID int64) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetItemSvcFacade defines budget item operations.
type BudgetItemSvcFacade interface {
	GetBudgetItem(ctx context.Context, itemID string) (*domain.BudgetItem, error)
	ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest, creatorUserID int64) (*domain.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, itemID string, req dto.UpdateBudgetItemRequest, userID int64) (*domain.BudgetItem, error)
	DeleteBudgetItem(ctx context.Context, itemID string) error
}

// BudgetStatisticsSvc aggregates budgets into statistics.
type BudgetStatisticsSvc interface {
	// GetBudgetStatistics aggregates all budgets, or only those owned by entityID.
	GetBudgetStatistics(ctx context.Context, entityID *int64) (*domain.BudgetStatistics, error)
}
