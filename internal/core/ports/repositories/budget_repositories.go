package repositories

import (
	"context"

	"github.com/SscSPs/trt_portal/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	// ListBudgets returns matching budgets with their items, newest fiscal year first.
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error)

	// FindBudgetByID returns a budget with its items.
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// SaveBudget persists a budget and any items on it, returning the budget ID.
	SaveBudget(ctx context.Context, budget domain.Budget) (int64, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	// DeleteBudget removes a budget and its items.
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}

// BudgetItemReader defines read operations for budget items.
type BudgetItemReader interface {
	FindBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetItem, error)
	ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetItem, error)
}

// BudgetItemWriter defines write operations for budget items.
type BudgetItemWriter interface {
	SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error
	UpdateBudgetItem(ctx context.Context, item domain.BudgetItem) error
	DeleteBudgetItem(ctx context.Context, itemID string) error
}

// BudgetItemRepositoryFacade combines all budget item repository interfaces
type BudgetItemRepositoryFacade interface {
	BudgetItemReader
	BudgetItemWriter
}
