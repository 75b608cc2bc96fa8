package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the budgets table row.
type Budget struct {
	BudgetID    int64           `db:"budget_id"`
	Name        string          `db:"name"`
	FiscalYear  int             `db:"fiscal_year"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	StartDate   *time.Time      `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"`
	Notes       *string         `db:"notes"`
	EntityID    *int64          `db:"entity_id"`
	AuditFields
}

// BudgetItem is the budget_items table row.
type BudgetItem struct {
	BudgetItemID string          `db:"budget_item_id"`
	BudgetID     int64           `db:"budget_id"`
	Description  string          `db:"description"`
	Category     *string         `db:"category"`
	Amount       decimal.Decimal `db:"amount"`
	Notes        *string         `db:"notes"`
	EntityID     *int64          `db:"entity_id"`
	AuditFields
}
