package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a named allocation of funds for one entity for one fiscal year.
type Budget struct {
	BudgetID    int64           `json:"id"`
	Name        string          `json:"name"`
	FiscalYear  int             `json:"fiscalYear"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	EntityID    *int64          `json:"entityId,omitempty"`
	Items       []BudgetItem    `json:"items"`
	AuditFields
}

// BudgetItem is a line-item allocation within a budget.
//
// Category is optional; rows created before it existed carry the category
// as a "Category: detail" prefix of Description.
type BudgetItem struct {
	BudgetItemID string          `json:"id"`
	Description  string          `json:"description"`
	Category     *string         `json:"category,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
	BudgetID     int64           `json:"budgetId"`
	EntityID     *int64          `json:"entityId,omitempty"`
	AuditFields
}

// BudgetFilter restricts budget listings. Nil fields are ignored.
type BudgetFilter struct {
	FiscalYear *int
	EntityID   *int64
}

// BudgetItemFilter restricts budget item listings. Nil fields are ignored.
type BudgetItemFilter struct {
	BudgetID *int64
	EntityID *int64
}

const (
	MinFiscalYear = 1000
	MaxFiscalYear = 9999
)

// ValidFiscalYear reports whether year is a 4-digit calendar year.
func ValidFiscalYear(year int) bool {
	return year >= MinFiscalYear && year <= MaxFiscalYear
}
