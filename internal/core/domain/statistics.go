package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatistics is the aggregated view over a set of budgets.
type BudgetStatistics struct {
	CurrentBudget      *CurrentBudgetSummary `json:"currentBudget"`
	YearlyTrends       []YearlyTrend         `json:"yearlyTrends"`
	EntityName         string                `json:"entityName"`
	TotalAllocated     decimal.Decimal       `json:"totalAllocated"`
	TotalSpent         decimal.Decimal       `json:"totalSpent"`
	OverallUtilization int                   `json:"overallUtilization"`
	CategoryBreakdown  []CategoryAmount      `json:"categoryBreakdown"`
	EntitiesBreakdown  []EntityBreakdown     `json:"entitiesBreakdown"`
}

// CurrentBudgetSummary describes the budgets of the present calendar year.
type CurrentBudgetSummary struct {
	FiscalYear        int               `json:"fiscalYear"`
	Total             decimal.Decimal   `json:"total"`
	Spent             decimal.Decimal   `json:"spent"`
	Utilization       int               `json:"utilization"`
	StartDate         *time.Time        `json:"startDate"`
	EndDate           *time.Time        `json:"endDate"`
	CategoryBreakdown []CategoryAmount  `json:"categoryBreakdown"`
	EntitiesBreakdown []EntityBreakdown `json:"entitiesBreakdown"`
}

// CategoryAmount is the summed amount of one item category.
type CategoryAmount struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// EntityBreakdown is the budget total of one entity.
type EntityBreakdown struct {
	EntityID    int64           `json:"id"`
	Name        string          `json:"name"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	SpentToDate decimal.Decimal `json:"spentToDate"`
	Utilization int             `json:"utilization"`
}

// YearlyTrend is the budget total of one fiscal year.
type YearlyTrend struct {
	Year        int             `json:"year"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	SpentToDate decimal.Decimal `json:"spentToDate"`
	Utilization int             `json:"utilization"`
}
