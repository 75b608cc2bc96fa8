package budgeting

import (
	"log/slog"
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	AllEntitiesName = "All Entities"
	NoEntitiesName  = "No Entities"
)

var currentYearFallbackRatio = decimal.NewFromFloat(0.5)

// Compiler assembles BudgetStatistics from budgets whose entities have
// already been resolved. It performs no I/O.
type Compiler struct {
	EntityEstimator SpendEstimator
	YearlyEstimator SpendEstimator
	Now             func() time.Time
}

// NewCompiler returns a Compiler using the production heuristics: a random
// 30-70% ratio per entity and the age-based ratio per fiscal year.
func NewCompiler() *Compiler {
	return &Compiler{
		EntityEstimator: RandomSpendEstimator{},
		YearlyEstimator: AgeBasedSpendEstimator{},
		Now:             time.Now,
	}
}

// Compute builds statistics for budgets. When entityID is set only budgets
// owned by exactly that entity are considered; children are not included.
func (c *Compiler) Compute(logger *slog.Logger, budgets []domain.Budget, entities EntityLookup, entityID *int64) domain.BudgetStatistics {
	if logger == nil {
		logger = slog.Default()
	}
	year := currentYear(c.Now)

	matched := filterByEntity(budgets, entityID)
	if len(matched) == 0 {
		name := NoEntitiesName
		if entityID != nil {
			if e, ok := entities[*entityID]; ok {
				name = e.Name
			}
		}
		return emptyStatistics(name)
	}

	trends := YearlyTrends(matched, c.YearlyEstimator)

	stats := domain.BudgetStatistics{
		YearlyTrends:      trends,
		EntityName:        resolveEntityName(matched, entities, entityID),
		TotalAllocated:    sumTotals(matched),
		TotalSpent:        decimal.Zero,
		CategoryBreakdown: CategoryBreakdown(collectItems(matched)),
		EntitiesBreakdown: EntityBreakdown(logger, matched, entities, c.EntityEstimator, year),
	}
	for _, t := range trends {
		stats.TotalSpent = stats.TotalSpent.Add(t.SpentToDate)
	}
	stats.OverallUtilization = Percent(stats.TotalSpent, stats.TotalAllocated)
	stats.CurrentBudget = c.currentBudget(logger, matched, trends, entities, year)

	return stats
}

func (c *Compiler) currentBudget(logger *slog.Logger, budgets []domain.Budget, trends []domain.YearlyTrend, entities EntityLookup, year int) *domain.CurrentBudgetSummary {
	current := make([]domain.Budget, 0)
	for _, b := range budgets {
		if b.FiscalYear == year {
			current = append(current, b)
		}
	}
	if len(current) == 0 {
		return nil
	}

	total := sumTotals(current)
	spent := roundMoney(total.Mul(currentYearFallbackRatio))
	for _, t := range trends {
		if t.Year == year {
			spent = t.SpentToDate
			break
		}
	}

	return &domain.CurrentBudgetSummary{
		FiscalYear:        year,
		Total:             total,
		Spent:             spent,
		Utilization:       Percent(spent, total),
		StartDate:         current[0].StartDate,
		EndDate:           current[0].EndDate,
		CategoryBreakdown: CategoryBreakdown(collectItems(current)),
		EntitiesBreakdown: EntityBreakdown(logger, current, entities, c.EntityEstimator, year),
	}
}

func emptyStatistics(name string) domain.BudgetStatistics {
	return domain.BudgetStatistics{
		YearlyTrends:      []domain.YearlyTrend{},
		EntityName:        name,
		TotalAllocated:    decimal.Zero,
		TotalSpent:        decimal.Zero,
		CategoryBreakdown: []domain.CategoryAmount{},
		EntitiesBreakdown: []domain.EntityBreakdown{},
	}
}

func filterByEntity(budgets []domain.Budget, entityID *int64) []domain.Budget {
	if entityID == nil {
		return budgets
	}
	out := make([]domain.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.EntityID != nil && *b.EntityID == *entityID {
			out = append(out, b)
		}
	}
	return out
}

// resolveEntityName prefers the filter entity, then the only entity present,
// then AllEntitiesName.
func resolveEntityName(budgets []domain.Budget, entities EntityLookup, entityID *int64) string {
	if entityID != nil {
		if e, ok := entities[*entityID]; ok {
			return e.Name
		}
	}

	var only *domain.Entity
	for _, b := range budgets {
		if b.EntityID == nil {
			continue
		}
		e, ok := entities[*b.EntityID]
		if !ok {
			continue
		}
		if only == nil {
			only = &e
			continue
		}
		if only.EntityID != e.EntityID {
			return AllEntitiesName
		}
	}
	if only != nil {
		return only.Name
	}
	return AllEntitiesName
}

func sumTotals(budgets []domain.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.TotalAmount)
	}
	return total
}

func collectItems(budgets []domain.Budget) []domain.BudgetItem {
	items := make([]domain.BudgetItem, 0)
	for _, b := range budgets {
		items = append(items, b.Items...)
	}
	return items
}
