package budgeting

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntityLookup maps entity ids to resolved entities.
type EntityLookup map[int64]domain.Entity

// EntityBreakdown groups budgets by owning entity. Budgets whose entity is
// missing from entities are skipped and logged. year is passed to est for every
// entity. Output is sorted by total, largest first.
func EntityBreakdown(logger *slog.Logger, budgets []domain.Budget, entities EntityLookup, est SpendEstimator, year int) []domain.EntityBreakdown {
	if logger == nil {
		logger = slog.Default()
	}

	index := make(map[int64]int)
	out := make([]domain.EntityBreakdown, 0)

	for _, b := range budgets {
		if b.EntityID == nil {
			logger.Warn("Skipping budget without entity", slog.Int64("budget_id", b.BudgetID))
			continue
		}
		entity, ok := entities[*b.EntityID]
		if !ok {
			logger.Warn("Skipping budget with unresolved entity",
				slog.Int64("budget_id", b.BudgetID),
				slog.Int64("entity_id", *b.EntityID))
			continue
		}

		i, seen := index[entity.EntityID]
		if !seen {
			i = len(out)
			index[entity.EntityID] = i
			out = append(out, domain.EntityBreakdown{
				EntityID:    entity.EntityID,
				Name:        entity.Name,
				TotalBudget: decimal.Zero,
			})
		}
		out[i].TotalBudget = out[i].TotalBudget.Add(b.TotalAmount)
	}

	for i := range out {
		out[i].SpentToDate = est.Estimate(out[i].TotalBudget, year)
		out[i].Utilization = Percent(out[i].SpentToDate, out[i].TotalBudget)
	}

	sortByTotalDesc(out)
	return out
}

// YearlyTrends groups budgets by fiscal year. Output is sorted by year, oldest first.
func YearlyTrends(budgets []domain.Budget, est SpendEstimator) []domain.YearlyTrend {
	index := make(map[int]int)
	out := make([]domain.YearlyTrend, 0)

	for _, b := range budgets {
		i, ok := index[b.FiscalYear]
		if !ok {
			i = len(out)
			index[b.FiscalYear] = i
			out = append(out, domain.YearlyTrend{Year: b.FiscalYear, TotalBudget: decimal.Zero})
		}
		out[i].TotalBudget = out[i].TotalBudget.Add(b.TotalAmount)
	}

	for i := range out {
		out[i].SpentToDate = est.Estimate(out[i].TotalBudget, out[i].Year)
		out[i].Utilization = Percent(out[i].SpentToDate, out[i].TotalBudget)
	}

	sortByYearAsc(out)
	return out
}

func sortByTotalDesc(out []domain.EntityBreakdown) {
	slices.SortStableFunc(out, func(a, b domain.EntityBreakdown) int {
		return b.TotalBudget.Cmp(a.TotalBudget)
	})
}

func sortByYearAsc(out []domain.YearlyTrend) {
	slices.SortFunc(out, func(a, b domain.YearlyTrend) int {
		return cmp.Compare(a.Year, b.Year)
	})
}
