package budgeting

import (
	"testing"
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeA int64 = 1
	storeB int64 = 2
	orphan int64 = 99
)

var testEntities = EntityLookup{
	storeA: {EntityID: storeA, Name: "Store A"},
	storeB: {EntityID: storeB, Name: "Store B"},
}

func idPtr(id int64) *int64 {
	return &id
}

func budget(id int64, entityID *int64, year int, total int64, items ...domain.BudgetItem) domain.Budget {
	return domain.Budget{
		BudgetID:    id,
		Name:        "Refresh",
		FiscalYear:  year,
		TotalAmount: decimal.NewFromInt(total),
		EntityID:    entityID,
		Items:       items,
	}
}

func testCompiler() *Compiler {
	now := fixedNow(2024)
	return &Compiler{
		EntityEstimator: FixedRatioSpendEstimator{Ratio: decimal.RequireFromString("0.5")},
		YearlyEstimator: AgeBasedSpendEstimator{Now: now},
		Now:             now,
	}
}

func TestCompute_TwoEntitiesTwoYears(t *testing.T) {
	budgets := []domain.Budget{
		budget(1, idPtr(storeA), 2024, 500000, item("Equipment: New POS Equipment", 400000), item("Installation", 100000)),
		budget(2, idPtr(storeB), 2024, 300000, item("Software: licences", 300000)),
		budget(3, idPtr(storeA), 2023, 400000, item("Equipment: kiosks", 400000)),
	}

	stats := testCompiler().Compute(nil, budgets, testEntities, nil)

	assert.Equal(t, AllEntitiesName, stats.EntityName)
	assertDecimal(t, "1200000", stats.TotalAllocated)

	require.Len(t, stats.YearlyTrends, 2)
	assert.Equal(t, 2023, stats.YearlyTrends[0].Year)
	assertDecimal(t, "400000", stats.YearlyTrends[0].TotalBudget)
	assertDecimal(t, "180000", stats.YearlyTrends[0].SpentToDate)
	assert.Equal(t, 45, stats.YearlyTrends[0].Utilization)
	assert.Equal(t, 2024, stats.YearlyTrends[1].Year)
	assertDecimal(t, "800000", stats.YearlyTrends[1].TotalBudget)
	assertDecimal(t, "240000", stats.YearlyTrends[1].SpentToDate)
	assert.Equal(t, 30, stats.YearlyTrends[1].Utilization)

	assertDecimal(t, "420000", stats.TotalSpent)
	assert.Equal(t, 35, stats.OverallUtilization)

	require.Len(t, stats.EntitiesBreakdown, 2)
	assert.Equal(t, storeA, stats.EntitiesBreakdown[0].EntityID)
	assert.Equal(t, "Store A", stats.EntitiesBreakdown[0].Name)
	assertDecimal(t, "900000", stats.EntitiesBreakdown[0].TotalBudget)
	assertDecimal(t, "450000", stats.EntitiesBreakdown[0].SpentToDate)
	assert.Equal(t, 50, stats.EntitiesBreakdown[0].Utilization)
	assert.Equal(t, storeB, stats.EntitiesBreakdown[1].EntityID)
	assertDecimal(t, "300000", stats.EntitiesBreakdown[1].TotalBudget)

	require.Len(t, stats.CategoryBreakdown, 3)
	assert.Equal(t, "Equipment", stats.CategoryBreakdown[0].Category)
	assertDecimal(t, "800000", stats.CategoryBreakdown[0].Amount)
	assert.Equal(t, 67, stats.CategoryBreakdown[0].Percentage)

	require.NotNil(t, stats.CurrentBudget)
	cur := stats.CurrentBudget
	assert.Equal(t, 2024, cur.FiscalYear)
	assertDecimal(t, "800000", cur.Total)
	assertDecimal(t, "240000", cur.Spent)
	assert.Equal(t, 30, cur.Utilization)
	require.Len(t, cur.EntitiesBreakdown, 2)
	assertDecimal(t, "500000", cur.EntitiesBreakdown[0].TotalBudget)
	require.Len(t, cur.CategoryBreakdown, 3)
	assert.Equal(t, "Equipment", cur.CategoryBreakdown[0].Category)
	assert.Equal(t, 50, cur.CategoryBreakdown[0].Percentage)
}

func TestCompute_EmptyInput(t *testing.T) {
	stats := testCompiler().Compute(nil, nil, testEntities, nil)

	assert.Equal(t, NoEntitiesName, stats.EntityName)
	assert.Nil(t, stats.CurrentBudget)
	assert.True(t, stats.TotalAllocated.IsZero())
	assert.True(t, stats.TotalSpent.IsZero())
	assert.Equal(t, 0, stats.OverallUtilization)
	assert.NotNil(t, stats.YearlyTrends)
	assert.Empty(t, stats.YearlyTrends)
	assert.NotNil(t, stats.CategoryBreakdown)
	assert.Empty(t, stats.CategoryBreakdown)
	assert.NotNil(t, stats.EntitiesBreakdown)
	assert.Empty(t, stats.EntitiesBreakdown)
}

func TestCompute_FilterMatchingNothing(t *testing.T) {
	budgets := []domain.Budget{budget(1, idPtr(storeA), 2024, 1000)}

	stats := testCompiler().Compute(nil, budgets, testEntities, idPtr(storeB))

	assert.Equal(t, "Store B", stats.EntityName)
	assert.Nil(t, stats.CurrentBudget)
	assert.True(t, stats.TotalAllocated.IsZero())
	assert.Empty(t, stats.YearlyTrends)

	stats = testCompiler().Compute(nil, budgets, testEntities, idPtr(orphan))
	assert.Equal(t, NoEntitiesName, stats.EntityName)
}

func TestCompute_FilterIsExactMatch(t *testing.T) {
	child := int64(3)
	entities := EntityLookup{
		storeA: testEntities[storeA],
		child:  {EntityID: child, Name: "Store A - Annex", ParentID: idPtr(storeA)},
	}
	budgets := []domain.Budget{
		budget(1, idPtr(storeA), 2024, 1000),
		budget(2, idPtr(child), 2024, 5000),
	}

	stats := testCompiler().Compute(nil, budgets, entities, idPtr(storeA))

	assert.Equal(t, "Store A", stats.EntityName)
	assertDecimal(t, "1000", stats.TotalAllocated)
	require.Len(t, stats.EntitiesBreakdown, 1)
	assert.Equal(t, storeA, stats.EntitiesBreakdown[0].EntityID)
}

func TestCompute_SingleEntityNamesResult(t *testing.T) {
	budgets := []domain.Budget{
		budget(1, idPtr(storeB), 2022, 1000),
		budget(2, idPtr(storeB), 2023, 1000),
	}

	stats := testCompiler().Compute(nil, budgets, testEntities, nil)

	assert.Equal(t, "Store B", stats.EntityName)
	assert.Nil(t, stats.CurrentBudget)
}

func TestCompute_UnresolvedEntitiesAreSkipped(t *testing.T) {
	budgets := []domain.Budget{
		budget(1, idPtr(storeA), 2024, 1000),
		budget(2, idPtr(orphan), 2024, 3000),
		budget(3, nil, 2024, 500),
	}

	stats := testCompiler().Compute(nil, budgets, testEntities, nil)

	assertDecimal(t, "4500", stats.TotalAllocated)
	require.Len(t, stats.EntitiesBreakdown, 1)
	assert.Equal(t, storeA, stats.EntitiesBreakdown[0].EntityID)
	assert.Equal(t, "Store A", stats.EntityName)
	require.NotNil(t, stats.CurrentBudget)
	assertDecimal(t, "4500", stats.CurrentBudget.Total)
	require.Len(t, stats.CurrentBudget.EntitiesBreakdown, 1)
}

func TestCompute_CurrentBudgetDatesFromFirstCurrentYearBudget(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	other := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	first := budget(1, idPtr(storeA), 2024, 1000)
	first.StartDate, first.EndDate = &start, &end
	second := budget(2, idPtr(storeB), 2024, 1000)
	second.StartDate = &other
	old := budget(3, idPtr(storeB), 2023, 1000)
	old.StartDate = &other

	stats := testCompiler().Compute(nil, []domain.Budget{old, first, second}, testEntities, nil)

	require.NotNil(t, stats.CurrentBudget)
	assert.Equal(t, &start, stats.CurrentBudget.StartDate)
	assert.Equal(t, &end, stats.CurrentBudget.EndDate)
}

func TestCompute_ZeroTotalsDoNotDivide(t *testing.T) {
	budgets := []domain.Budget{budget(1, idPtr(storeA), 2024, 0, item("Equipment: a", 0))}

	stats := testCompiler().Compute(nil, budgets, testEntities, nil)

	assert.Equal(t, 0, stats.OverallUtilization)
	assert.Equal(t, 0, stats.YearlyTrends[0].Utilization)
	assert.Equal(t, 0, stats.EntitiesBreakdown[0].Utilization)
	assert.Equal(t, 0, stats.CategoryBreakdown[0].Percentage)
	require.NotNil(t, stats.CurrentBudget)
	assert.Equal(t, 0, stats.CurrentBudget.Utilization)
}

func TestCompute_Idempotent(t *testing.T) {
	budgets := []domain.Budget{
		budget(1, idPtr(storeA), 2024, 1234, item("Equipment: a", 34), item("Software", 1200)),
		budget(2, idPtr(storeB), 2021, 999),
	}
	c := testCompiler()

	first := c.Compute(nil, budgets, testEntities, nil)
	second := c.Compute(nil, budgets, testEntities, nil)

	assert.Equal(t, first, second)
}

func TestCompute_UtilizationBoundsWithDefaultEstimators(t *testing.T) {
	c := NewCompiler()
	c.YearlyEstimator = AgeBasedSpendEstimator{Now: fixedNow(2024)}
	c.Now = fixedNow(2024)
	budgets := []domain.Budget{
		budget(1, idPtr(storeA), 2018, 750000),
		budget(2, idPtr(storeB), 2024, 125000),
		budget(3, idPtr(storeA), 2026, 40000),
	}

	stats := c.Compute(nil, budgets, testEntities, nil)

	for _, e := range stats.EntitiesBreakdown {
		assert.GreaterOrEqual(t, e.Utilization, 0)
		assert.LessOrEqual(t, e.Utilization, 100)
		assert.Equal(t, Percent(e.SpentToDate, e.TotalBudget), e.Utilization)
	}
	for _, y := range stats.YearlyTrends {
		assert.GreaterOrEqual(t, y.Utilization, 0)
		assert.LessOrEqual(t, y.Utilization, 100)
	}
	assert.Equal(t, []int{2018, 2024, 2026}, []int{stats.YearlyTrends[0].Year, stats.YearlyTrends[1].Year, stats.YearlyTrends[2].Year})
}
