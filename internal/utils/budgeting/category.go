package budgeting

import (
	"slices"
	"strings"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseCategory returns the text before the first colon of a legacy
// "Category: detail" description. Descriptions without a colon are their own
// category. The result is trimmed either way.
func ParseCategory(description string) string {
	head, _, _ := strings.Cut(description, ":")
	return strings.TrimSpace(head)
}

// ItemCategory returns the explicit category of an item, falling back to the
// category encoded in its description.
func ItemCategory(item domain.BudgetItem) string {
	if item.Category != nil {
		if c := strings.TrimSpace(*item.Category); c != "" {
			return c
		}
	}
	return ParseCategory(item.Description)
}

// CategoryBreakdown sums item amounts per category. Percentages are relative to
// the sum of all amounts. Output is sorted by amount, largest first; ties keep
// the order in which categories were first seen.
func CategoryBreakdown(items []domain.BudgetItem) []domain.CategoryAmount {
	index := make(map[string]int)
	out := make([]domain.CategoryAmount, 0)
	total := decimal.Zero

	for _, item := range items {
		category := ItemCategory(item)
		i, ok := index[category]
		if !ok {
			i = len(out)
			index[category] = i
			out = append(out, domain.CategoryAmount{Category: category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(item.Amount)
		total = total.Add(item.Amount)
	}

	for i := range out {
		out[i].Percentage = Percent(out[i].Amount, total)
	}

	slices.SortStableFunc(out, func(a, b domain.CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})
	return out
}
