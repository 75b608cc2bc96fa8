package budgeting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedNow(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestAgeBasedSpendEstimator(t *testing.T) {
	est := AgeBasedSpendEstimator{Now: fixedNow(2024)}
	total := decimal.NewFromInt(1000)

	tests := []struct {
		name string
		year int
		want string
	}{
		{"current year", 2024, "300"},
		{"one year old", 2023, "450"},
		{"four years old", 2020, "900"},
		{"capped at 95 percent", 2015, "950"},
		{"next year", 2025, "150"},
		{"far future clamps to zero", 2030, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, est.Estimate(total, tt.year))
		})
	}
}

func TestRandomSpendEstimator(t *testing.T) {
	total := decimal.NewFromInt(1000)

	assertDecimal(t, "300", RandomSpendEstimator{Rand: func() float64 { return 0 }}.Estimate(total, 2024))
	assertDecimal(t, "500", RandomSpendEstimator{Rand: func() float64 { return 0.5 }}.Estimate(total, 2024))

	// Default source stays within the 30%-70% band.
	est := RandomSpendEstimator{}
	for i := 0; i < 50; i++ {
		spent := est.Estimate(total, 2024)
		assert.True(t, spent.GreaterThanOrEqual(decimal.NewFromInt(300)), spent.String())
		assert.True(t, spent.LessThanOrEqual(decimal.NewFromInt(700)), spent.String())
	}
}

func TestFixedRatioSpendEstimator(t *testing.T) {
	est := FixedRatioSpendEstimator{Ratio: decimal.RequireFromString("0.333")}
	assertDecimal(t, "33.3", est.Estimate(decimal.NewFromInt(100), 1999))
	assertDecimal(t, "0.33", est.Estimate(decimal.NewFromInt(1), 1999))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(decimal.NewFromInt(10), decimal.Zero))
	assert.Equal(t, 33, Percent(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	assert.Equal(t, 67, Percent(decimal.NewFromInt(2), decimal.NewFromInt(3)))
	assert.Equal(t, 100, Percent(decimal.NewFromInt(7), decimal.NewFromInt(7)))
	assert.Equal(t, 1, Percent(decimal.RequireFromString("0.5"), decimal.NewFromInt(100)))
}
