package budgeting

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// SpendEstimator estimates how much of an allocation has been spent.
// There is no actual-spend tracking yet, so every implementation is a heuristic.
type SpendEstimator interface {
	Estimate(total decimal.Decimal, year int) decimal.Decimal
}

var (
	minRandomRatio  = decimal.NewFromFloat(0.3)
	randomRatioSpan = decimal.NewFromFloat(0.4)

	baseAgeRatio    = decimal.NewFromFloat(0.3)
	ageRatioPerYear = decimal.NewFromFloat(0.15)
	maxAgeRatio     = decimal.NewFromFloat(0.95)
)

// RandomSpendEstimator returns total * (0.3 + r*0.4) with r drawn from Rand.
type RandomSpendEstimator struct {
	// Rand returns a value in [0,1). Defaults to math/rand/v2 Float64.
	Rand func() float64
}

func (e RandomSpendEstimator) Estimate(total decimal.Decimal, _ int) decimal.Decimal {
	r := rand.Float64
	if e.Rand != nil {
		r = e.Rand
	}
	ratio := minRandomRatio.Add(decimal.NewFromFloat(r()).Mul(randomRatioSpan))
	return roundMoney(total.Mul(ratio))
}

// AgeBasedSpendEstimator returns total * min(0.3 + age*0.15, 0.95) where age is
// the number of calendar years since year. Future years are clamped at zero.
type AgeBasedSpendEstimator struct {
	Now func() time.Time
}

func (e AgeBasedSpendEstimator) Estimate(total decimal.Decimal, year int) decimal.Decimal {
	return roundMoney(total.Mul(e.Ratio(year)))
}

// Ratio is the spent ratio applied to an allocation of the given fiscal year.
func (e AgeBasedSpendEstimator) Ratio(year int) decimal.Decimal {
	age := int64(currentYear(e.Now) - year)
	ratio := baseAgeRatio.Add(ageRatioPerYear.Mul(decimal.NewFromInt(age)))
	if ratio.GreaterThan(maxAgeRatio) {
		return maxAgeRatio
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// FixedRatioSpendEstimator applies the same ratio to every allocation.
type FixedRatioSpendEstimator struct {
	Ratio decimal.Decimal
}

func (e FixedRatioSpendEstimator) Estimate(total decimal.Decimal, _ int) decimal.Decimal {
	return roundMoney(total.Mul(e.Ratio))
}

func currentYear(now func() time.Time) int {
	if now == nil {
		return time.Now().Year()
	}
	return now().Year()
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns round(part/whole*100), or 0 when whole is zero.
func Percent(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Mul(decimal.NewFromInt(100)).Div(whole).Round(0).IntPart())
}
