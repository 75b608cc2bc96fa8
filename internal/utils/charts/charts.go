package charts

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1200
	chartHeight = 600
)

var chartBackground = chart.Style{
	Padding: chart.Box{
		Top:    50,
		Left:   50,
		Right:  50,
		Bottom: 50,
	},
	FillColor: chart.ColorWhite,
}

// YearlyTrendsPNG renders a grouped bar chart with an allocated bar and an
// estimated spent bar per fiscal year. It returns nil when there is nothing to draw.
func YearlyTrendsPNG(title string, trends []domain.YearlyTrend) ([]byte, error) {
	if len(trends) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, 2*len(trends))
	maxY := 1.0
	for _, t := range trends {
		allocated := t.TotalBudget.InexactFloat64()
		spent := t.SpentToDate.InexactFloat64()
		maxY = max(maxY, allocated, spent)
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%d", t.Year),
				Value: allocated,
				Style: chart.Style{FillColor: chart.ColorBlue, StrokeColor: chart.ColorBlue, StrokeWidth: 1},
			},
			chart.Value{
				Label: "spent",
				Value: spent,
				Style: chart.Style{FillColor: chart.ColorRed, StrokeColor: chart.ColorRed, StrokeWidth: 1},
			},
		)
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chartBackground,
		BarWidth:   40,
		XAxis:      chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		YAxis: chart.YAxis{
			// A fixed range keeps all-zero years renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.0f", v.(float64))
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render yearly trends chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryBreakdownPNG renders a pie chart of item categories. Categories with
// a zero amount are left out; nil is returned when nothing remains.
func CategoryBreakdownPNG(breakdown []domain.CategoryAmount) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, c := range breakdown {
		if !c.Amount.IsPositive() {
			continue
		}
		label := c.Category
		if label == "" {
			label = "Uncategorized"
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d%%)", label, c.Percentage),
			Value: c.Amount.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:      chartWidth,
		Height:     chartHeight,
		Values:     values,
		Background: chartBackground,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
