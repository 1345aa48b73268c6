package ui

import (
	"fmt"
	"math"
	"strings"

	"retireterm/app/client/simulation"
	"retireterm/app/service/conversation"
	"retireterm/app/service/series"
)

const (
	chartHeight = 12
	chartWidth  = 64
	labelWidth  = 9
)

// renderRun turns one simulation run into the stacked chart cards:
// parameter line, balance and withdrawal line charts, quantile tables
// and the batch summary.
func (m *Model) renderRun(run conversation.RunResult) string {
	results := series.Filter(run.Results.Results, run.Results.QuantileIndices, m.quantilesOnly)
	summary := run.Results.Summary

	sections := []string{
		m.styles.Dim.Render(formatInputs(run.Inputs)),
		m.renderLineChart("Portfolio Balance by Year", results, series.KeyBalances, run.Inputs.StartYear),
		m.renderLineChart("Withdrawal by Year", results, series.KeyWithdrawals, run.Inputs.StartYear),
		m.renderQuantileBars("Ending Portfolio Value Quantiles", summary.PortfolioQuantiles),
		m.renderQuantileBars("Total Withdrawal Quantiles", summary.SpendingQuantiles),
		m.renderQuantileBars("Total Fee Quantiles", summary.FeeQuantiles),
		m.renderSummary(run),
	}

	return strings.Join(sections, "\n")
}

func (m *Model) renderLineChart(title string, results []simulation.Result, key series.Key, startYear int) string {
	rows := series.AlignRows(results, key)
	if len(rows) == 0 {
		return m.styles.ChartCard.Render(m.styles.Header.Render(title) + "\nno data")
	}

	min, max := series.Range(results, key)
	ticks := series.Ticks(min, max, m.cfg.Display.TickCount)

	width := len(rows)
	if width > chartWidth {
		width = chartWidth
	}

	grid := make([][]string, chartHeight)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	rowFor := func(value float64) int {
		if max == min {
			return chartHeight - 1
		}
		scaled := (value - min) / (max - min)
		row := chartHeight - 1 - int(math.Round(scaled*float64(chartHeight-1)))
		if row < 0 {
			row = 0
		}
		if row >= chartHeight {
			row = chartHeight - 1
		}
		return row
	}

	// Zero reference line.
	zeroRow := rowFor(0)
	for j := 0; j < width; j++ {
		grid[zeroRow][j] = m.styles.Dim.Render("-")
	}

	for pass := 0; pass < 2; pass++ {
		for si, result := range results {
			// Highlighted run is drawn last so it stays visible.
			if result.Highlight != (pass == 1) {
				continue
			}
			mark := m.styles.Series.Render(".")
			if result.Highlight {
				mark = m.styles.Highlight.Render("*")
			}
			for year, row := range rows {
				value := row.Values[si]
				if value == nil {
					continue
				}
				col := year * width / len(rows)
				grid[rowFor(*value)][col] = mark
			}
		}
	}

	tickRows := make(map[int]string, len(ticks))
	for _, tick := range ticks {
		tickRows[rowFor(tick)] = formatCompactCurrency(tick)
	}

	var body strings.Builder
	for i, gridRow := range grid {
		label := tickRows[i]
		body.WriteString(fmt.Sprintf("%*s|", labelWidth, label))
		body.WriteString(strings.Join(gridRow, ""))
		body.WriteString("\n")
	}

	firstYear := fmt.Sprintf("%d", startYear)
	lastYear := fmt.Sprintf("%d", startYear+len(rows)-1)
	axis := fmt.Sprintf("%*s%s%s%s", labelWidth, "", firstYear,
		strings.Repeat(" ", maxInt(1, width-len(firstYear)-len(lastYear))), lastYear)

	return m.styles.ChartCard.Render(
		m.styles.Header.Render(title) + "\n" + body.String() + axis)
}

func (m *Model) renderQuantileBars(title string, quantiles map[string]float64) string {
	bars := series.QuantileBars(quantiles)

	maxValue := 0.0
	for _, bar := range bars {
		if v := math.Abs(bar.Value); v > maxValue {
			maxValue = v
		}
	}

	var body strings.Builder
	for _, bar := range bars {
		length := 0
		if maxValue > 0 {
			length = int(math.Abs(bar.Value) / maxValue * 40)
		}
		body.WriteString(fmt.Sprintf("%-5s %s %s\n",
			bar.Name,
			m.styles.BarFill.Render(strings.Repeat("#", length)),
			formatCompactCurrency(bar.Value)))
	}

	return m.styles.ChartCard.Render(
		m.styles.Header.Render(title) + "\n" + strings.TrimRight(body.String(), "\n"))
}

func (m *Model) renderSummary(run conversation.RunResult) string {
	summary := run.Results.Summary
	bounds := run.Results.Series

	lines := []string{
		m.styles.Header.Render("Summary"),
		"Withdrawal smoothing up: " + formatPercent(run.Inputs.WithdrawalSmoothingUp),
		"Withdrawal smoothing down: " + formatPercent(run.Inputs.WithdrawalSmoothingDown),
		fmt.Sprintf("Simulations: %d", summary.TotalRuns),
		fmt.Sprintf("Successes: %d", summary.SuccessCount),
		fmt.Sprintf("Failures: %d", summary.FailureCount),
		"Success rate: " + formatPercent(summary.SuccessRate),
		fmt.Sprintf("Start year range: %d - %d", bounds.MinYear, bounds.MaxYear),
	}

	return m.styles.ChartCard.Render(strings.Join(lines, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
