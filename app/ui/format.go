package ui

import (
	"fmt"
	"strings"

	"retireterm/app/client/simulation"
)

// formatCurrency renders a whole-dollar amount with thousands grouping.
func formatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	digits := fmt.Sprintf("%.0f", value)

	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	if negative {
		return "-$" + grouped.String()
	}

	return "$" + grouped.String()
}

// formatCompactCurrency renders large amounts in K/M/B notation for
// axis labels.
func formatCompactCurrency(value float64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.1fB", value/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.1fM", value/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.1fK", value/1e3)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value*100)
}

// formatInputs is the one-line parameter summary shown above each chart.
func formatInputs(inputs simulation.Payload) string {
	allocation := fmt.Sprintf("%s / %s",
		formatPercent(inputs.StockAllocation), formatPercent(inputs.BondAllocation))
	withdrawal := fmt.Sprintf("%s (%s-%s)",
		formatPercent(inputs.WithdrawalRateStart),
		formatPercent(inputs.WithdrawalRateMin),
		formatPercent(inputs.WithdrawalRateMax))

	parts := []string{
		fmt.Sprintf("Start %d", inputs.StartYear),
		fmt.Sprintf("%dy", inputs.RetirementYears),
		formatCurrency(inputs.PortfolioStart),
		"Alloc " + allocation,
		"WR " + withdrawal,
		"Smooth Up " + formatPercent(inputs.WithdrawalSmoothingUp),
		"Smooth Down " + formatPercent(inputs.WithdrawalSmoothingDown),
		"Fee " + formatPercent(inputs.ManagementFee),
		"Infl " + formatPercent(inputs.InflationRate),
		fmt.Sprintf("SS %d", len(inputs.SSRecipients)),
	}

	return strings.Join(parts, " | ")
}
