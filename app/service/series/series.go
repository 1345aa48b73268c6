// Package series reshapes heterogeneous simulation runs into
// chart-ready, year-aligned data. Every operation here is a pure
// function of its inputs.
package series

import (
	"retireterm/app/client/simulation"

	"github.com/elliotchance/pie/v2"
)

// Key selects one of the year-indexed arrays carried by each run.
type Key int

const (
	KeyBalances Key = iota
	KeyWithdrawals
	KeyFees
)

func (k Key) values(result simulation.Result) []float64 {
	switch k {
	case KeyWithdrawals:
		return result.YearlyWithdrawals
	case KeyFees:
		return result.YearlyFees
	default:
		return result.YearlyBalances
	}
}

// Row is one year of aligned values, Values[i] belonging to the i-th
// run. Runs shorter than the row's year carry nil, so shorter series
// are padded rather than truncating longer ones.
type Row struct {
	Year   int
	Values []*float64
}

// AlignRows builds max(len) rows across all runs for the given key.
func AlignRows(results []simulation.Result, key Key) []Row {
	maxLen := pie.Max(pie.Map(results, func(result simulation.Result) int {
		return len(key.values(result))
	}))

	rows := make([]Row, maxLen)
	for year := 0; year < maxLen; year++ {
		row := Row{
			Year:   year,
			Values: make([]*float64, len(results)),
		}
		for i, result := range results {
			values := key.values(result)
			if year < len(values) {
				v := values[year]
				row.Values[i] = &v
			}
		}
		rows[year] = row
	}

	return rows
}

// Range scans all non-nil values for the key across all runs. The
// result always spans zero on both sides so an axis can show it.
func Range(results []simulation.Result, key Key) (float64, float64) {
	min, max := 0.0, 0.0

	for _, result := range results {
		for _, value := range key.values(result) {
			if value < min {
				min = value
			}
			if value > max {
				max = value
			}
		}
	}

	return min, max
}

// Ticks produces count evenly spaced values from min to max inclusive.
// Degenerate inputs collapse to [min, max].
func Ticks(min, max float64, count int) []float64 {
	if count <= 1 || min == max {
		return []float64{min, max}
	}

	step := (max - min) / float64(count-1)

	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = min + step*float64(i)
	}

	return ticks
}

// Filter restricts the runs to the backend-selected quantile subset
// when enabled, and returns all runs unchanged otherwise.
func Filter(results []simulation.Result, quantileIndices []int, enabled bool) []simulation.Result {
	if !enabled {
		return results
	}

	indexSet := make(map[int]struct{}, len(quantileIndices))
	for _, index := range quantileIndices {
		indexSet[index] = struct{}{}
	}

	filtered := make([]simulation.Result, 0, len(quantileIndices))
	for i, result := range results {
		if _, ok := indexSet[i]; ok {
			filtered = append(filtered, result)
		}
	}

	return filtered
}

// Bar is one labeled quantile value for the summary bar tables.
type Bar struct {
	Name  string
	Value float64
}

// QuantileBars orders a quantile map for display, missing entries
// rendering as zero.
func QuantileBars(quantiles map[string]float64) []Bar {
	keys := []string{"p0", "p25", "p50", "p75", "p100"}

	return pie.Map(keys, func(key string) Bar {
		return Bar{Name: key, Value: quantiles[key]}
	})
}
