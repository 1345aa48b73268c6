package schema

import "strings"

var fieldAliases = map[string]string{
	"start":      FieldStartYear,
	"startyear":  FieldStartYear,
	"years":      FieldRetirementYears,
	"length":     FieldRetirementYears,
	"portfolio":  FieldPortfolioStart,
	"balance":    FieldPortfolioStart,
	"stock":      FieldStockAllocation,
	"withdraw":   FieldWithdrawalStart,
	"wr":         FieldWithdrawalStart,
	"min":        FieldWithdrawalMin,
	"max":        FieldWithdrawalMax,
	"smoothup":   FieldSmoothingUp,
	"smoothdown": FieldSmoothingDown,
	"fee":        FieldManagementFee,
	"inflation":  FieldInflationRate,
}

var fieldKinds = map[string]Kind{
	FieldStartYear:       KindInt,
	FieldRetirementYears: KindInt,
	FieldPortfolioStart:  KindCurrency,
	FieldStockAllocation: KindPercent,
	FieldWithdrawalStart: KindPercent,
	FieldWithdrawalMin:   KindPercent,
	FieldWithdrawalMax:   KindPercent,
	FieldSmoothingUp:     KindPercent,
	FieldSmoothingDown:   KindPercent,
	FieldManagementFee:   KindPercent,
	FieldInflationRate:   KindPercent,
}

// Normalize maps a user-typed field alias to its canonical id.
// Unknown aliases pass through lowercased.
func Normalize(alias string) string {
	normalized := strings.ToLower(alias)

	if canonical, ok := fieldAliases[normalized]; ok {
		return canonical
	}

	return normalized
}

// ParseField parses a raw value for a canonical field according to its
// category. Fields without a known category reject every value.
func ParseField(id, raw string) (float64, error) {
	kind, ok := fieldKinds[id]
	if !ok {
		return 0, &ParseError{Input: raw}
	}

	return Parse(kind, raw)
}

// EditableFields lists the canonical ids accepted by batched edits, in
// display order for usage messages.
func EditableFields() []string {
	return []string{
		FieldStartYear,
		FieldRetirementYears,
		FieldPortfolioStart,
		FieldStockAllocation,
		FieldWithdrawalStart,
		FieldWithdrawalMin,
		FieldWithdrawalMax,
		FieldSmoothingUp,
		FieldSmoothingDown,
		FieldManagementFee,
		FieldInflationRate,
	}
}
