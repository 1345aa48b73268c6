package schema

import "fmt"

// Canonical field ids shared by the step schema, the payload builder
// and the command interpreter.
const (
	FieldStartYear          = "start_year"
	FieldRetirementYears    = "retirement_years"
	FieldPortfolioStart     = "portfolio_start"
	FieldStockAllocation    = "stock_allocation"
	FieldWithdrawalStart    = "withdrawal_rate_start"
	FieldWithdrawalMin      = "withdrawal_rate_min"
	FieldWithdrawalMax      = "withdrawal_rate_max"
	FieldSmoothingUp        = "withdrawal_smoothing_up"
	FieldSmoothingDown      = "withdrawal_smoothing_down"
	FieldManagementFee      = "management_fee"
	FieldInflationRate      = "inflation_rate"
	FieldRecipientCount     = "ss_recipient_count"
	FieldRecipientStartYear = "start_year"
	FieldRecipientMonthly   = "monthly_amount"
)

const MaxRecipients = 3

// Step is one question of the collection schema. Steps are immutable;
// the step list itself grows when the recipient count is answered.
type Step struct {
	ID     string
	Prompt string
	Kind   Kind

	// RecipientField links the step to one field of a recipient entry.
	// Empty for regular steps; RecipientIndex is only meaningful when set.
	RecipientField string
	RecipientIndex int
}

func (s Step) IsRecipient() bool {
	return s.RecipientField != ""
}

// BaseSteps returns the fixed ordered schema, ending in the recipient
// count step that triggers dynamic expansion.
func BaseSteps() []Step {
	return []Step{
		{ID: FieldStartYear, Prompt: "Retirement start year? (e.g., 2030)", Kind: KindInt},
		{ID: FieldRetirementYears, Prompt: "Length of retirement in years?", Kind: KindInt},
		{ID: FieldPortfolioStart, Prompt: "Starting portfolio balance? (e.g., 1000000)", Kind: KindCurrency},
		{ID: FieldStockAllocation, Prompt: "Stock allocation %? (e.g., 60)", Kind: KindPercent},
		{ID: FieldWithdrawalStart, Prompt: "Starting withdrawal rate %? (e.g., 4)", Kind: KindPercent},
		{ID: FieldWithdrawalMin, Prompt: "Minimum withdrawal rate %?", Kind: KindPercent},
		{ID: FieldWithdrawalMax, Prompt: "Maximum withdrawal rate %?", Kind: KindPercent},
		{ID: FieldInflationRate, Prompt: "Inflation rate %? (fixed)", Kind: KindPercent},
		{ID: FieldRecipientCount, Prompt: "Number of Social Security recipients? (0-3)", Kind: KindInt},
	}
}

// RecipientSteps synthesizes 2n steps, alternating start year and
// monthly amount per recipient.
func RecipientSteps(count int) []Step {
	steps := make([]Step, 0, 2*count)

	for i := 0; i < count; i++ {
		steps = append(steps, Step{
			ID:             fmt.Sprintf("ss_%d_start_year", i),
			Prompt:         fmt.Sprintf("SS recipient %d start year?", i+1),
			Kind:           KindInt,
			RecipientField: FieldRecipientStartYear,
			RecipientIndex: i,
		})
		steps = append(steps, Step{
			ID:             fmt.Sprintf("ss_%d_monthly_amount", i),
			Prompt:         fmt.Sprintf("SS recipient %d monthly amount?", i+1),
			Kind:           KindCurrency,
			RecipientField: FieldRecipientMonthly,
			RecipientIndex: i,
		})
	}

	return steps
}
