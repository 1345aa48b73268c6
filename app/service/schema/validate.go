package schema

import "fmt"

// Validate enforces per-field domains and cross-field rules against the
// answers gathered so far. Later-entered values are checked against
// earlier ones, never the other way around. A failure never mutates
// anything; the caller re-issues the same prompt.
func Validate(step Step, value float64, answers map[string]float64) error {
	if step.IsRecipient() {
		return validateRecipient(step, value, answers)
	}

	switch step.ID {
	case FieldRetirementYears:
		if value < 0 {
			return &ValidationError{Message: "Retirement length must be 0 or more years."}
		}

	case FieldPortfolioStart:
		if value <= 0 {
			return &ValidationError{Message: "Portfolio balance must be greater than zero."}
		}

	case FieldStockAllocation:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Stock allocation must be between 0% and 100%."}
		}

	case FieldWithdrawalStart:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Withdrawal rate must be between 0% and 100%."}
		}
		if min, ok := answers[FieldWithdrawalMin]; ok && value < min {
			return &ValidationError{Message: "Starting withdrawal rate cannot be below the minimum rate."}
		}
		if max, ok := answers[FieldWithdrawalMax]; ok && value > max {
			return &ValidationError{Message: "Starting withdrawal rate cannot be above the maximum rate."}
		}

	case FieldWithdrawalMin:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Withdrawal rate must be between 0% and 100%."}
		}
		if start, ok := answers[FieldWithdrawalStart]; ok && value > start {
			return &ValidationError{Message: "Minimum withdrawal rate cannot exceed the starting rate."}
		}
		if max, ok := answers[FieldWithdrawalMax]; ok && value > max {
			return &ValidationError{Message: "Minimum withdrawal rate cannot exceed the maximum rate."}
		}

	case FieldWithdrawalMax:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Withdrawal rate must be between 0% and 100%."}
		}
		if start, ok := answers[FieldWithdrawalStart]; ok && value < start {
			return &ValidationError{Message: "Maximum withdrawal rate cannot be below the starting rate."}
		}
		if min, ok := answers[FieldWithdrawalMin]; ok && value < min {
			return &ValidationError{Message: "Maximum withdrawal rate cannot be below the minimum rate."}
		}

	case FieldSmoothingUp, FieldSmoothingDown:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Smoothing must be between 0% and 100%."}
		}

	case FieldManagementFee:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Management fee must be between 0% and 100%."}
		}

	case FieldInflationRate:
		if value < 0 || value > 1 {
			return &ValidationError{Message: "Inflation rate must be between 0% and 100%."}
		}

	case FieldRecipientCount:
		if value < 0 || value > MaxRecipients {
			return &ValidationError{
				Message: fmt.Sprintf("Please enter a number between 0 and %d.", MaxRecipients),
			}
		}
	}

	return nil
}

func validateRecipient(step Step, value float64, answers map[string]float64) error {
	switch step.RecipientField {
	case FieldRecipientMonthly:
		if value < 0 {
			return &ValidationError{Message: "Monthly amount must be 0 or more."}
		}

	case FieldRecipientStartYear:
		if value < 0 {
			return &ValidationError{Message: "Start year must be 0 or more."}
		}
		if retireStart, ok := answers[FieldStartYear]; ok && value < retireStart {
			return &ValidationError{
				Message: fmt.Sprintf("Recipient start year cannot be before retirement start (%d).", int(retireStart)),
			}
		}
	}

	return nil
}
