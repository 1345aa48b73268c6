package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "int", kind: KindInt, raw: "2030", want: 2030},
		{name: "int with spaces", kind: KindInt, raw: "  35 ", want: 35},
		{name: "int rejects decimal", kind: KindInt, raw: "35.5", wantErr: true},
		{name: "int rejects text", kind: KindInt, raw: "abc", wantErr: true},
		{name: "currency", kind: KindCurrency, raw: "500000.50", want: 500000.50},
		{name: "currency rejects text", kind: KindCurrency, raw: "a lot", wantErr: true},
		{name: "percent divides by 100", kind: KindPercent, raw: "60", want: 0.6},
		{name: "percent fraction input", kind: KindPercent, raw: "4", want: 0.04},
		{name: "percent rejects text", kind: KindPercent, raw: "sixty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.raw)

			if tt.wantErr {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func stepByID(t *testing.T, id string) Step {
	t.Helper()

	for _, step := range BaseSteps() {
		if step.ID == id {
			return step
		}
	}

	t.Fatalf("no base step %q", id)
	return Step{}
}

func TestValidateDomains(t *testing.T) {
	answers := map[string]float64{}

	tests := []struct {
		field string
		value float64
		ok    bool
	}{
		{FieldRetirementYears, 0, true},
		{FieldRetirementYears, -1, false},
		{FieldPortfolioStart, 1, true},
		{FieldPortfolioStart, 0, false},
		{FieldStockAllocation, 0.6, true},
		{FieldStockAllocation, 1.2, false},
		{FieldInflationRate, 0.03, true},
		{FieldInflationRate, -0.01, false},
		{FieldRecipientCount, 3, true},
		{FieldRecipientCount, 4, false},
		{FieldRecipientCount, -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s=%v", tt.field, tt.value), func(t *testing.T) {
			err := Validate(stepByID(t, tt.field), tt.value, answers)

			if tt.ok {
				assert.NoError(t, err)
			} else {
				var valErr *ValidationError
				assert.ErrorAs(t, err, &valErr)
			}
		})
	}
}

// Withdrawal rates must satisfy min <= start <= max for every accepted
// combination, no matter which order the values arrive in. Values are
// only checked against what is already known.
func TestValidateWithdrawalRateOrdering(t *testing.T) {
	t.Run("start after min and max", func(t *testing.T) {
		answers := map[string]float64{
			FieldWithdrawalMin: 0.03,
			FieldWithdrawalMax: 0.06,
		}

		assert.NoError(t, Validate(stepByID(t, FieldWithdrawalStart), 0.04, answers))
		assert.Error(t, Validate(stepByID(t, FieldWithdrawalStart), 0.02, answers))
		assert.Error(t, Validate(stepByID(t, FieldWithdrawalStart), 0.07, answers))
	})

	t.Run("min checked against known start", func(t *testing.T) {
		answers := map[string]float64{FieldWithdrawalStart: 0.04}

		assert.NoError(t, Validate(stepByID(t, FieldWithdrawalMin), 0.03, answers))
		assert.Error(t, Validate(stepByID(t, FieldWithdrawalMin), 0.05, answers))
	})

	t.Run("max checked against known start and min", func(t *testing.T) {
		answers := map[string]float64{
			FieldWithdrawalStart: 0.04,
			FieldWithdrawalMin:   0.03,
		}

		assert.NoError(t, Validate(stepByID(t, FieldWithdrawalMax), 0.06, answers))
		assert.Error(t, Validate(stepByID(t, FieldWithdrawalMax), 0.02, answers))
	})

	t.Run("nothing known yet accepts any in-domain rate", func(t *testing.T) {
		assert.NoError(t, Validate(stepByID(t, FieldWithdrawalMin), 0.9, map[string]float64{}))
	})
}

// Validating the same value against the same partial answer set twice
// yields the same outcome.
func TestValidateIdempotent(t *testing.T) {
	answers := map[string]float64{FieldWithdrawalStart: 0.04}
	step := stepByID(t, FieldWithdrawalMin)

	first := Validate(step, 0.05, answers)
	second := Validate(step, 0.05, answers)

	assert.Error(t, first)
	assert.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestValidateRecipientRules(t *testing.T) {
	steps := RecipientSteps(1)
	startStep, amountStep := steps[0], steps[1]

	answers := map[string]float64{FieldStartYear: 2030}

	assert.NoError(t, Validate(startStep, 2035, answers))
	assert.Error(t, Validate(startStep, 2020, answers))
	assert.Error(t, Validate(startStep, -1, map[string]float64{}))
	assert.NoError(t, Validate(startStep, 1990, map[string]float64{}))

	assert.NoError(t, Validate(amountStep, 0, answers))
	assert.Error(t, Validate(amountStep, -100, answers))
}

func TestRecipientSteps(t *testing.T) {
	t.Run("synthesizes alternating pairs", func(t *testing.T) {
		steps := RecipientSteps(2)
		require.Len(t, steps, 4)

		for i := 0; i < 2; i++ {
			start, amount := steps[2*i], steps[2*i+1]

			assert.Equal(t, fmt.Sprintf("ss_%d_start_year", i), start.ID)
			assert.Equal(t, FieldRecipientStartYear, start.RecipientField)
			assert.Equal(t, i, start.RecipientIndex)
			assert.Equal(t, KindInt, start.Kind)

			assert.Equal(t, fmt.Sprintf("ss_%d_monthly_amount", i), amount.ID)
			assert.Equal(t, FieldRecipientMonthly, amount.RecipientField)
			assert.Equal(t, i, amount.RecipientIndex)
			assert.Equal(t, KindCurrency, amount.Kind)
		}
	})

	t.Run("zero count yields no steps", func(t *testing.T) {
		assert.Empty(t, RecipientSteps(0))
	})
}

func TestBaseStepsEndWithRecipientCount(t *testing.T) {
	steps := BaseSteps()

	require.NotEmpty(t, steps)
	assert.Equal(t, FieldRecipientCount, steps[len(steps)-1].ID)

	for _, step := range steps {
		assert.False(t, step.IsRecipient(), step.ID)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, FieldStartYear, Normalize("start"))
	assert.Equal(t, FieldStartYear, Normalize("STARTYEAR"))
	assert.Equal(t, FieldWithdrawalStart, Normalize("wr"))
	assert.Equal(t, FieldSmoothingUp, Normalize("smoothup"))
	assert.Equal(t, FieldManagementFee, Normalize("fee"))

	// Unknown aliases pass through lowercased.
	assert.Equal(t, "bogus", Normalize("Bogus"))
}

func TestParseField(t *testing.T) {
	value, err := ParseField(FieldStockAllocation, "60")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, value, 1e-12)

	value, err = ParseField(FieldStartYear, "2030")
	require.NoError(t, err)
	assert.Equal(t, 2030.0, value)

	_, err = ParseField(FieldPortfolioStart, "abc")
	assert.Error(t, err)

	// Fields without a category reject every value.
	_, err = ParseField("bogus", "1")
	assert.Error(t, err)
}
