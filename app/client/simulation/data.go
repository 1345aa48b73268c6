package simulation

// Payload is the normalized simulation request. Validate tags mirror
// the service's own input domains so obviously bad requests fail
// locally instead of round-tripping.
type Payload struct {
	StartYear               int         `json:"start_year" validate:"gte=1900"`
	RetirementYears         int         `json:"retirement_years" validate:"gte=0"`
	PortfolioStart          float64     `json:"portfolio_start" validate:"gt=0"`
	StockAllocation         float64     `json:"stock_allocation" validate:"gte=0,lte=1"`
	BondAllocation          float64     `json:"bond_allocation" validate:"gte=0,lte=1"`
	WithdrawalRateStart     float64     `json:"withdrawal_rate_start" validate:"gte=0,lte=1"`
	WithdrawalRateMin       float64     `json:"withdrawal_rate_min" validate:"gte=0,lte=1"`
	WithdrawalRateMax       float64     `json:"withdrawal_rate_max" validate:"gte=0,lte=1"`
	WithdrawalSmoothingUp   float64     `json:"withdrawal_smoothing_up" validate:"gte=0,lte=1"`
	WithdrawalSmoothingDown float64     `json:"withdrawal_smoothing_down" validate:"gte=0,lte=1"`
	ManagementFee           float64     `json:"management_fee" validate:"gte=0,lte=1"`
	InflationRate           float64     `json:"inflation_rate" validate:"gte=0,lte=1"`
	SSRecipients            []Recipient `json:"ss_recipients" validate:"dive"`
}

// Recipient is one Social Security beneficiary in the payload.
type Recipient struct {
	StartYear     int     `json:"start_year" validate:"gte=1900"`
	MonthlyAmount float64 `json:"monthly_amount" validate:"gte=0"`
}

// Result is the simulation outcome for a single historical start year.
type Result struct {
	StartYear         int       `json:"start_year"`
	Success           bool      `json:"success"`
	EndingBalance     float64   `json:"ending_balance"`
	YearlyBalances    []float64 `json:"yearly_balances"`
	YearlyWithdrawals []float64 `json:"yearly_withdrawals"`
	YearlyFees        []float64 `json:"yearly_fees"`
	Highlight         bool      `json:"highlight"`
}

// Summary aggregates a simulation batch.
type Summary struct {
	TotalRuns                int                `json:"total_runs"`
	SuccessCount             int                `json:"success_count"`
	FailureCount             int                `json:"failure_count"`
	SuccessRate              float64            `json:"success_rate"`
	EndingBalancePercentiles map[string]float64 `json:"ending_balance_percentiles"`
	PortfolioQuantiles       map[string]float64 `json:"portfolio_quantiles"`
	SpendingQuantiles        map[string]float64 `json:"spending_quantiles"`
	FeeQuantiles             map[string]float64 `json:"fee_quantiles"`
}

// SeriesBounds is the year coverage of the historical data series.
type SeriesBounds struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

// Response is the simulation service's reply envelope.
type Response struct {
	Series          SeriesBounds `json:"series"`
	Results         []Result     `json:"results"`
	Summary         Summary      `json:"summary"`
	QuantileIndices []int        `json:"quantile_indices"`
}

// Metadata describes the historical series backing the simulations.
type Metadata struct {
	MinYear int    `json:"min_year"`
	MaxYear int    `json:"max_year"`
	Stocks  string `json:"stocks"`
	Bonds   string `json:"bonds"`
}
