package simulation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"retireterm/app/config"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, &config.Config{
		API: config.API{
			SimulationURL:  baseURL,
			AssistantURL:   baseURL,
			TimeoutSeconds: 5,
		},
	})

	client, err := NewClient(di)
	require.NoError(t, err)
	return client
}

func validPayload() Payload {
	return Payload{
		StartYear:               2030,
		RetirementYears:         35,
		PortfolioStart:          500000,
		StockAllocation:         0.6,
		BondAllocation:          0.4,
		WithdrawalRateStart:     0.04,
		WithdrawalRateMin:       0.03,
		WithdrawalRateMax:       0.06,
		WithdrawalSmoothingUp:   0.5,
		WithdrawalSmoothingDown: 1.0,
		InflationRate:           0.03,
		SSRecipients:            []Recipient{},
	}
}

func TestSimulate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/simulate", r.URL.Path)

		w.Write([]byte(`{
			"series": {"min_year": 1928, "max_year": 2023},
			"results": [{"start_year": 1928, "success": true, "yearly_balances": [1, 2], "highlight": true}],
			"summary": {"total_runs": 1, "success_count": 1, "failure_count": 0, "success_rate": 1.0},
			"quantile_indices": [0]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	response, err := client.Simulate(context.Background(), validPayload())
	require.NoError(t, err)

	assert.Equal(t, 1928, response.Series.MinYear)
	require.Len(t, response.Results, 1)
	assert.True(t, response.Results[0].Highlight)
	assert.Equal(t, []float64{1, 2}, response.Results[0].YearlyBalances)
	assert.Equal(t, []int{0}, response.QuantileIndices)
}

// Domain violations fail locally and never reach the service.
func TestSimulateRejectsInvalidPayloadLocally(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	payload := validPayload()
	payload.StockAllocation = 1.5

	_, err := client.Simulate(context.Background(), payload)

	assert.Error(t, err)
	assert.False(t, called)
}

func TestSeriesMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/series/metadata", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Write([]byte(`{"min_year": 1928, "max_year": 2023, "stocks": "Shiller P", "bonds": "Shiller Long Rate"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	metadata, err := client.SeriesMetadata(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1928, metadata.MinYear)
	assert.Equal(t, 2023, metadata.MaxYear)
	assert.Equal(t, "Shiller P", metadata.Stocks)
}
