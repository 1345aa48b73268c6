package simulation

import (
	"context"
	"net/http"

	"retireterm/app/client/transport"
	"retireterm/app/config"

	"github.com/go-playground/validator/v10"
	"github.com/samber/do"
)

const (
	simulatePath = "/api/v1/simulate"
	metadataPath = "/api/v1/series/metadata"
)

type Client struct {
	baseURL  string
	hc       *http.Client
	validate *validator.Validate
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		baseURL: cfg.API.SimulationURL,
		hc: &http.Client{
			Timeout: cfg.API.Timeout(),
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Simulate runs the rolling historical simulation for the payload.
// The payload is validated locally first; domain violations never
// leave the process.
func (c *Client) Simulate(ctx context.Context, payload Payload) (*Response, error) {
	if err := c.validate.Struct(payload); err != nil {
		return nil, &transport.Error{Detail: "Invalid simulation parameters: " + err.Error()}
	}

	var response Response
	if err := transport.Do(ctx, c.hc, http.MethodPost, c.baseURL+simulatePath, payload, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// SeriesMetadata reports the year coverage of the historical series.
func (c *Client) SeriesMetadata(ctx context.Context) (*Metadata, error) {
	var metadata Metadata
	if err := transport.Do(ctx, c.hc, http.MethodGet, c.baseURL+metadataPath, nil, &metadata); err != nil {
		return nil, err
	}

	return &metadata, nil
}
