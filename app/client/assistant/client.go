// Package assistant is the thin client for the natural-language ask
// endpoint. The assistant itself is opaque; only its answer string
// comes back, to be disambiguated by the classify service.
package assistant

import (
	"context"
	"net/http"

	"retireterm/app/client/transport"
	"retireterm/app/config"

	"github.com/samber/do"
)

const askPath = "/api/v1/ask"

type Client struct {
	baseURL string
	hc      *http.Client
}

type askRequest struct {
	Question string `json:"question"`
	Inputs   any    `json:"inputs"`
	Summary  any    `json:"summary"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		baseURL: cfg.API.AssistantURL,
		hc: &http.Client{
			Timeout: cfg.API.Timeout(),
		},
	}, nil
}

// Ask forwards a free-text question together with the current inputs
// and the latest run summary for context.
func (c *Client) Ask(ctx context.Context, question string, inputs, summary any) (string, error) {
	request := askRequest{
		Question: question,
		Inputs:   inputs,
		Summary:  summary,
	}

	var response askResponse
	if err := transport.Do(ctx, c.hc, http.MethodPost, c.baseURL+askPath, request, &response); err != nil {
		return "", err
	}

	return response.Answer, nil
}
