// Package transport holds the JSON-over-HTTP plumbing shared by the
// simulation and assistant clients, including the flattening of the
// services' error detail payloads.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/oops"
)

// Error is a failed round trip to an external service. Detail is a
// single human-readable line, taken from the server when available.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Do sends body as JSON (or a bare GET when body is nil) and decodes a
// 2xx response into out. Non-2xx responses and network failures come
// back as *Error.
func Do(ctx context.Context, hc *http.Client, method, url string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return oops.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return oops.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return &Error{Detail: "Request failed. Is the service reachable?"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Detail: "Failed to read response."}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Status: resp.StatusCode, Detail: flattenDetail(data, resp.StatusCode)}
	}

	if err = json.Unmarshal(data, out); err != nil {
		return &Error{Status: resp.StatusCode, Detail: "Received a malformed response."}
	}

	return nil
}

type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// flattenDetail renders the service's {detail} envelope as one line.
// Detail is either a plain string or a list of field validation errors.
func flattenDetail(data []byte, status int) string {
	fallback := fmt.Sprintf("Request failed with status %d.", status)

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Detail) == 0 {
		return fallback
	}

	var plain string
	if err := json.Unmarshal(envelope.Detail, &plain); err == nil {
		return plain
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err != nil || len(fields) == 0 {
		return fallback
	}

	parts := make([]string, 0, len(fields))
	for _, fe := range fields {
		locs := make([]string, 0, len(fe.Loc))
		for _, loc := range fe.Loc {
			locs = append(locs, fmt.Sprint(loc))
		}
		if len(locs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(locs, "."), fe.Msg))
		} else {
			parts = append(parts, fe.Msg)
		}
	}

	return strings.Join(parts, "; ")
}
