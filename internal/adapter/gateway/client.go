// Package gateway is the JSON-over-HTTP client for the inventory API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mquispe/bodegapos/internal/port"
)

const apiRoute = "/api/v1"

// Page size bounds enforced on every paged read. The clamp is part of the
// contract: callers do not need to pre-validate.
const (
	MinItemsPerRequest = 25
	MaxItemsPerRequest = 100
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the API rooted at baseURL (scheme and host,
// without the /api/v1 prefix). httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Products returns the product resource of the API.
func (c *Client) Products() port.ProductGateway {
	return &productResource{c: c}
}

// Categories returns the category resource of the API.
func (c *Client) Categories() port.CategoryGateway {
	return &categoryResource{c: c}
}

// Sales returns the sale resource of the API.
func (c *Client) Sales() port.SaleGateway {
	return &saleResource{c: c}
}

// do issues one request and decodes a 2xx response body into out (skipped when
// out is nil). Transport failures are wrapped; non-2xx responses become a
// *StatusError. No call retries.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiRoute+path, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode %s %s: %w", method, path, err)
	}
	return nil
}

func clampPageNumber(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func clampPageSize(n int) int {
	if n < MinItemsPerRequest {
		return MinItemsPerRequest
	}
	if n > MaxItemsPerRequest {
		return MaxItemsPerRequest
	}
	return n
}
