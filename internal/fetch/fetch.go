package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pantrypal/recipe-search-api/internal/logger"
	"go.uber.org/zap"
)

// Fetcher retrieves the raw body of a URL. A nil byte slice with a nil
// error means the remote answered with an error status and there is no
// data; callers treat that the same as an empty body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is an http-backed Fetcher.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Fetcher with a sane default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Get issues a single GET request with no custom headers and no retries.
// Non-2xx responses return (nil, nil): the remote spoke HTTP but had no
// data for us. Transport-level failures return an error.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Get().Debug("fetch returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
