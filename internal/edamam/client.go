package edamam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pantrypal/recipe-search-api/internal/fetch"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"go.uber.org/zap"
)

// DefaultEndpoint is the Edamam recipe search endpoint.
const DefaultEndpoint = "https://api.edamam.com/search"

// Client queries the Edamam recipe search API.
type Client struct {
	appID    string
	apiKey   string
	endpoint string
	fetcher  fetch.Fetcher
}

// NewClient creates an Edamam client. An empty endpoint falls back to
// DefaultEndpoint.
func NewClient(appID, apiKey, endpoint string, fetcher fetch.Fetcher) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		appID:    appID,
		apiKey:   apiKey,
		endpoint: endpoint,
		fetcher:  fetcher,
	}
}

// BuildQuery constructs the search URL for the given ingredient terms.
// Each term is trimmed, lowercased, wrapped in literal double quotes and
// percent-encoded (space as +); terms are joined with a literal +. An
// empty term list yields an empty q value.
func (c *Client) BuildQuery(terms []string, maxResults int) string {
	encoded := make([]string, 0, len(terms))
	for _, term := range terms {
		cleaned := `"` + strings.ToLower(strings.TrimSpace(term)) + `"`
		encoded = append(encoded, url.QueryEscape(cleaned))
	}

	return fmt.Sprintf("%s?q=%s&app_id=%s&app_key=%s&from=0&to=%d",
		c.endpoint, strings.Join(encoded, "+"), c.appID, c.apiKey, maxResults)
}

// Search queries the API and returns the hits in response order. A failed
// or empty response yields no hits and no error; a response body that
// cannot be parsed is reported as an error.
func (c *Client) Search(ctx context.Context, terms []string, maxResults int) ([]Hit, error) {
	queryURL := c.BuildQuery(terms, maxResults)

	body, err := c.fetcher.Get(ctx, queryURL)
	if err != nil {
		logger.Get().Warn("edamam search request failed", zap.Error(err))
		return nil, nil
	}
	if len(body) == 0 {
		return nil, nil
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse edamam response: %w", err)
	}

	return resp.Hits, nil
}
