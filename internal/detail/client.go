package detail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/recommendation"
)

// Client talks to the catalog API. It implements no retries or timeouts of
// its own; failures surface immediately to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) Product(ctx context.Context, category, id string) (catalog.Product, error) {
	var p catalog.Product
	err := c.get(ctx, fmt.Sprintf("/api/products/%s/%s", category, id), &p)
	return p, err
}

func (c *Client) Recommendations(ctx context.Context, category, id string) ([]recommendation.Result, error) {
	var results []recommendation.Result
	err := c.get(ctx, fmt.Sprintf("/api/products/%s/%s/recommendations", category, id), &results)
	return results, err
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("api: %s (status %d)", apiErr.Error, res.StatusCode)
		}
		return fmt.Errorf("api: unexpected status %d for %s", res.StatusCode, path)
	}

	return json.NewDecoder(res.Body).Decode(into)
}
