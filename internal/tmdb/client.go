package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	baseURL   = "https://api.themoviedb.org/3"
	userAgent = "discoverarr/0.1"
)

// One request per pageDelay keeps discovery pagination polite. There is
// no retry: a failed page aborts the whole run.
const pageDelay = 250 * time.Millisecond

// Client is a minimal TMDb v3 API client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a TMDb client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient:  &http.Client{},
		baseURL:     baseURL,
		apiKey:      apiKey,
		userAgent:   userAgent,
		rateLimiter: rate.NewLimiter(rate.Every(pageDelay), 1),
	}
}

// doJSON performs a GET against the API and decodes the response body
// into out. Non-2xx responses become errors carrying TMDb's status
// message when one is present.
func (c *Client) doJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(b, &apiErr) == nil && apiErr.StatusMessage != "" {
			return fmt.Errorf("tmdb error (%d): %s", resp.StatusCode, apiErr.StatusMessage)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
