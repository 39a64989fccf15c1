// Package ygoprodeck fetches raw card and card-set records from the
// YGOPRODeck API.
package ygoprodeck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultCardInfoURL lists every card including misc info (alternate names).
	DefaultCardInfoURL = "https://db.ygoprodeck.com/api/v7/cardinfo.php?misc=yes"

	// DefaultCardSetsURL lists every card set with its release dates.
	DefaultCardSetsURL = "https://db.ygoprodeck.com/api/v7/cardsets.php"

	// cardinfo.php returns the whole catalog in one response.
	requestTimeout = 2 * time.Minute
)

// Options configures a Client. Zero values fall back to the public endpoints.
type Options struct {
	CardInfoURL       string
	CardSetsURL       string
	RequestsPerSecond float64
	UserAgent         string
	HTTPClient        *http.Client
}

// Client talks to the provider. Requests are never retried: a failure is
// returned to the caller as is.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
	cardInfoURL string
	cardSetsURL string
}

// NewClient creates a provider client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	c := &Client{
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(limit, 1),
		userAgent:   opts.UserAgent,
		cardInfoURL: opts.CardInfoURL,
		cardSetsURL: opts.CardSetsURL,
	}
	if c.userAgent == "" {
		c.userAgent = "jjlf"
	}
	if c.cardInfoURL == "" {
		c.cardInfoURL = DefaultCardInfoURL
	}
	if c.cardSetsURL == "" {
		c.cardSetsURL = DefaultCardSetsURL
	}
	return c
}

// FetchCards retrieves the full raw card list.
func (c *Client) FetchCards(ctx context.Context) ([]Card, error) {
	var resp CardInfoResponse
	if err := c.doRequest(ctx, c.cardInfoURL, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("failed to fetch cards: response has no data field")
	}
	return resp.Data, nil
}

// FetchCardSets retrieves the raw card-set list.
func (c *Client) FetchCardSets(ctx context.Context) ([]CardSet, error) {
	var sets []CardSet
	if err := c.doRequest(ctx, c.cardSetsURL, &sets); err != nil {
		return nil, fmt.Errorf("failed to fetch card sets: %w", err)
	}
	return sets, nil
}

func (c *Client) doRequest(ctx context.Context, url string, result any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request to %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
