// Package arxiv is a rate-limited client for the arXiv search API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the arXiv query API endpoint.
	BaseURL = "https://export.arxiv.org/api/query"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxResults is the default number of search results.
	DefaultMaxResults = 10

	// requestInterval spaces out API calls per arXiv's usage guidance of
	// one request every three seconds.
	requestInterval = 3 * time.Second
)

// fieldPrefixes maps friendly field names to arXiv query prefixes.
var fieldPrefixes = map[string]string{
	"title":   "ti",
	"author":  "au",
	"summary": "abs",
}

// Client is a rate-limited HTTP client for the arXiv API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new arXiv API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchOptions narrows a search.
type SearchOptions struct {
	// MaxResults caps the number of results; <= 0 uses DefaultMaxResults.
	MaxResults int

	// StartDate and EndDate bound the submission date, formatted YYYYMMDD.
	// Either side may be empty for an open range.
	StartDate string
	EndDate   string

	// Field scopes the query to "title", "author", or "summary". Empty or
	// unknown values search all fields.
	Field string
}

// Search queries arXiv and returns the matching papers. A blank query
// returns ErrEmptyQuery without touching the network.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("search_query", buildSearchQuery(query, opts))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	results := make([]Result, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		// Entries missing required fields are skipped, not fatal.
		if r, ok := mapEntry(entry); ok {
			results = append(results, r)
		}
	}
	return results, nil
}

// buildSearchQuery assembles the arXiv search_query expression: optional
// field scoping plus an optional submittedDate range clause.
func buildSearchQuery(query string, opts SearchOptions) string {
	expr := query
	if prefix, ok := fieldPrefixes[opts.Field]; ok {
		expr = fmt.Sprintf("%s:%q", prefix, query)
	}

	if opts.StartDate != "" || opts.EndDate != "" {
		from := "*"
		if opts.StartDate != "" {
			from = opts.StartDate + "0000"
		}
		to := "*"
		if opts.EndDate != "" {
			to = opts.EndDate + "2359"
		}
		expr = fmt.Sprintf("%s AND submittedDate:[%s TO %s]", expr, from, to)
	}
	return expr
}
