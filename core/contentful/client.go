package contentful

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultLimit = 1000

// Query describes a single entries request.
type Query struct {
	// ContentType is the content type id to retrieve.
	ContentType string
	// Order is an optional ordering directive, e.g. "-fields.publishedDate".
	Order string
	// Include is the link depth resolved server side (0-2 in practice).
	Include int
	// Limit is the page size; zero uses the configured default.
	Limit int
}

// Client retrieves entries from the content delivery API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a client for the configured space.
// It fails with a *ConfigError before any request can be made if credentials are missing.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://cdn.contentful.com"
	}
	if cfg.Environment == "" {
		cfg.Environment = "master"
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

// EntriesURL builds the request URL for a query.
func (c *Client) EntriesURL(q Query) string {
	limit := q.Limit
	if limit <= 0 {
		limit = c.cfg.Limit
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	params := url.Values{}
	params.Set("content_type", q.ContentType)
	params.Set("include", strconv.Itoa(q.Include))
	params.Set("limit", strconv.Itoa(limit))
	if q.Order != "" {
		params.Set("order", q.Order)
	}

	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.SpaceID), url.PathEscape(c.cfg.Environment), params.Encode())
}

// Fetch issues one entries request and returns the decoded payload.
// A non-success status yields a *FetchError carrying the status and body. There are no retries.
func (c *Client) Fetch(ctx context.Context, q Query) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.EntriesURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", q.ContentType, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.DeliveryToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", q.ContentType, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", q.ContentType, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			ContentType: q.ContentType,
			StatusCode:  resp.StatusCode,
			Status:      http.StatusText(resp.StatusCode),
			Body:        string(body),
		}
	}

	payload, err := ParsePayload(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", q.ContentType, err)
	}
	return payload, nil
}
