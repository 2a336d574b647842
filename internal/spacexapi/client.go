package spacexapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"launchset/internal/launch"
)

// ErrNotFound reports that the catalog has no entity for the requested ID.
var ErrNotFound = errors.New("entity not found")

// Rocket is the subset of the rocket document used for enrichment.
type Rocket struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// Launchpad is the subset of the launchpad document used for enrichment.
type Launchpad struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name"`
	FullName  *string  `json:"full_name"`
	Locality  *string  `json:"locality"`
	Region    *string  `json:"region"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// Payload is the subset of the payload document used for enrichment.
type Payload struct {
	ID     string   `json:"id"`
	Name   *string  `json:"name"`
	Type   *string  `json:"type"`
	MassKg *float64 `json:"mass_kg"`
	Orbit  *string  `json:"orbit"`
}

// Core is the subset of the core document used for enrichment.
type Core struct {
	ID         string  `json:"id"`
	Serial     *string `json:"serial"`
	Block      *int    `json:"block"`
	ReuseCount *int    `json:"reuse_count"`
	Status     *string `json:"status"`
}

// Client provides access to the launch catalog API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets a client-wide request timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout, Transport: c.httpClient.Transport}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(agent)
	}
}

// WithRateLimit spaces requests to at most perSecond per second. Zero or a
// negative value disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// New creates a catalog client rooted at baseURL (for example https://api.spacexdata.com/v4).
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse catalog base url: %w", err)
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// PastLaunches fetches every historical launch.
func (c *Client) PastLaunches(ctx context.Context) ([]launch.RawLaunch, error) {
	var launches []launch.RawLaunch
	if err := c.getJSON(ctx, c.baseURL+"/launches/past", "past launches", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// Snapshot fetches a static launch snapshot with the same shape as PastLaunches.
func (c *Client) Snapshot(ctx context.Context, snapshotURL string) ([]launch.RawLaunch, error) {
	snapshotURL = strings.TrimSpace(snapshotURL)
	if snapshotURL == "" {
		return nil, errors.New("snapshot url required")
	}
	var launches []launch.RawLaunch
	if err := c.getJSON(ctx, snapshotURL, "launch snapshot", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// Rocket fetches a rocket by ID.
func (c *Client) Rocket(ctx context.Context, id launch.ID) (*Rocket, error) {
	var payload Rocket
	if err := c.getEntity(ctx, "rockets", id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Launchpad fetches a launchpad by ID.
func (c *Client) Launchpad(ctx context.Context, id launch.ID) (*Launchpad, error) {
	var payload Launchpad
	if err := c.getEntity(ctx, "launchpads", id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Payload fetches a payload by ID.
func (c *Client) Payload(ctx context.Context, id launch.ID) (*Payload, error) {
	var payload Payload
	if err := c.getEntity(ctx, "payloads", id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Core fetches a core by ID.
func (c *Client) Core(ctx context.Context, id launch.ID) (*Core, error) {
	var payload Core
	if err := c.getEntity(ctx, "cores", id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getEntity(ctx context.Context, collection string, id launch.ID, dst any) error {
	if !id.Present() {
		return fmt.Errorf("%s lookup: id must not be empty", collection)
	}
	endpoint := c.baseURL + "/" + collection + "/" + url.PathEscape(strings.TrimSpace(id.String()))
	return c.getJSON(ctx, endpoint, collection+" "+id.String(), dst)
}

func (c *Client) getJSON(ctx context.Context, endpoint, what string, dst any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: rate limit wait: %w", what, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w (latency=%v)", what, ErrNotFound, latency)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s returned %d (latency=%v)", what, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}
