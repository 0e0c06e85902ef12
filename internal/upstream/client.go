package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/pkg/config"
)

const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
)

// Observer receives timing for every upstream call.
type Observer interface {
	ObserveUpstreamRequest(endpoint, outcome string, duration time.Duration)
}

// Request describes a single upstream call.
type Request struct {
	Method string
	// Path is an already expanded upstream path.
	Path string
	// RawQuery is forwarded verbatim and takes precedence over Query.
	RawQuery string
	Query    url.Values
	// Endpoint labels the call in logs and metrics.
	Endpoint string
}

// Client is the shared HTTP client for the SAS backend. It applies the base URL,
// the bearer credential and JSON headers to every call.
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	observer Observer
	logger   *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient constructs a Client from upstream configuration.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured upstream origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs the call and returns the raw body of a 2xx response.
// Non-2xx responses yield *Error; network failures wrap ErrTransport.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = req.Path
	}

	target := c.baseURL + req.Path
	switch {
	case req.RawQuery != "":
		target += "?" + req.RawQuery
	case len(req.Query) > 0:
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request %s %s: %w", method, req.Path, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observe(endpoint, OutcomeTransport, time.Since(start))
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, req.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, OutcomeTransport, time.Since(start))
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrTransport, method, req.Path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe(endpoint, OutcomeRejected, time.Since(start))
		return nil, &Error{Method: method, Path: req.Path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.observe(endpoint, OutcomeSuccess, time.Since(start))
	c.logger.Debug("upstream call",
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return body, nil
}

// GetJSON issues a GET and decodes the body into dest.
func (c *Client) GetJSON(ctx context.Context, req Request, dest interface{}) error {
	req.Method = http.MethodGet
	return c.doJSON(ctx, req, dest)
}

// PostJSON issues a bodiless POST and decodes the body into dest.
func (c *Client) PostJSON(ctx context.Context, req Request, dest interface{}) error {
	req.Method = http.MethodPost
	return c.doJSON(ctx, req, dest)
}

func (c *Client) doJSON(ctx context.Context, req Request, dest interface{}) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, req.Method, req.Path, err)
	}
	return nil
}

// Ping checks that the upstream answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: PathHealth, Endpoint: "health"})
	return err
}

func (c *Client) observe(endpoint, outcome string, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(endpoint, outcome, d)
	}
}
