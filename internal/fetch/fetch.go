// Package fetch downloads puzzle input from the remote input endpoint.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/aocrun/internal/config"
)

// userAgent identifies aocrun to the input endpoint.
const userAgent = "aocrun (+https://github.com/AndreyAkinshin/aocrun)"

// Request identifies the input to fetch. Year 0 means the configured year.
type Request struct {
	Day  int
	Year int
}

// StatusError is returned when the endpoint answers with a non-success status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("input request failed: %s", e.Status)
}

// Client performs single, unretried input requests.
type Client struct {
	baseURL string
	session string
	year    int
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for transport faults.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a Client from the process configuration.
// The default HTTP client has no timeout; cancellation comes from the caller's context.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: cfg.Session,
		year:    cfg.Year,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the address of the input for day and year.
func (c *Client) URL(day, year int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
}

// Fetch requests the input text for req. A non-success status yields a
// *StatusError; transport faults are logged and returned wrapped.
func (c *Client) Fetch(ctx context.Context, req Request) (string, error) {
	year := req.Year
	if year == 0 {
		year = c.year
	}
	url := c.URL(req.Day, year)

	if c.session == "" {
		c.log.Warn("no session cookie configured; the input request will likely be rejected",
			zap.String("env", config.EnvSession))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build input request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	c.log.Debug("fetching input", zap.String("url", url))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error("input request failed", zap.String("url", url), zap.Error(err))
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: statusText(resp)}
		c.log.Error("input request rejected", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return "", statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("reading input response failed", zap.String("url", url), zap.Error(err))
		return "", fmt.Errorf("read input response: %w", err)
	}

	return string(body), nil
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
