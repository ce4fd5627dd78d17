// Package client is the USDT-M futures gateway: a thin typed layer over the
// Binance REST API plus the order parameter resolver that turns caller intent
// into exchange-valid order fields.
package client

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tradekit/binfut/pkg/ratelimit"
)

// Credentials holds the API key pair. The secret never appears in logs or
// error messages.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Client talks to one Binance futures environment. All configuration is fixed
// at construction; a Client is safe for concurrent use.
type Client struct {
	creds      Credentials
	rc         *resty.Client
	recvWindow int64
	limiter    ratelimit.Limiter
	now        func() time.Time
}

// Option adjusts a Client during construction.
type Option func(*Client)

// WithBaseURL points the client at a custom base URL, e.g. an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.rc.SetBaseURL(u) }
}

// WithTestnet points the client at the public futures testnet.
func WithTestnet() Option {
	return func(c *Client) { c.rc.SetBaseURL(TestnetBaseURL) }
}

// WithTimeout overrides the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// WithRecvWindow sets the clock-skew tolerance in milliseconds on signed calls.
func WithRecvWindow(ms int64) Option {
	return func(c *Client) { c.recvWindow = ms }
}

// WithLimiter replaces the default request limiter.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// New builds a mainnet client. The default limiter stays well inside the
// exchange's 2400 request-weight-per-minute budget.
func New(creds Credentials, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(MainnetBaseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "binfut/1.0")

	c := &Client{
		creds:      creds,
		rc:         rc,
		recvWindow: 6000,
		limiter:    ratelimit.NewTokenBucket(300, 20),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the configured base URL.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}
