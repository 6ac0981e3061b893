// Package apiclient is a small typed HTTP client core: it executes
// RequestSpec values against a base URL over one shared connection pool and
// returns either a decoded payload or a classified failure.
package apiclient

import (
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/ninja-client/internal/logger"
	"github.com/samvad-hq/ninja-client/pkg/httpclient"
	"github.com/samvad-hq/ninja-client/pkg/replay"
)

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the diagnostic sink for verbose tracing.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = logger.Ensure(log)
	}
}

// WithTransport sets the round tripper used for live calls.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// Client owns a Config and a lazily created HTTP session shared by all calls.
type Client struct {
	cfg       Config
	log       Logger
	transport http.RoundTripper

	mu       sync.Mutex
	session  *resty.Client
	recorder *replay.Recorder
	sessions int
	closed   bool
}

// NewClient validates cfg and returns a Client. No connection is made until
// the first call.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg: cfg,
		log: logger.NopLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Recorder exposes the cassette recorder once the session exists in replay mode.
func (c *Client) Recorder() *replay.Recorder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recorder
}

// getSession returns the shared session, creating it on first use.
func (c *Client) getSession() (*resty.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	if c.session != nil {
		return c.session, nil
	}

	transport := c.transport
	if c.cfg.UseReplayMode {
		rec, err := replay.NewRecorder(replay.Options{
			StoreType: c.cfg.ReplayStoreType,
			Path:      c.cfg.ReplayStorePath,
			Mode:      c.cfg.ReplayRecordMode,
		}, transport)
		if err != nil {
			return nil, err
		}
		c.recorder = rec
		transport = rec
	}

	c.session = httpclient.NewRestyHTTPClient(c.cfg.Timeout, transport)
	c.sessions++
	return c.session, nil
}

// Close releases pooled connections. Calls made afterwards fail with
// ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.session != nil {
		httpclient.CloseIdleConnections(c.session)
		c.session = nil
	}
	return nil
}
