package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
// HTTP publishers send through it.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration, transport http.RoundTripper) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout, transport)}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
// A nil transport keeps resty's default pooled transport.
func NewRestyHTTPClient(timeout time.Duration, transport http.RoundTripper) *resty.Client {
	return newRestyBaseClient(timeout, transport)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout and no retries.
func newRestyBaseClient(timeout time.Duration, transport http.RoundTripper) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	c.SetHeader("Accept", "application/json")
	if transport != nil {
		c.SetTransport(transport)
	}
	return c
}

// Send performs req with the client's timeout and no retries.
func (r *RestyClient) Send(ctx context.Context, req Request) (Response, error) {
	rr := r.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		rr.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		rr.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// CloseIdleConnections releases pooled connections held by the underlying transport.
func (r *RestyClient) CloseIdleConnections() {
	CloseIdleConnections(r.client)
}

// CloseIdleConnections releases pooled connections held by a resty client's http.Client.
func CloseIdleConnections(c *resty.Client) {
	if c == nil {
		return
	}
	c.GetClient().CloseIdleConnections()
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Status() string  { return r.resp.Status() }
func (r *restyResponseAdapter) IsError() bool   { return r.resp.IsError() }
