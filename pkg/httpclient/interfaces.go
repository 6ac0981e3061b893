package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Status() string
	IsError() bool
}

// Request describes one outgoing call. Body is JSON-encoded when set.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any
}

// Client abstracts outgoing HTTP calls so callers can inject fakes or different transports.
type Client interface {
	Send(ctx context.Context, req Request) (Response, error)
	CloseIdleConnections()
}
