package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClientClosed is returned for calls made after Close.
	ErrClientClosed = errors.New("client is closed")
	// ErrInvalidMethod is returned for request methods other than GET and POST.
	ErrInvalidMethod = errors.New("unsupported request method")
)

var (
	_ error = &TransportError{}
	_ error = &StatusError{}
	_ error = &DecodeError{}
)

// TransportError means no response was obtained: connection failure, timeout,
// cancellation or a cassette failure in replay mode.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError means a response arrived with a status outside 2xx.
type StatusError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("Request error: %s (%s %s)", e.Status, e.Method, e.URL)
	if snippet := bodySnippet(e.Body); snippet != "" {
		msg += ": " + snippet
	}
	return msg
}

// DecodeError means the body was not valid JSON or did not fit the expected shape.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return "Decode error: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
