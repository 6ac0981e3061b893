package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Execute performs spec exactly once and decodes the body into T.
//
// Any 2xx status is a success. Transport failures, other statuses and decode
// failures are classified as TransportError, StatusError and DecodeError.
// With RaiseErrors set the classified error is returned as err; otherwise err
// is always nil and the failure is carried by the Result.
func Execute[T any](ctx context.Context, c *Client, spec RequestSpec[T]) (Result[T], error) {
	body, err := c.do(ctx, spec.Method, spec.URL(), spec.Params)
	if err != nil {
		return Fail[T](c, err)
	}

	decode := spec.Decode
	if decode == nil {
		decode = JSON[T]()
	}
	data, err := decode(body)
	if err != nil {
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			err = &DecodeError{Err: err, Body: body}
		}
		return Fail[T](c, err)
	}
	return Succeeded(data), nil
}

// Fail applies the client's error policy to err.
func Fail[T any](c *Client, err error) (Result[T], error) {
	if c.cfg.RaiseErrors {
		return Result[T]{}, err
	}
	if c.cfg.Verbose {
		c.log.ErrorObj("request failed", "error", err.Error())
	}
	return Failed[T](err), nil
}

func (c *Client) do(ctx context.Context, method Method, target string, params map[string]string) ([]byte, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	session, err := c.getSession()
	if err != nil {
		return nil, &TransportError{Method: string(method), URL: target, Err: err}
	}

	req := session.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	resp, err := req.Execute(string(method), target)
	if err != nil {
		return nil, &TransportError{Method: string(method), URL: target, Err: err}
	}

	resolved := target
	if raw := resp.Request.RawRequest; raw != nil {
		resolved = raw.URL.String()
	}

	if c.cfg.Verbose {
		c.log.InfoObj("response details", "response", map[string]any{
			"code":   resp.StatusCode(),
			"reason": reasonPhrase(resp.StatusCode(), resp.Status()),
			"text":   string(resp.Body()),
			"request": map[string]any{
				"method": string(method),
				"url":    resolved,
				"params": params,
			},
		})
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Method:     string(method),
			URL:        resolved,
			Body:       resp.Body(),
		}
	}
	return resp.Body(), nil
}

// reasonPhrase strips the leading code from a status line ("404 Not Found").
func reasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}
