package publishers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/ninja-client/internal/logger"
	"github.com/samvad-hq/ninja-client/pkg/httpclient"
)

// OverviewHeader carries the overview name of the published event.
const OverviewHeader = "X-Ninja-Overview"

type httpPublisher struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  httpclient.Client
	typ     string
	log     Logger
}

func newHTTPPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("publisher %q missing http configuration", cfg.ID)
	}

	client := httpclient.NewRestyClient(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second, nil)

	return &httpPublisher{
		id:      cfg.ID,
		typ:     TypeHTTP,
		method:  cfg.HTTP.Method,
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  client,
		log:     logger.Ensure(log),
	}, nil
}

func (h *httpPublisher) ID() string   { return h.id }
func (h *httpPublisher) Type() string { return h.typ }

func (h *httpPublisher) Publish(ctx context.Context, evt Event) error {
	headers := make(map[string]string, len(h.headers)+1)
	for k, v := range h.headers {
		headers[k] = v
	}
	headers[OverviewHeader] = evt.Overview

	resp, err := h.client.Send(ctx, httpclient.Request{
		Method:  h.method,
		URL:     h.url,
		Headers: headers,
		Body:    evt,
	})
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		snippet := readBodySnippet(resp.Body())
		h.log.WarnObj("http publisher rejected event", "publisher_http_error", map[string]any{
			"publisher_id": h.id,
			"status":       resp.StatusCode(),
		})
		return fmt.Errorf("http response status %d: %s", resp.StatusCode(), snippet)
	}
	h.log.DebugObj("http publisher delivered event", "publisher_http_delivery", map[string]any{
		"publisher_id": h.id,
		"overview":     evt.Overview,
	})
	return nil
}

// Close drops pooled connections to the sink.
func (h *httpPublisher) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
