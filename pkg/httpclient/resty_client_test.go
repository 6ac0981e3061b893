package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRestyClientSendPostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("X-Trace"); got != "abc" {
			t.Errorf("X-Trace = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if strings.TrimSpace(string(body)) != `{"league":"Sanctum"}` {
			t.Errorf("body = %s", body)
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewRestyClient(2*time.Second, nil)
	defer c.CloseIdleConnections()

	resp, err := c.Send(context.Background(), Request{
		Method:  http.MethodPut,
		URL:     srv.URL + "/hook",
		Headers: map[string]string{"X-Trace": "abc"},
		Body:    map[string]string{"league": "Sanctum"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.StatusCode() != http.StatusAccepted || resp.IsError() {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("body = %s", resp.Body())
	}
}

func TestRestyClientSendReportsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	var c Client = NewRestyClient(time.Second, nil)
	resp, err := c.Send(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !resp.IsError() || resp.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400 error response, got %d", resp.StatusCode())
	}
}

type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.next.RoundTrip(req)
}

func TestNewRestyHTTPClientUsesTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rt := &countingTransport{next: http.DefaultTransport}
	c := NewRestyHTTPClient(time.Second, rt)
	resp, err := c.R().Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if rt.calls != 1 {
		t.Fatalf("expected exactly one round trip without retries, got %d", rt.calls)
	}
}
