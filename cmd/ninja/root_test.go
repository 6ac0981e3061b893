package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeNinja(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/currencyoverview":
			if r.URL.Query().Get("league") != "Settlers" {
				http.Error(w, "wrong league", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"lines":[{"currencyTypeName":"Divine Orb","chaosEquivalent":200}]}`))
		case "/itemoverview":
			http.Error(w, "down", http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCurrencyCommandPrintsJSON(t *testing.T) {
	srv := fakeNinja(t)
	t.Setenv("NINJA_BASE_URL", srv.URL)

	out, err := runCLI(t, "currency", "--league", "Settlers")
	if err != nil {
		t.Fatalf("currency: %v", err)
	}
	var payload struct {
		Lines []struct {
			CurrencyTypeName string `json:"currencyTypeName"`
		} `json:"lines"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(payload.Lines) != 1 || payload.Lines[0].CurrencyTypeName != "Divine Orb" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestItemsCommandReportsFailure(t *testing.T) {
	srv := fakeNinja(t)
	t.Setenv("NINJA_BASE_URL", srv.URL)

	out, err := runCLI(t, "items", "Scarab")
	if !errors.Is(err, errRequestFailed) {
		t.Fatalf("expected errRequestFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "Request error") {
		t.Fatalf("expected failure message in error: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should stay empty on failure: %s", out)
	}

	out, err = runCLI(t, "items", "Scarab", "--raise-errors")
	if err == nil || errors.Is(err, errRequestFailed) {
		t.Fatalf("expected the raised request error, got %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should stay empty on failure: %s", out)
	}
}

func TestCommandsRejectBadArguments(t *testing.T) {
	t.Setenv("NINJA_BASE_URL", "http://127.0.0.1:1")

	cases := [][]string{
		{"items", "Mirror"},
		{"currency", "Gold"},
		{"builds", "--timemachine", "week-17"},
		{"builds", "--ladder", "ssf"},
		{"snapshot", "--only", "Mirror"},
	}
	for _, args := range cases {
		if _, err := runCLI(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
