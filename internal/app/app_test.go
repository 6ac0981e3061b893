package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samvad-hq/ninja-client/internal/config"
	"github.com/samvad-hq/ninja-client/pkg/publishers"
	"github.com/samvad-hq/ninja-client/pkg/replay"
)

type recordingSink struct {
	mu     sync.Mutex
	events []publishers.Event
}

func (r *recordingSink) Publish(_ context.Context, evt publishers.Event) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return 1, nil
}

func newFakeEconomy(t *testing.T, failType string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		typ := r.URL.Query().Get("type")
		if typ == failType {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/currencyoverview":
			_, _ = w.Write([]byte(`{"lines":[{"currencyTypeName":"Divine Orb","chaosEquivalent":210.5}],"currencyDetails":[]}`))
		case "/itemoverview":
			_, _ = w.Write([]byte(`{"lines":[{"id":1,"name":"` + typ + `","chaosValue":3}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:          baseURL,
		League:           "Sanctum",
		Language:         "en",
		Timeout:          5 * time.Second,
		ReplayStorePath:  "out/apiclient.vcr",
		ReplayStoreType:  "yaml",
		ReplayRecordMode: "new_episodes",
	}
}

func TestClientConfigMapsSettings(t *testing.T) {
	cfg := testConfig("https://poe.ninja/api/data")
	cfg.RaiseErrors = true
	cfg.UseReplayMode = true
	cfg.ReplayRecordMode = "none"

	out, err := ClientConfig(cfg)
	if err != nil {
		t.Fatalf("ClientConfig: %v", err)
	}
	if !out.RaiseErrors || !out.UseReplayMode || out.ReplayRecordMode != replay.ModeNone {
		t.Fatalf("unexpected mapping: %#v", out)
	}
	if out.Timeout != 5*time.Second || out.League != "Sanctum" {
		t.Fatalf("unexpected mapping: %#v", out)
	}

	if _, err := ClientConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewClientsShareOneCore(t *testing.T) {
	clients, err := NewClients(testConfig("https://poe.ninja/api/data"), nil)
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	defer clients.Close()

	if clients.Economy.Client() != clients.Core || clients.Builds.Client() != clients.Core {
		t.Fatalf("domain APIs should share the core client")
	}
}

func TestSnapshotterPublishesEveryOverview(t *testing.T) {
	srv := newFakeEconomy(t, "")
	clients, err := NewClients(testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	defer clients.Close()

	sink := &recordingSink{}
	overviews := []Overview{
		{Kind: KindCurrency, Name: "Currency"},
		{Kind: KindItem, Name: "UniqueJewel"},
		{Kind: KindItem, Name: "Scarab"},
	}

	summary, err := NewSnapshotter(clients.Economy, sink, 2, nil).Run(context.Background(), overviews)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Requested != 3 || summary.Fetched != 3 || summary.Published != 3 || len(summary.Failed) != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}

	names := make([]string, 0, len(sink.events))
	for _, evt := range sink.events {
		if evt.League != "Sanctum" {
			t.Fatalf("league = %q", evt.League)
		}
		names = append(names, evt.Overview)
	}
	sort.Strings(names)
	if strings.Join(names, ",") != "Currency,Scarab,UniqueJewel" {
		t.Fatalf("unexpected overviews: %v", names)
	}

	for _, evt := range sink.events {
		if evt.Overview != "UniqueJewel" {
			continue
		}
		var payload struct {
			Lines []struct {
				Name string `json:"name"`
			} `json:"lines"`
		}
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if len(payload.Lines) != 1 || payload.Lines[0].Name != "UniqueJewel" {
			t.Fatalf("unexpected payload: %s", evt.Payload)
		}
	}
}

func TestSnapshotterContinuesPastFailures(t *testing.T) {
	srv := newFakeEconomy(t, "Scarab")
	clients, err := NewClients(testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	defer clients.Close()

	sink := &recordingSink{}
	summary, err := NewSnapshotter(clients.Economy, sink, 4, nil).Run(context.Background(), []Overview{
		{Kind: KindItem, Name: "Scarab"},
		{Kind: KindItem, Name: "Fossil"},
	})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if !strings.Contains(err.Error(), "item/Scarab") || !strings.Contains(err.Error(), "Request error") {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Fetched != 1 || len(summary.Failed) != 1 || summary.Failed[0] != "item/Scarab" {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if len(sink.events) != 1 || sink.events[0].Overview != "Fossil" {
		t.Fatalf("unexpected events: %#v", sink.events)
	}
}

func TestSnapshotterRaiseModeStillAggregates(t *testing.T) {
	srv := newFakeEconomy(t, "Fragment")
	cfg := testConfig(srv.URL)
	cfg.RaiseErrors = true
	clients, err := NewClients(cfg, nil)
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	defer clients.Close()

	summary, err := NewSnapshotter(clients.Economy, nil, 1, nil).Run(context.Background(), []Overview{
		{Kind: KindCurrency, Name: "Currency"},
		{Kind: KindCurrency, Name: "Fragment"},
	})
	if err == nil || summary.Fetched != 1 {
		t.Fatalf("expected one failure, got summary=%#v err=%v", summary, err)
	}
}

func TestParseOverviewAndAll(t *testing.T) {
	o, err := ParseOverview("fragment")
	if err != nil || o.Kind != KindCurrency || o.Name != "Fragment" {
		t.Fatalf("ParseOverview(fragment) = %#v, %v", o, err)
	}
	o, err = ParseOverview("UniqueJewel")
	if err != nil || o.Kind != KindItem {
		t.Fatalf("ParseOverview(UniqueJewel) = %#v, %v", o, err)
	}
	if _, err := ParseOverview("Mirror"); err == nil {
		t.Fatalf("expected error for unknown overview")
	}
	if n := len(AllOverviews()); n != 28 {
		t.Fatalf("expected 28 overviews, got %d", n)
	}
}

func TestLoadFanout(t *testing.T) {
	fanout, err := LoadFanout(context.Background(), "", nil)
	if err != nil || fanout != nil {
		t.Fatalf("empty path should yield no fanout, got %v %v", fanout, err)
	}

	path := filepath.Join(t.TempDir(), "publishers.yaml")
	raw := `
publishers:
  - id: hook
    type: http
    http:
      url: https://example.com/hook
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	fanout, err = LoadFanout(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("LoadFanout: %v", err)
	}
	defer fanout.Close()
	if fanout.Size() != 1 {
		t.Fatalf("size = %d", fanout.Size())
	}
}
