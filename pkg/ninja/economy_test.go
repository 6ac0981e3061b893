package ninja

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/samvad-hq/ninja-client/pkg/apiclient"
)

type capturedRequest struct {
	path  string
	query url.Values
}

type fakeNinja struct {
	mu       sync.Mutex
	requests []capturedRequest
	srv      *httptest.Server
}

func newFakeNinja(t *testing.T, responses map[string]string) *fakeNinja {
	t.Helper()
	f := &fakeNinja{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, capturedRequest{path: r.URL.Path, query: r.URL.Query()})
		f.mu.Unlock()

		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeNinja) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatalf("no request reached the server")
	}
	return f.requests[len(f.requests)-1]
}

const currencyBody = `{
	"lines": [{
		"currencyTypeName": "Divine Orb",
		"pay": {"id": 1, "league_id": 2, "pay_currency_id": 3, "get_currency_id": 1, "value": 0.0047, "count": 40, "includes_secondary": true},
		"receive": {"id": 9, "value": 215.3, "listing_count": 700},
		"paySparkLine": {"data": [0, 1.2, null], "totalChange": 1.2},
		"chaosEquivalent": 213.1,
		"detailsId": "divine-orb"
	}],
	"currencyDetails": [{"id": 3, "icon": "https://web.poecdn.com/divine.png", "name": "Divine Orb", "tradeId": "divine"}],
	"language": {"name": "en", "translations": {}}
}`

const itemBody = `{"lines":[{"id":7,"name":"The Doctor","stackSize":8,"chaosValue":4500,"divineValue":21.1,"detailsId":"the-doctor","explicitModifiers":[{"text":"Headhunter","optional":false}]}],"language":{"name":"en"}}`

func newTestEconomy(t *testing.T, baseURL string) *EconomyAPI {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.RaiseErrors = true
	api, err := NewEconomyAPI(cfg)
	if err != nil {
		t.Fatalf("NewEconomyAPI: %v", err)
	}
	t.Cleanup(func() { _ = api.Close() })
	return api
}

func TestEconomyCurrencyOverview(t *testing.T) {
	f := newFakeNinja(t, map[string]string{PathCurrencyOverview: currencyBody})
	api := newTestEconomy(t, f.srv.URL)

	res, err := api.GetCurrency(context.Background())
	if err != nil {
		t.Fatalf("GetCurrency: %v", err)
	}
	data, err := res.Unwrap()
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}

	req := f.last(t)
	if req.path != PathCurrencyOverview {
		t.Fatalf("path = %s", req.path)
	}
	for k, want := range map[string]string{"type": "Currency", "league": "Sanctum", "language": "en"} {
		if got := req.query.Get(k); got != want {
			t.Fatalf("query %s = %q, want %q", k, got, want)
		}
	}

	if len(data.Lines) != 1 || data.Lines[0].CurrencyTypeName != "Divine Orb" {
		t.Fatalf("unexpected lines: %#v", data.Lines)
	}
	line := data.Lines[0]
	if line.Pay == nil || line.Pay.Value != 0.0047 || !line.Pay.IncludesSecondary {
		t.Fatalf("pay not decoded: %#v", line.Pay)
	}
	if len(line.PaySparkLine.Data) != 3 || line.PaySparkLine.Data[2] != nil {
		t.Fatalf("sparkline gaps not preserved: %#v", line.PaySparkLine.Data)
	}
	if len(data.CurrencyDetails) != 1 || data.CurrencyDetails[0].TradeID != "divine" {
		t.Fatalf("unexpected details: %#v", data.CurrencyDetails)
	}
	if data.Language.Name != "en" {
		t.Fatalf("language = %q", data.Language.Name)
	}
}

func TestEconomyFragmentsUseCurrencyEndpoint(t *testing.T) {
	f := newFakeNinja(t, map[string]string{PathCurrencyOverview: currencyBody})
	api := newTestEconomy(t, f.srv.URL)

	if _, err := api.GetFragments(context.Background()); err != nil {
		t.Fatalf("GetFragments: %v", err)
	}
	if got := f.last(t).query.Get("type"); got != string(Fragment) {
		t.Fatalf("type = %q", got)
	}
}

func TestEconomyItemOverviewMethods(t *testing.T) {
	f := newFakeNinja(t, map[string]string{PathItemOverview: itemBody})
	api := newTestEconomy(t, f.srv.URL)

	methods := []struct {
		call func(context.Context) (apiclient.Result[ItemResponse], error)
		typ  ItemOverviewType
	}{
		{api.GetDivinationCards, DivinationCard},
		{api.GetArtifacts, Artifact},
		{api.GetOils, Oil},
		{api.GetIncubators, Incubator},
		{api.GetUniqueWeapons, UniqueWeapon},
		{api.GetUniqueArmours, UniqueArmour},
		{api.GetUniqueAccessories, UniqueAccessory},
		{api.GetUniqueFlasks, UniqueFlask},
		{api.GetUniqueJewels, UniqueJewel},
		{api.GetSkillGems, SkillGem},
		{api.GetClusterJewels, ClusterJewel},
		{api.GetMaps, Map},
		{api.GetBlightedMaps, BlightedMap},
		{api.GetBlightRavagedMaps, BlightRavagedMap},
		{api.GetScourgedMaps, ScourgedMap},
		{api.GetUniqueMaps, UniqueMap},
		{api.GetDeliriumOrbs, DeliriumOrb},
		{api.GetInvitations, Invitation},
		{api.GetScarabs, Scarab},
		{api.GetBaseTypes, BaseType},
		{api.GetFossils, Fossil},
		{api.GetResonators, Resonator},
		{api.GetHelmetEnchants, HelmetEnchant},
		{api.GetBeasts, Beast},
		{api.GetEssences, Essence},
		{api.GetVials, Vial},
	}
	if len(methods) != len(ItemOverviewTypes) {
		t.Fatalf("%d methods for %d item types", len(methods), len(ItemOverviewTypes))
	}

	for _, m := range methods {
		t.Run(string(m.typ), func(t *testing.T) {
			res, err := m.call(context.Background())
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			data, _ := res.Unwrap()
			if len(data.Lines) != 1 || data.Lines[0].Name != "The Doctor" || data.Lines[0].ChaosValue != 4500 {
				t.Fatalf("unexpected data: %#v", data)
			}
			req := f.last(t)
			if req.path != PathItemOverview || req.query.Get("type") != string(m.typ) {
				t.Fatalf("request = %s type=%s", req.path, req.query.Get("type"))
			}
		})
	}
}

func TestEconomyRequestBuildersArePure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.League = "Necropolis"
	cfg.Language = "de"
	api, err := NewEconomyAPI(cfg)
	if err != nil {
		t.Fatalf("NewEconomyAPI: %v", err)
	}
	defer api.Close()

	spec := api.ItemOverviewRequest(Scarab)
	if spec.Method != apiclient.MethodGet || spec.URL() != DefaultBaseURL+PathItemOverview {
		t.Fatalf("unexpected target: %s %s", spec.Method, spec.URL())
	}
	want := map[string]string{"type": "Scarab", "league": "Necropolis", "language": "de"}
	for k, v := range want {
		if spec.Params[k] != v {
			t.Fatalf("param %s = %q, want %q", k, spec.Params[k], v)
		}
	}
	if spec.Decode == nil {
		t.Fatalf("request has no decoder")
	}
}

func TestEconomyNonRaisingFailure(t *testing.T) {
	f := newFakeNinja(t, nil)
	cfg := DefaultConfig()
	cfg.BaseURL = f.srv.URL
	api, err := NewEconomyAPI(cfg)
	if err != nil {
		t.Fatalf("NewEconomyAPI: %v", err)
	}
	defer api.Close()

	res, err := api.GetOils(context.Background())
	if err != nil {
		t.Fatalf("non-raising call returned error: %v", err)
	}
	if res.OK() {
		t.Fatalf("404 reported as success")
	}
}

func TestParseOverviewTypes(t *testing.T) {
	if typ, err := ParseItemOverviewType("uniqueweapon"); err != nil || typ != UniqueWeapon {
		t.Fatalf("ParseItemOverviewType = %q, %v", typ, err)
	}
	if typ, err := ParseCurrencyOverviewType(" fragment "); err != nil || typ != Fragment {
		t.Fatalf("ParseCurrencyOverviewType = %q, %v", typ, err)
	}
	if _, err := ParseItemOverviewType("Currency"); err == nil {
		t.Fatalf("expected error for currency type on item endpoint")
	}
}
