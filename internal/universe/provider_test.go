package universe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
)

func TestStaticUniverse(t *testing.T) {
	u := Static()
	if len(u.ETFs) == 0 || len(u.Stocks) == 0 {
		t.Fatalf("curated lists must not be empty")
	}
	if !u.IsETF("SPY") || !u.IsETF("tqqq") {
		t.Errorf("SPY and TQQQ should categorize as ETFs")
	}
	if u.IsETF("TSLA") {
		t.Errorf("TSLA should not categorize as an ETF")
	}
	if u.Len() != len(u.ETFs)+len(u.Stocks) {
		t.Errorf("Len should cover both categories")
	}

	seen := map[string]bool{}
	for _, s := range u.All() {
		if seen[s] {
			t.Fatalf("duplicate symbol %s in universe", s)
		}
		seen[s] = true
	}
}

func TestBuildMergesScreener(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Mozilla/5.0" {
			t.Errorf("expected browser user agent, got %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Query().Get("tableonly") != "true" {
			t.Errorf("missing tableonly param")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"rows":[
			{"symbol":"ZZZZ"},
			{"symbol":" ABCD "},
			{"symbol":"TOOLONGX"},
			{"symbol":""}
		]}}`))
	}))
	defer srv.Close()

	p := NewProvider(apphttp.NewClient(), logger.Nop(), WithScreener(srv.URL, 100))
	u := p.Build(context.Background())

	has := func(ticker string) bool {
		for _, s := range u.Stocks {
			if s == ticker {
				return true
			}
		}
		return false
	}
	if !has("ZZZZ") {
		t.Errorf("screener symbol ZZZZ should merge into the stock set")
	}
	if !has("ABCD") {
		t.Errorf("screener symbols should be trimmed before merging")
	}
	if has("TOOLONGX") {
		t.Errorf("symbols beyond 5 chars must be dropped")
	}
}

func TestBuildSurvivesScreenerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewProvider(apphttp.NewClient(), logger.Nop(), WithScreener(srv.URL, 100))
	u := p.Build(context.Background())
	static := Static()
	if u.Len() != static.Len() {
		t.Fatalf("screener failure must fall back to the curated lists")
	}
}

func TestBuildAppendsExtras(t *testing.T) {
	p := NewProvider(apphttp.NewClient(), logger.Nop(), WithExtra([]string{"myco", "SPY"}))
	u := p.Build(context.Background())
	found := false
	for _, s := range u.Stocks {
		if s == "MYCO" {
			found = true
		}
		if s == "SPY" {
			t.Errorf("extras already categorized as ETFs must not duplicate into stocks")
		}
	}
	if !found {
		t.Errorf("extra symbols should be normalized and included")
	}
}
