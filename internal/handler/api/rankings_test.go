package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"VolScan/internal/domain/models"
	"VolScan/internal/repository"
	"VolScan/internal/service/ratelimit"
	"VolScan/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordTicker(string)             {}
func (nopMetrics) RecordFetch(string, string)      {}
func (nopMetrics) RecordCache(string)              {}
func (nopMetrics) RecordAlert(string)              {}
func (nopMetrics) RecordCycle()                    {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordZScore(string, float64)    {}
func (nopMetrics) RecordLatency(string, float64)   {}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) (*Handler, *repository.StatsCache, string) {
	t.Helper()
	dir := t.TempDir()
	store := repository.NewFileStore(filepath.Join(dir, "stats.json"), logger.Nop())
	cache := repository.NewStatsCache(time.Hour, store, nopMetrics{}, logger.Nop())
	rate := RateParams{Capacity: 100, RefillPerSec: 100}
	h := NewHandler(dir, cache, ratelimit.New(), rate, logger.Nop())
	return h, cache, dir
}

func serve(h *Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func exportSampleTable(t *testing.T, dir string) {
	t.Helper()
	table := &models.RankingTable{
		Category: models.CategoryAll,
		Type:     models.RankHighestAvgRange,
		Window:   models.WindowLast30Days,
		Rows: []models.RankedRow{
			{Ticker: "TSLA", Stats: models.WindowStats{AvgRange: 4.25, Swing2PctDays: 18, DaysInWindow: 30}},
			{Ticker: "AAPL", Stats: models.WindowStats{AvgRange: 1.5, DaysInWindow: 30}},
		},
	}
	if _, err := repository.NewCSVExporter(dir, logger.Nop()).Export(table); err != nil {
		t.Fatalf("export sample table: %v", err)
	}
}

func cachedStats(ticker string) *models.TickerStats {
	return &models.TickerStats{
		Ticker:    ticker,
		TotalDays: 30,
		Windows: map[models.Window]*models.WindowStats{
			models.WindowLast30Days: {
				AvgRange:      3.5,
				Consistency:   2.5,
				Swing2PctDays: 10,
				DaysInWindow:  30,
			},
		},
	}
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	rec, env := serve(h, http.MethodGet, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d, want 200", rec.Code)
	}
	if env.Status != http.StatusOK {
		t.Errorf("envelope status = %d, want 200", env.Status)
	}
}

func TestRankingsServesExportedTable(t *testing.T) {
	h, _, dir := newTestHandler(t)
	exportSampleTable(t, dir)

	_, env := serve(h, http.MethodGet,
		"/api/rankings?category=all&type=highest_avg_range&window=last_30_days")
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, want 200", env.Status)
	}

	var data struct {
		Rows  []models.RankedRow `json:"rows"`
		Total int64              `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 2 || len(data.Rows) != 2 {
		t.Fatalf("total = %d rows = %d, want 2/2", data.Total, len(data.Rows))
	}
	if data.Rows[0].Ticker != "TSLA" {
		t.Errorf("first row = %q, want TSLA (export order preserved)", data.Rows[0].Ticker)
	}
	if data.Rows[0].Stats.AvgRange != 4.25 || data.Rows[0].Stats.Swing2PctDays != 18 {
		t.Errorf("stats round trip lost values: %+v", data.Rows[0].Stats)
	}
}

func TestRankingsLimit(t *testing.T) {
	h, _, dir := newTestHandler(t)
	exportSampleTable(t, dir)

	_, env := serve(h, http.MethodGet,
		"/api/rankings?category=all&type=highest_avg_range&window=last_30_days&limit=1")

	var data struct {
		Rows  []models.RankedRow `json:"rows"`
		Total int64              `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Rows) != 1 {
		t.Errorf("rows = %d, want 1", len(data.Rows))
	}
	if data.Total != 2 {
		t.Errorf("total = %d, want 2 (full table size)", data.Total)
	}
}

func TestRankingsMissingArtifact(t *testing.T) {
	h, _, _ := newTestHandler(t)
	_, env := serve(h, http.MethodGet,
		"/api/rankings?category=etfs&type=most_consistent&window=today")
	if env.Status != http.StatusNotFound {
		t.Errorf("envelope status = %d, want 404", env.Status)
	}
}

func TestRankingsRejectsUnknownCategory(t *testing.T) {
	h, _, _ := newTestHandler(t)
	_, env := serve(h, http.MethodGet, "/api/rankings?category=bonds")
	if env.Status != http.StatusBadRequest {
		t.Errorf("envelope status = %d, want 400", env.Status)
	}
}

func TestTickersListsSnapshot(t *testing.T) {
	h, cache, _ := newTestHandler(t)
	cache.Put("TSLA", cachedStats("TSLA"))
	cache.Put("AAPL", cachedStats("AAPL"))

	_, env := serve(h, http.MethodGet, "/api/tickers")
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, want 200", env.Status)
	}

	var data struct {
		Rows  []string `json:"rows"`
		Total int64    `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 2 || len(data.Rows) != 2 {
		t.Fatalf("total = %d rows = %v", data.Total, data.Rows)
	}
	if data.Rows[0] != "AAPL" || data.Rows[1] != "TSLA" {
		t.Errorf("rows = %v, want sorted [AAPL TSLA]", data.Rows)
	}
}

func TestTickerReturnsStatsAndInsight(t *testing.T) {
	h, cache, _ := newTestHandler(t)
	cache.Put("TSLA", cachedStats("TSLA"))

	// Lowercase path parameter must hit the normalized entry.
	_, env := serve(h, http.MethodGet, "/api/tickers/tsla?window=last_30_days")
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, want 200", env.Status)
	}

	var data struct {
		Ticker  string                `json:"ticker"`
		Stats   *models.TickerStats   `json:"stats"`
		Insight *models.InsightReport `json:"insight"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Ticker != "TSLA" {
		t.Errorf("ticker = %q, want TSLA", data.Ticker)
	}
	if data.Stats == nil || data.Stats.TotalDays != 30 {
		t.Fatalf("stats = %+v", data.Stats)
	}
	if data.Insight == nil {
		t.Fatal("insight missing for a present window")
	}
	if data.Insight.RiskLevel != models.RiskHigh {
		t.Errorf("risk = %q, want %q", data.Insight.RiskLevel, models.RiskHigh)
	}
}

func TestTickerAbsentWindowOmitsInsight(t *testing.T) {
	h, cache, _ := newTestHandler(t)
	cache.Put("TSLA", cachedStats("TSLA"))

	_, env := serve(h, http.MethodGet, "/api/tickers/TSLA?window=last_1_year")
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, want 200", env.Status)
	}
	var data struct {
		Insight *models.InsightReport `json:"insight"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Insight != nil {
		t.Errorf("insight = %+v, want omitted for absent window", data.Insight)
	}
}

func TestTickerUnknown(t *testing.T) {
	h, _, _ := newTestHandler(t)
	_, env := serve(h, http.MethodGet, "/api/tickers/NOPE")
	if env.Status != http.StatusNotFound {
		t.Errorf("envelope status = %d, want 404", env.Status)
	}
}

func TestRateLimitKicksIn(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.rate = RateParams{Capacity: 2, RefillPerSec: 0.001}

	e := echo.New()
	h.RegisterRoutes(e)

	var last envelope
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/tickers", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		last = envelope{}
		_ = json.Unmarshal(rec.Body.Bytes(), &last)
	}
	if last.Status != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last.Status)
	}
}
