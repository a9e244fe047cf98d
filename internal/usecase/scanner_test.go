package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"VolScan/internal/domain/models"
	"VolScan/internal/services/stats"
	"VolScan/pkg/logger"
)

// fakeSource answers History/Recent from injected functions. A nil function
// means "not available".
type fakeSource struct {
	history func(ticker string) ([]models.Bar, bool)
	recent  func(ticker string) ([]models.Bar, bool)
}

func (f *fakeSource) History(_ context.Context, ticker string) ([]models.Bar, bool) {
	if f.history == nil {
		return nil, false
	}
	return f.history(ticker)
}

func (f *fakeSource) Recent(_ context.Context, ticker string) ([]models.Bar, bool) {
	if f.recent == nil {
		return nil, false
	}
	return f.recent(ticker)
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []*models.MoveAlert
	fail map[string]bool
}

func (f *fakeNotifier) Notify(_ context.Context, alert *models.MoveAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[alert.Ticker] {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, alert)
	return nil
}

func (f *fakeNotifier) Enabled() bool { return true }

// countMetrics tallies the recorder calls the tests care about.
type countMetrics struct {
	mu      sync.Mutex
	tickers map[string]int
	alerts  map[string]int
	zscores map[string]float64
	cycles  int
}

func newCountMetrics() *countMetrics {
	return &countMetrics{
		tickers: make(map[string]int),
		alerts:  make(map[string]int),
		zscores: make(map[string]float64),
	}
}

func (m *countMetrics) RecordTicker(outcome string) {
	m.mu.Lock()
	m.tickers[outcome]++
	m.mu.Unlock()
}

func (m *countMetrics) RecordAlert(disposition string) {
	m.mu.Lock()
	m.alerts[disposition]++
	m.mu.Unlock()
}

func (m *countMetrics) RecordCycle() {
	m.mu.Lock()
	m.cycles++
	m.mu.Unlock()
}

func (m *countMetrics) RecordZScore(symbol string, z float64) {
	m.mu.Lock()
	m.zscores[symbol] = z
	m.mu.Unlock()
}

func (m *countMetrics) RecordFetch(string, string)      {}
func (m *countMetrics) RecordCache(string)              {}
func (m *countMetrics) RecordLastPrice(string, float64) {}
func (m *countMetrics) RecordLatency(string, float64)   {}

func (m *countMetrics) alert(disposition string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alerts[disposition]
}

func (m *countMetrics) ticker(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tickers[outcome]
}

// chainCloses builds a price series from a start price and log returns.
func chainCloses(start float64, rs []float64) []float64 {
	closes := []float64{start}
	for _, r := range rs {
		closes = append(closes, closes[len(closes)-1]*math.Exp(r))
	}
	return closes
}

// spikeReturns is n flat returns followed by one jump of size r.
func spikeReturns(n int, r float64) []float64 {
	rs := make([]float64, n+1)
	rs[n] = r
	return rs
}

func intradayBars(closes []float64) []models.Bar {
	base := time.Date(2024, 5, 6, 13, 30, 0, 0, time.UTC)
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Time:   base.Add(time.Duration(i) * 5 * time.Minute),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 100,
		}
	}
	return bars
}

func testScanner(tickers []string, src *fakeSource, n *fakeNotifier, m *countMetrics) *Scanner {
	p := ScannerParams{
		Interval:    time.Hour,
		BatchSize:   10,
		BatchPause:  time.Millisecond,
		ZThreshold:  2.0,
		ZScore:      stats.ZScoreParams{VolWindowDays: 20, MinBars: 5, MinWindow: 5},
		Cooldown:    time.Hour,
		PruneBuffer: time.Hour,
	}
	return NewScanner(p, tickers, src, n, m, logger.Nop())
}

func TestBreachesIsStrict(t *testing.T) {
	cases := []struct {
		z, threshold float64
		want         bool
	}{
		{2.0, 2.0, false},
		{-2.0, 2.0, false},
		{2.0001, 2.0, true},
		{-2.0001, 2.0, true},
		{0, 2.0, false},
	}
	for _, c := range cases {
		if got := Breaches(c.z, c.threshold); got != c.want {
			t.Errorf("Breaches(%v, %v) = %v, want %v", c.z, c.threshold, got, c.want)
		}
	}
}

func TestCycleAlertsOnSpike(t *testing.T) {
	// Ten flat returns then a jump puts the last return 10/sqrt(11) sample
	// deviations above the window mean, well past the 2.0 threshold.
	spike := intradayBars(chainCloses(100, spikeReturns(10, 0.01)))
	flat := intradayBars(chainCloses(50, make([]float64, 11)))

	src := &fakeSource{recent: func(ticker string) ([]models.Bar, bool) {
		switch ticker {
		case "SPIKE":
			return spike, true
		case "FLAT":
			return flat, true
		default:
			return nil, false
		}
	}}
	n := &fakeNotifier{}
	m := newCountMetrics()
	s := testScanner([]string{"SPIKE", "FLAT", "GONE"}, src, n, m)

	s.runCycle(context.Background())

	if len(n.sent) != 1 {
		t.Fatalf("sent %d alerts, want 1", len(n.sent))
	}
	alert := n.sent[0]
	if alert.Ticker != "SPIKE" {
		t.Errorf("alert ticker = %q, want SPIKE", alert.Ticker)
	}
	if alert.Direction != models.DirectionUp {
		t.Errorf("direction = %q, want up", alert.Direction)
	}
	wantZ := 10 / math.Sqrt(11)
	if math.Abs(alert.ZScore-wantZ) > 1e-9 {
		t.Errorf("zscore = %v, want %v", alert.ZScore, wantZ)
	}
	if alert.PctMove <= 0 {
		t.Errorf("pct move = %v, want positive", alert.PctMove)
	}
	if m.alert("sent") != 1 || m.alert("suppressed") != 0 {
		t.Errorf("alert counts = %v", m.alerts)
	}
	if m.cycles != 1 {
		t.Errorf("cycles = %d, want 1", m.cycles)
	}
}

func TestCycleDownwardMove(t *testing.T) {
	drop := intradayBars(chainCloses(100, spikeReturns(10, -0.01)))
	src := &fakeSource{recent: func(string) ([]models.Bar, bool) { return drop, true }}
	n := &fakeNotifier{}
	s := testScanner([]string{"DROP"}, src, n, newCountMetrics())

	s.runCycle(context.Background())

	if len(n.sent) != 1 {
		t.Fatalf("sent %d alerts, want 1", len(n.sent))
	}
	if n.sent[0].Direction != models.DirectionDown {
		t.Errorf("direction = %q, want down", n.sent[0].Direction)
	}
	if n.sent[0].ZScore >= 0 || n.sent[0].PctMove >= 0 {
		t.Errorf("zscore = %v, pct = %v, want both negative",
			n.sent[0].ZScore, n.sent[0].PctMove)
	}
}

func TestBelowThresholdStillRecordsGauges(t *testing.T) {
	spike := intradayBars(chainCloses(100, spikeReturns(10, 0.01)))
	src := &fakeSource{recent: func(string) ([]models.Bar, bool) { return spike, true }}
	n := &fakeNotifier{}
	m := newCountMetrics()
	s := testScanner([]string{"MILD"}, src, n, m)
	s.p.ZThreshold = 4.0 // above 10/sqrt(11)

	s.runCycle(context.Background())

	if len(n.sent) != 0 {
		t.Fatalf("sent %d alerts, want 0", len(n.sent))
	}
	if m.alert("sent") != 0 || m.alert("suppressed") != 0 {
		t.Errorf("alert counts = %v, want none", m.alerts)
	}
	if _, ok := m.zscores["MILD"]; !ok {
		t.Error("zscore gauge not recorded for scored ticker")
	}
	if len(s.lastAlert) != 0 {
		t.Error("ledger written without a detection")
	}
}

func TestCooldownSuppressesRepeatWithoutTouchingLedger(t *testing.T) {
	spike := intradayBars(chainCloses(100, spikeReturns(10, 0.01)))
	src := &fakeSource{recent: func(string) ([]models.Bar, bool) { return spike, true }}
	n := &fakeNotifier{}
	m := newCountMetrics()
	s := testScanner([]string{"SPIKE"}, src, n, m)

	s.runCycle(context.Background())
	first := s.lastAlert["SPIKE"]
	if first.IsZero() {
		t.Fatal("detection did not stamp the ledger")
	}

	s.runCycle(context.Background())

	if len(n.sent) != 1 {
		t.Fatalf("sent %d alerts, want 1 (second suppressed)", len(n.sent))
	}
	if m.alert("suppressed") != 1 {
		t.Errorf("suppressed = %d, want 1", m.alert("suppressed"))
	}
	if got := s.lastAlert["SPIKE"]; !got.Equal(first) {
		t.Errorf("suppressed alert moved the ledger stamp: %v -> %v", first, got)
	}
}

func TestCooldownExpiryReAlerts(t *testing.T) {
	spike := intradayBars(chainCloses(100, spikeReturns(10, 0.01)))
	src := &fakeSource{recent: func(string) ([]models.Bar, bool) { return spike, true }}
	n := &fakeNotifier{}
	s := testScanner([]string{"SPIKE"}, src, n, newCountMetrics())

	s.runCycle(context.Background())
	// Age the ledger entry past the cooldown.
	s.mu.Lock()
	s.lastAlert["SPIKE"] = time.Now().Add(-s.p.Cooldown - time.Minute)
	s.mu.Unlock()
	s.runCycle(context.Background())

	if len(n.sent) != 2 {
		t.Fatalf("sent %d alerts, want 2", len(n.sent))
	}
}

func TestPruneDropsOnlyStaleEntries(t *testing.T) {
	s := testScanner(nil, &fakeSource{}, &fakeNotifier{}, newCountMetrics())
	now := time.Now()
	s.lastAlert["OLD"] = now.Add(-s.p.Cooldown - s.p.PruneBuffer - time.Minute)
	s.lastAlert["WARM"] = now.Add(-s.p.Cooldown - time.Minute) // expired but inside buffer
	s.lastAlert["HOT"] = now

	s.prune(now)

	if _, ok := s.lastAlert["OLD"]; ok {
		t.Error("stale entry survived pruning")
	}
	if _, ok := s.lastAlert["WARM"]; !ok {
		t.Error("entry inside the prune buffer was dropped")
	}
	if _, ok := s.lastAlert["HOT"]; !ok {
		t.Error("fresh entry was dropped")
	}
}

func TestDeliveryFailureDoesNotStopCycle(t *testing.T) {
	spike := intradayBars(chainCloses(100, spikeReturns(10, 0.01)))
	src := &fakeSource{recent: func(string) ([]models.Bar, bool) { return spike, true }}
	n := &fakeNotifier{fail: map[string]bool{"AAA": true}}
	m := newCountMetrics()
	s := testScanner([]string{"AAA", "BBB"}, src, n, m)

	s.runCycle(context.Background())

	if len(n.sent) != 1 || n.sent[0].Ticker != "BBB" {
		t.Fatalf("sent = %+v, want only BBB", n.sent)
	}
	if m.alert("failed") != 1 || m.alert("sent") != 1 {
		t.Errorf("alert counts = %v", m.alerts)
	}
	if m.cycles != 1 {
		t.Errorf("cycles = %d, want 1 (cycle must complete)", m.cycles)
	}
}

func TestRunExitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := testScanner([]string{"X"}, &fakeSource{}, &fakeNotifier{}, newCountMetrics())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not exit after cancellation")
	}
}
