package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCacheEntryFresh(t *testing.T) {
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	e := CacheEntry{Timestamp: now.Add(-30 * time.Minute)}

	if !e.Fresh(now, time.Hour) {
		t.Error("entry inside ttl reported stale")
	}
	if e.Fresh(now, 30*time.Minute) {
		t.Error("entry exactly at ttl reported fresh")
	}
	if e.Fresh(now, 10*time.Minute) {
		t.Error("entry past ttl reported fresh")
	}
}

func TestValuesMatchesFieldNames(t *testing.T) {
	ws := WindowStats{AvgRange: 1.5, Swing2PctDays: 7, DaysInWindow: 30}
	if got, want := len(ws.Values()), len(StatsFieldNames()); got != want {
		t.Fatalf("Values has %d entries, field names %d", got, want)
	}
}

func TestWindowStatsValuesRoundTrip(t *testing.T) {
	ws := WindowStats{
		AvgRange:         2.5,
		StdRange:         0.7,
		MedianRange:      2.4,
		MinRange:         0.9,
		MaxRange:         6.1,
		RangeSpread:      5.2,
		RangeP25:         1.8,
		RangeP50:         2.4,
		RangeP75:         3.1,
		RangeP90:         4.0,
		RangeP95:         4.8,
		RangeP99:         5.9,
		RealizedVol:      38.5,
		Consistency:      3.57,
		Swing2PctDays:    12,
		Swing3PctDays:    4,
		ExtremeDays:      2,
		UltraExtremeDays: 1,
		DaysInWindow:     30,
	}

	got := WindowStatsFromValues(ws.Values())
	if got != ws {
		t.Errorf("round trip changed stats:\n got %+v\nwant %+v", got, ws)
	}
}

func TestWindowStatsFromValuesShortInput(t *testing.T) {
	got := WindowStatsFromValues([]float64{1.5, 0.3})
	if got.AvgRange != 1.5 || got.StdRange != 0.3 {
		t.Errorf("prefix fields lost: %+v", got)
	}
	if got.DaysInWindow != 0 || got.Consistency != 0 {
		t.Errorf("missing fields not zero: %+v", got)
	}
}

func TestCacheEntryJSONRoundTrip(t *testing.T) {
	entry := CacheEntry{
		Timestamp: time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC),
		Stats: &TickerStats{
			Ticker:    "TSLA",
			TotalDays: 252,
			Windows: map[Window]*WindowStats{
				WindowLast30Days: {AvgRange: 4.2, Swing2PctDays: 18, DaysInWindow: 30},
				WindowToday:      {AvgRange: 3.1, DaysInWindow: 1},
			},
		},
	}

	b, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back CacheEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Timestamp.Equal(entry.Timestamp) {
		t.Errorf("timestamp = %v, want %v", back.Timestamp, entry.Timestamp)
	}
	if back.Stats == nil || back.Stats.Ticker != "TSLA" || back.Stats.TotalDays != 252 {
		t.Fatalf("stats = %+v", back.Stats)
	}
	ws := back.Stats.Windows[WindowLast30Days]
	if ws == nil || ws.AvgRange != 4.2 || ws.Swing2PctDays != 18 {
		t.Errorf("window stats = %+v", ws)
	}
	if _, ok := back.Stats.Windows[WindowLast1Yr]; ok {
		t.Error("absent window appeared after round trip")
	}
}

func TestWindowsOrder(t *testing.T) {
	ws := Windows()
	if len(ws) != 6 {
		t.Fatalf("got %d windows, want 6", len(ws))
	}
	if ws[0] != WindowToday || ws[5] != WindowLast1Yr {
		t.Errorf("window order = %v", ws)
	}
}
