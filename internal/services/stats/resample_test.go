package stats

import (
	"testing"
	"time"

	"VolScan/internal/domain/models"
)

func TestIsIntraday(t *testing.T) {
	base := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC)
	var fiveMin []models.Bar
	for i := 0; i < 10; i++ {
		fiveMin = append(fiveMin, models.Bar{Time: base.Add(time.Duration(i) * 5 * time.Minute), Open: 1, High: 1, Low: 1, Close: 1})
	}
	if !IsIntraday(fiveMin) {
		t.Errorf("5 minute bars should be intraday")
	}

	var daily []models.Bar
	for i := 0; i < 10; i++ {
		daily = append(daily, models.Bar{Time: base.AddDate(0, 0, i), Open: 1, High: 1, Low: 1, Close: 1})
	}
	if IsIntraday(daily) {
		t.Errorf("day-spaced bars should not be intraday")
	}
	if IsIntraday(daily[:1]) {
		t.Errorf("a single bar has no gap to measure")
	}
}

func TestToDaily(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	day1 := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	bars := []models.Bar{
		{Time: day1, Open: 10, High: 11, Low: 9.5, Close: 10.5, Volume: 100},
		{Time: day1.Add(5 * time.Minute), Open: 10.5, High: 12, Low: 10, Close: 11, Volume: 200},
		{Time: day1.Add(10 * time.Minute), Open: 11, High: 11.5, Low: 8, Close: 9, Volume: 50},
		{Time: day2, Open: 9, High: 9.5, Low: 8.5, Close: 9.25, Volume: 300},
	}

	days := ToDaily(bars, loc)
	if len(days) != 2 {
		t.Fatalf("expected 2 daily rows, got %d", len(days))
	}

	first := days[0]
	if first.Open != 10 {
		t.Errorf("open should be first bar's open, got %v", first.Open)
	}
	if first.High != 12 {
		t.Errorf("high should be session max, got %v", first.High)
	}
	if first.Low != 8 {
		t.Errorf("low should be session min, got %v", first.Low)
	}
	if first.Close != 9 {
		t.Errorf("close should be last bar's close, got %v", first.Close)
	}
	if first.Volume != 350 {
		t.Errorf("volume should sum, got %v", first.Volume)
	}
	if !days[0].Date.Before(days[1].Date) {
		t.Errorf("daily rows must be date ordered")
	}
}

func TestToDailySessionBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// 00:30 UTC is the prior evening in New York
	late := time.Date(2024, 3, 5, 0, 30, 0, 0, time.UTC)
	morning := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	days := ToDaily([]models.Bar{
		{Time: late, Open: 1, High: 2, Low: 1, Close: 2, Volume: 10},
		{Time: morning, Open: 3, High: 4, Low: 3, Close: 4, Volume: 20},
	}, loc)
	if len(days) != 2 {
		t.Fatalf("bars across the exchange midnight must land in separate sessions, got %d", len(days))
	}
}

func TestNormalizePassthrough(t *testing.T) {
	loc := time.UTC
	base := time.Date(2024, 3, 4, 21, 0, 0, 0, time.UTC)
	bars := []models.Bar{
		{Time: base, Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
		{Time: base.AddDate(0, 0, 1), Open: 10, High: 12, Low: 10, Close: 11, Volume: 2},
	}
	days := Normalize(bars, loc)
	if len(days) != 2 {
		t.Fatalf("daily input should map one to one, got %d rows", len(days))
	}
	if days[0].High != 11 || days[1].High != 12 {
		t.Errorf("daily rows must keep their own OHLC")
	}
}
