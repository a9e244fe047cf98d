package models

import "time"

// Window identifies a trailing analysis window in trading days.
type Window string

const (
	WindowToday      Window = "today"
	WindowLast3Days  Window = "last_3_days"
	WindowLast7Days  Window = "last_7_days"
	WindowLast30Days Window = "last_30_days"
	WindowLast3Mo    Window = "last_3_months"
	WindowLast1Yr    Window = "last_1_year"
)

// Windows lists all analysis windows in presentation order.
func Windows() []Window {
	return []Window{
		WindowToday,
		WindowLast3Days,
		WindowLast7Days,
		WindowLast30Days,
		WindowLast3Mo,
		WindowLast1Yr,
	}
}

// WindowStats holds the volatility metrics of one ticker over one window.
// All percentages are intraday range percentages of the open.
type WindowStats struct {
	AvgRange         float64 `json:"avg_intraday_range"`
	StdRange         float64 `json:"std_intraday_range"`
	MedianRange      float64 `json:"median_intraday_range"`
	MinRange         float64 `json:"min_intraday_range"`
	MaxRange         float64 `json:"max_intraday_range"`
	RangeSpread      float64 `json:"range_spread_pct"`
	RangeP25         float64 `json:"range_p25"`
	RangeP50         float64 `json:"range_p50"`
	RangeP75         float64 `json:"range_p75"`
	RangeP90         float64 `json:"range_p90"`
	RangeP95         float64 `json:"range_p95"`
	RangeP99         float64 `json:"range_p99"`
	RealizedVol      float64 `json:"realized_volatility"`
	Consistency      float64 `json:"consistency_score"`
	Swing2PctDays    int     `json:"swing_2pct_days"`
	Swing3PctDays    int     `json:"swing_3pct_days"`
	ExtremeDays      int     `json:"extreme_move_days"`
	UltraExtremeDays int     `json:"ultra_extreme_move_days"`
	DaysInWindow     int     `json:"days_in_window"`
}

// StatsFieldNames returns the WindowStats JSON field names in declaration
// order. Used as the CSV column layout after the ticker column.
func StatsFieldNames() []string {
	return []string{
		"avg_intraday_range",
		"std_intraday_range",
		"median_intraday_range",
		"min_intraday_range",
		"max_intraday_range",
		"range_spread_pct",
		"range_p25",
		"range_p50",
		"range_p75",
		"range_p90",
		"range_p95",
		"range_p99",
		"realized_volatility",
		"consistency_score",
		"swing_2pct_days",
		"swing_3pct_days",
		"extreme_move_days",
		"ultra_extreme_move_days",
		"days_in_window",
	}
}

// Values returns the metric values in StatsFieldNames order. Integer
// counters are widened to float64.
func (ws WindowStats) Values() []float64 {
	return []float64{
		ws.AvgRange,
		ws.StdRange,
		ws.MedianRange,
		ws.MinRange,
		ws.MaxRange,
		ws.RangeSpread,
		ws.RangeP25,
		ws.RangeP50,
		ws.RangeP75,
		ws.RangeP90,
		ws.RangeP95,
		ws.RangeP99,
		ws.RealizedVol,
		ws.Consistency,
		float64(ws.Swing2PctDays),
		float64(ws.Swing3PctDays),
		float64(ws.ExtremeDays),
		float64(ws.UltraExtremeDays),
		float64(ws.DaysInWindow),
	}
}

// WindowStatsFromValues rebuilds WindowStats from values in StatsFieldNames
// order, the inverse of Values. Extra values are ignored; missing ones stay
// zero.
func WindowStatsFromValues(vs []float64) WindowStats {
	var ws WindowStats
	fields := []*float64{
		&ws.AvgRange,
		&ws.StdRange,
		&ws.MedianRange,
		&ws.MinRange,
		&ws.MaxRange,
		&ws.RangeSpread,
		&ws.RangeP25,
		&ws.RangeP50,
		&ws.RangeP75,
		&ws.RangeP90,
		&ws.RangeP95,
		&ws.RangeP99,
		&ws.RealizedVol,
		&ws.Consistency,
	}
	for i, f := range fields {
		if i < len(vs) {
			*f = vs[i]
		}
	}
	ints := []*int{
		&ws.Swing2PctDays,
		&ws.Swing3PctDays,
		&ws.ExtremeDays,
		&ws.UltraExtremeDays,
		&ws.DaysInWindow,
	}
	for i, f := range ints {
		if j := len(fields) + i; j < len(vs) {
			*f = int(vs[j])
		}
	}
	return ws
}

// TickerStats holds the per-window metrics of one ticker. A window with
// insufficient history is absent from Windows, never zero-filled.
type TickerStats struct {
	Ticker    string                  `json:"ticker"`
	TotalDays int                     `json:"total_days"`
	Windows   map[Window]*WindowStats `json:"windows"`
}

// CacheEntry is one persisted analysis result with its computation time.
type CacheEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Stats     *TickerStats `json:"stats"`
}

// Fresh reports whether the entry is younger than ttl at the given instant.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}
