package models

import "time"

// Bar is a single OHLCV observation at provider granularity.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// DailyBar is one resampled trading day.
type DailyBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// DailySeries is an ordered run of trading days, oldest first.
type DailySeries []DailyBar

// Closes returns the close column of the series.
func (s DailySeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, d := range s {
		out[i] = d.Close
	}
	return out
}
