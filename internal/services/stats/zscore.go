package stats

import (
	"math"

	"VolScan/internal/domain/models"
)

// barsPerDay approximates one regular session of 5-minute bars (6.5 hours).
const barsPerDay = 78

// ZScoreParams bounds the live z-score computation.
type ZScoreParams struct {
	VolWindowDays int // trailing window length in trading days
	MinBars       int // minimum closes required before scoring at all
	MinWindow     int // minimum returns inside the trailing window
}

// DefaultZScoreParams mirrors the scanner defaults.
func DefaultZScoreParams() ZScoreParams {
	return ZScoreParams{VolWindowDays: 20, MinBars: 100, MinWindow: 50}
}

// ComputeZScore scores the most recent log return against its trailing
// window. The window includes the scored return. Returns (nil, false) when
// the series is too short or the deviation degenerates.
func ComputeZScore(closes []float64, p ZScoreParams) (*models.ZScoreStats, bool) {
	if len(closes) < p.MinBars {
		return nil, false
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}
	if len(returns) == 0 {
		return nil, false
	}

	window := p.VolWindowDays * barsPerDay
	if window > len(returns) {
		window = len(returns)
	}
	if window < p.MinWindow {
		return nil, false
	}

	recent := returns[len(returns)-window:]
	m := mean(recent)
	std := sampleStd(recent, m)
	if std <= 0 || !finite(std) {
		return nil, false
	}

	last := returns[len(returns)-1]
	lastClose := closes[len(closes)-1]
	prevClose := closes[len(closes)-2]
	pctMove := 0.0
	if prevClose > 0 {
		pctMove = (lastClose - prevClose) / prevClose * 100
	}

	return &models.ZScoreStats{
		ZScore:     (last - m) / std,
		Mean:       m,
		Std:        std,
		LastReturn: last,
		PctMove:    pctMove,
		Price:      lastClose,
		Bars:       len(closes),
	}, true
}
