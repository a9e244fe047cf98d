// Package insights derives rule-based interpretations from window metrics.
// Everything here is deterministic: no I/O, no clock, no randomness.
package insights

import (
	"fmt"

	"VolScan/internal/domain/models"
)

// Risk thresholds on average intraday range, in percent.
const (
	riskVeryHighAbove = 5.0
	riskHighAbove     = 3.0
	riskModerateAbove = 1.5
)

// Profile thresholds on the consistency score.
const (
	profileConsistentAbove = 5.0
	profileModerateAbove   = 2.0
)

// Analyze interprets one ticker's window metrics into a report of labels,
// signal tags and free-form observations.
func Analyze(ticker string, window models.Window, ws models.WindowStats) models.InsightReport {
	report := models.InsightReport{
		Ticker:    ticker,
		Window:    window,
		RiskLevel: riskLevel(ws.AvgRange),
		Profile:   profile(ws.Consistency),
		Signals:   signals(ws),
	}
	report.Observations = observations(ws)
	return report
}

func riskLevel(avgRange float64) string {
	switch {
	case avgRange > riskVeryHighAbove:
		return models.RiskVeryHigh
	case avgRange > riskHighAbove:
		return models.RiskHigh
	case avgRange > riskModerateAbove:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

func profile(consistency float64) string {
	switch {
	case consistency > profileConsistentAbove:
		return models.ProfileConsistent
	case consistency > profileModerateAbove:
		return models.ProfileModeratelyConsistent
	default:
		return models.ProfileInconsistent
	}
}

func signals(ws models.WindowStats) []string {
	var tags []string
	days := float64(ws.DaysInWindow)
	if days > 0 && float64(ws.Swing2PctDays) > days*0.5 {
		tags = append(tags, models.SignalSwingTrading)
	}
	if days > 0 && float64(ws.ExtremeDays) > days*0.1 {
		tags = append(tags, models.SignalExtremeMoves)
	}
	if ws.Consistency > 4 && ws.AvgRange > 2 {
		tags = append(tags, models.SignalMeanReversion)
	}
	if ws.AvgRange < 1 && ws.Consistency > 3 {
		tags = append(tags, models.SignalLowVolatility)
	}
	if days > 0 && ws.AvgRange > 4 && float64(ws.Swing3PctDays) > days*0.3 {
		tags = append(tags, models.SignalMomentum)
	}
	return tags
}

func observations(ws models.WindowStats) []string {
	var notes []string
	if ws.RealizedVol > 50 {
		notes = append(notes, fmt.Sprintf("high realized volatility (%.1f%% annualized)", ws.RealizedVol))
	}
	if ws.UltraExtremeDays > 0 {
		notes = append(notes, fmt.Sprintf("%d ultra-extreme move days beyond 3 sigma", ws.UltraExtremeDays))
	}
	if ws.AvgRange > 0 && ws.StdRange > ws.AvgRange*0.5 {
		notes = append(notes, fmt.Sprintf("range dispersion %.2f%% is wide relative to the %.2f%% average", ws.StdRange, ws.AvgRange))
	}
	if ws.DaysInWindow > 0 {
		pct2 := float64(ws.Swing2PctDays) / float64(ws.DaysInWindow) * 100
		pct3 := float64(ws.Swing3PctDays) / float64(ws.DaysInWindow) * 100
		if pct2 > 70 {
			notes = append(notes, fmt.Sprintf("very active: %.1f%% of days moved more than 2%%", pct2))
		}
		if pct3 > 40 {
			notes = append(notes, fmt.Sprintf("extremely active: %.1f%% of days moved more than 3%%", pct3))
		}
	}
	return notes
}
