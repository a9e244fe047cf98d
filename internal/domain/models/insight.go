package models

// Risk level labels derived from average intraday range.
const (
	RiskVeryHigh = "very_high"
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
)

// Volatility profile labels derived from the consistency score.
const (
	ProfileConsistent           = "consistent"
	ProfileModeratelyConsistent = "moderately_consistent"
	ProfileInconsistent         = "inconsistent"
)

// Signal tags attached to an insight report.
const (
	SignalSwingTrading  = "swing_trading"
	SignalExtremeMoves  = "extreme_moves"
	SignalMeanReversion = "mean_reversion"
	SignalLowVolatility = "low_volatility"
	SignalMomentum      = "momentum"
)

// InsightReport is the derived interpretation of one ticker's window metrics.
type InsightReport struct {
	Ticker       string   `json:"ticker"`
	Window       Window   `json:"window"`
	RiskLevel    string   `json:"risk_level"`
	Profile      string   `json:"profile"`
	Signals      []string `json:"signals"`
	Observations []string `json:"observations"`
}
