package stats

import (
	"math"
	"sort"
	"time"

	"VolScan/internal/domain/models"
	applogger "VolScan/pkg/logger"
)

const (
	// tradingDaysPerYear annualizes daily realized volatility.
	tradingDaysPerYear = 252

	swing2PctThreshold = 2.0
	swing3PctThreshold = 3.0
)

// WindowSpec defines one trailing window: the tail slice length and the
// minimum valid rows required for the window to be present at all.
type WindowSpec struct {
	Name    models.Window
	Size    int
	MinRows int
}

// DefaultWindows returns the standard window ladder. The two long windows
// tolerate partial history: three months of metrics are meaningful from 60
// trading days, a year from 180.
func DefaultWindows() []WindowSpec {
	return []WindowSpec{
		{Name: models.WindowToday, Size: 1, MinRows: 1},
		{Name: models.WindowLast3Days, Size: 3, MinRows: 3},
		{Name: models.WindowLast7Days, Size: 7, MinRows: 7},
		{Name: models.WindowLast30Days, Size: 30, MinRows: 30},
		{Name: models.WindowLast3Mo, Size: 90, MinRows: 60},
		{Name: models.WindowLast1Yr, Size: 252, MinRows: 180},
	}
}

// EngineOption configures Engine.
type EngineOption func(*Engine)

// Engine computes per-window volatility statistics from raw bars.
type Engine struct {
	windows []WindowSpec
	loc     *time.Location
	l       *applogger.Logger
}

// NewEngine creates a statistics engine resampling into the given exchange location.
func NewEngine(loc *time.Location, opts ...EngineOption) *Engine {
	e := &Engine{
		windows: DefaultWindows(),
		loc:     loc,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithWindows overrides the window ladder.
func WithWindows(windows []WindowSpec) EngineOption {
	return func(e *Engine) {
		e.windows = windows
	}
}

// WithEngineLogger attaches a structured logger.
func WithEngineLogger(l *applogger.Logger) EngineOption {
	return func(e *Engine) {
		e.l = l
	}
}

// dayRow is one valid trading day with its derived columns.
type dayRow struct {
	rangePct  float64
	logReturn float64
	hasReturn bool
}

// Analyze resamples bars to trading days, derives intraday range and log
// return columns, and computes every window with sufficient history.
// Returns (nil, false) when no valid rows remain.
func (e *Engine) Analyze(ticker string, bars []models.Bar) (*models.TickerStats, bool) {
	daily := Normalize(bars, e.loc)
	rows := deriveRows(daily)
	if len(rows) == 0 {
		if e.l != nil {
			e.l.Debug("no valid rows after resampling", applogger.String("ticker", ticker))
		}
		return nil, false
	}

	stats := &models.TickerStats{
		Ticker:    ticker,
		TotalDays: len(rows),
		Windows:   make(map[models.Window]*models.WindowStats, len(e.windows)),
	}
	for _, spec := range e.windows {
		if ws := computeWindow(rows, spec); ws != nil {
			stats.Windows[spec.Name] = ws
		}
	}
	return stats, true
}

// deriveRows keeps rows with a usable open and attaches range and return
// columns. Log returns are taken against the previous retained close, so
// the first row of any later tail slice still carries a return.
func deriveRows(daily models.DailySeries) []dayRow {
	rows := make([]dayRow, 0, len(daily))
	prevClose := 0.0
	for _, d := range daily {
		if d.Open <= 0 || !finite(d.Open) || !finite(d.High) || !finite(d.Low) || !finite(d.Close) {
			continue
		}
		r := dayRow{rangePct: (d.High - d.Low) / d.Open * 100}
		if prevClose > 0 && d.Close > 0 {
			r.logReturn = math.Log(d.Close / prevClose)
			r.hasReturn = true
		}
		if d.Close > 0 {
			prevClose = d.Close
		}
		rows = append(rows, r)
	}
	return rows
}

// computeWindow slices the tail of rows for spec and computes its metrics.
// Returns nil when fewer valid rows exist than the window's minimum.
func computeWindow(rows []dayRow, spec WindowSpec) *models.WindowStats {
	if len(rows) < spec.MinRows {
		return nil
	}
	start := len(rows) - spec.Size
	if start < 0 {
		start = 0
	}
	tail := rows[start:]

	ranges := make([]float64, 0, len(tail))
	returns := make([]float64, 0, len(tail))
	for _, r := range tail {
		ranges = append(ranges, r.rangePct)
		if r.hasReturn {
			returns = append(returns, r.logReturn)
		}
	}

	avg := mean(ranges)
	std := sampleStd(ranges, avg)

	sorted := append([]float64(nil), ranges...)
	sort.Float64s(sorted)
	minR := sorted[0]
	maxR := sorted[len(sorted)-1]

	ws := &models.WindowStats{
		AvgRange:     Sanitize(avg),
		StdRange:     Sanitize(std),
		MedianRange:  Sanitize(percentile(sorted, 50)),
		MinRange:     Sanitize(minR),
		MaxRange:     Sanitize(maxR),
		RangeSpread:  Sanitize(maxR - minR),
		RangeP25:     Sanitize(percentile(sorted, 25)),
		RangeP50:     Sanitize(percentile(sorted, 50)),
		RangeP75:     Sanitize(percentile(sorted, 75)),
		RangeP90:     Sanitize(percentile(sorted, 90)),
		RangeP95:     Sanitize(percentile(sorted, 95)),
		RangeP99:     Sanitize(percentile(sorted, 99)),
		RealizedVol:  Sanitize(realizedVol(returns)),
		DaysInWindow: len(tail),
	}

	if std > 0 {
		ws.Consistency = Sanitize(avg / std)
	}

	for _, r := range ranges {
		if r > swing2PctThreshold {
			ws.Swing2PctDays++
		}
		if r > swing3PctThreshold {
			ws.Swing3PctDays++
		}
	}

	if std > 0 {
		extreme := avg + 2*std
		ultra := avg + 3*std
		for _, r := range ranges {
			if r > extreme {
				ws.ExtremeDays++
			}
			if r > ultra {
				ws.UltraExtremeDays++
			}
		}
	}

	return ws
}

// realizedVol annualizes the sample standard deviation of the window's log
// returns as a percentage. Zero when fewer than two returns exist or the
// deviation is zero.
func realizedVol(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	std := sampleStd(returns, mean(returns))
	if std <= 0 || !finite(std) {
		return 0
	}
	return std * math.Sqrt(tradingDaysPerYear) * 100
}

// --- shared math helpers ---

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd computes the standard deviation with one delta degree of
// freedom. Zero when fewer than two values exist.
func sampleStd(xs []float64, m float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// percentile interpolates linearly between closest ranks over a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Sanitize maps NaN and infinities to zero so metrics stay portable through
// JSON and CSV.
func Sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
