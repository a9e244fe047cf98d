package usecase

import (
	"math"
	"sort"

	"VolScan/internal/domain/models"
)

// CategoryResults groups analysis results by aggregation category. Every
// result lands in "all" plus one of "stocks"/"etfs".
type CategoryResults map[models.Category][]*models.TickerStats

// Aggregate partitions results using the ETF membership predicate.
func Aggregate(results []*models.TickerStats, isETF func(string) bool) CategoryResults {
	out := CategoryResults{}
	for _, st := range results {
		if st == nil || st.Ticker == "" {
			continue
		}
		out[models.CategoryAll] = append(out[models.CategoryAll], st)
		if isETF(st.Ticker) {
			out[models.CategoryETFs] = append(out[models.CategoryETFs], st)
		} else {
			out[models.CategoryStocks] = append(out[models.CategoryStocks], st)
		}
	}
	return out
}

// rankMetric extracts the sort key for a ranking type.
func rankMetric(rt models.RankingType, ws *models.WindowStats) float64 {
	switch rt {
	case models.RankMostConsistent:
		return ws.Consistency
	case models.RankMost2PctSwings:
		return float64(ws.Swing2PctDays)
	case models.RankMost3PctSwings:
		return float64(ws.Swing3PctDays)
	case models.RankMostExtremeMoves:
		return float64(ws.ExtremeDays)
	default:
		return ws.AvgRange
	}
}

// Rank builds one table: tickers carrying the window, sorted descending by
// the ranking metric. Ties resolve alphabetically so repeated runs over the
// same inputs produce identical tables. Non-finite metrics are excluded.
func Rank(category models.Category, group []*models.TickerStats, rt models.RankingType, window models.Window) *models.RankingTable {
	rows := make([]models.RankedRow, 0, len(group))
	for _, st := range group {
		ws, ok := st.Windows[window]
		if !ok || ws == nil {
			continue
		}
		metric := rankMetric(rt, ws)
		if math.IsNaN(metric) || math.IsInf(metric, 0) {
			continue
		}
		rows = append(rows, models.RankedRow{Ticker: st.Ticker, Stats: *ws})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Ticker < rows[j].Ticker })
	sort.SliceStable(rows, func(i, j int) bool {
		return rankMetric(rt, &rows[i].Stats) > rankMetric(rt, &rows[j].Stats)
	})

	return &models.RankingTable{Category: category, Type: rt, Window: window, Rows: rows}
}

// RankAll builds every non-empty table for one window: three categories
// crossed with five ranking types.
func RankAll(results CategoryResults, window models.Window) []*models.RankingTable {
	var tables []*models.RankingTable
	for _, cat := range models.Categories() {
		group := results[cat]
		if len(group) == 0 {
			continue
		}
		for _, rt := range models.RankingTypes() {
			t := Rank(cat, group, rt, window)
			if len(t.Rows) == 0 {
				continue
			}
			tables = append(tables, t)
		}
	}
	return tables
}
