package models

// Category partitions the universe for aggregation.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryStocks Category = "stocks"
	CategoryETFs   Category = "etfs"
)

// Categories lists all aggregation categories.
func Categories() []Category {
	return []Category{CategoryAll, CategoryStocks, CategoryETFs}
}

// RankingType identifies one of the ranking criteria.
type RankingType string

const (
	RankHighestAvgRange  RankingType = "highest_avg_range"
	RankMostConsistent   RankingType = "most_consistent"
	RankMost2PctSwings   RankingType = "most_2pct_swings"
	RankMost3PctSwings   RankingType = "most_3pct_swings"
	RankMostExtremeMoves RankingType = "most_extreme_moves"
)

// RankingTypes lists all ranking criteria.
func RankingTypes() []RankingType {
	return []RankingType{
		RankHighestAvgRange,
		RankMostConsistent,
		RankMost2PctSwings,
		RankMost3PctSwings,
		RankMostExtremeMoves,
	}
}

// RankedRow is one ticker with its window metrics inside a ranking table.
type RankedRow struct {
	Ticker string      `json:"ticker"`
	Stats  WindowStats `json:"stats"`
}

// RankingTable is an ordered ranking of tickers for one
// (category, ranking type, window) triple.
type RankingTable struct {
	Category Category    `json:"category"`
	Type     RankingType `json:"type"`
	Window   Window      `json:"window"`
	Rows     []RankedRow `json:"rows"`
}
