package models

// Requests for read API endpoints. Defined in domain for consistency and reuse.

type RankingRequest struct {
	Category string `query:"category" json:"category" default:"stocks" validate:"oneof=all stocks etfs"`
	Type     string `query:"type" json:"type" default:"highest_avg_range" validate:"oneof=highest_avg_range most_consistent most_2pct_swings most_3pct_swings most_extreme_moves"`
	Window   string `query:"window" json:"window" default:"last_30_days" validate:"oneof=today last_3_days last_7_days last_30_days last_3_months last_1_year"`
	Limit    int    `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=10000"`
}

type TickerInsightRequest struct {
	Window string `query:"window" json:"window" default:"last_30_days" validate:"oneof=today last_3_days last_7_days last_30_days last_3_months last_1_year"`
}
