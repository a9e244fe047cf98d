package models

import "time"

// Direction of a price move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ZScoreStats is the intermediate z-score snapshot for one ticker.
type ZScoreStats struct {
	ZScore     float64
	Mean       float64
	Std        float64
	LastReturn float64
	PctMove    float64
	Price      float64
	Bars       int
}

// MoveAlert is an unusual-move alert produced by the live scanner.
type MoveAlert struct {
	Ticker    string    `json:"ticker"`
	ZScore    float64   `json:"zscore"`
	PctMove   float64   `json:"pct_move"`
	Direction Direction `json:"direction"`
	Price     float64   `json:"price"`
	Bars      int       `json:"bars"`
	Time      time.Time `json:"time"`
}
