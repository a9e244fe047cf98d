package notify

import (
	"context"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/pkg/logger"
)

// LogNotifier writes alerts to the structured log. Used when no delivery
// channel is configured.
type LogNotifier struct {
	l *logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(l *logger.Logger) drepo.Notifier {
	return &LogNotifier{l: l.With("alerts")}
}

func (n *LogNotifier) Enabled() bool { return true }

func (n *LogNotifier) Notify(_ context.Context, alert *models.MoveAlert) error {
	n.l.Info("unusual move",
		logger.String("ticker", alert.Ticker),
		logger.Float64("zscore", alert.ZScore),
		logger.Float64("pct_move", alert.PctMove),
		logger.String("direction", string(alert.Direction)),
		logger.Float64("price", alert.Price),
		logger.Int("bars", alert.Bars))
	return nil
}
