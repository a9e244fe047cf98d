// Package notify delivers move alerts to external channels.
package notify

import (
	"context"
	"fmt"
	"math"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	apphttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
)

const defaultAPIBase = "https://api.telegram.org"

// ultra severity kicks in beyond 3 sigma
const ultraSeverity = 3.0

// TelegramOption configures the notifier.
type TelegramOption func(*Telegram)

// WithBaseURL overrides the Bot API base. Tests point this at a local server.
func WithBaseURL(base string) TelegramOption {
	return func(t *Telegram) {
		t.apiBase = base
	}
}

// Telegram sends alerts through the Bot API. Missing credentials disable
// delivery without failing: Notify becomes a no-op so scanning continues.
type Telegram struct {
	token   string
	chatID  string
	apiBase string
	http    *apphttp.Client
	l       *logger.Logger
}

// NewTelegram creates a Telegram notifier.
func NewTelegram(token, chatID string, httpClient *apphttp.Client, l *logger.Logger, opts ...TelegramOption) drepo.Notifier {
	t := &Telegram{
		token:   token,
		chatID:  chatID,
		apiBase: defaultAPIBase,
		http:    httpClient,
		l:       l.With("telegram"),
	}
	for _, opt := range opts {
		opt(t)
	}
	if !t.Enabled() {
		t.l.Debug("credentials not set, alerts will be logged only")
	}
	return t
}

// Enabled reports whether both credentials are present.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

// Notify formats and sends one alert message.
func (t *Telegram) Notify(ctx context.Context, alert *models.MoveAlert) error {
	if !t.Enabled() {
		return nil
	}

	payload := map[string]string{
		"chat_id":    t.chatID,
		"text":       formatMessage(alert),
		"parse_mode": "HTML",
	}
	err := t.http.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodPost,
		URL:    fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token),
		Body:   payload,
	}, nil)
	if err != nil {
		return fmt.Errorf("send telegram alert: %w", err)
	}
	return nil
}

func formatMessage(alert *models.MoveAlert) string {
	direction := "📈 UP"
	if alert.Direction == models.DirectionDown {
		direction = "📉 DOWN"
	}
	emoji := "⚠️"
	if math.Abs(alert.ZScore) > ultraSeverity {
		emoji = "🚨"
	}

	return fmt.Sprintf(`%s <b>2σ+ Intraday Move Detected</b>

<b>Ticker:</b> %s
<b>Z-score:</b> %.2f
<b>Price Move:</b> %+.2f%%
<b>Direction:</b> %s
<b>Time:</b> %s
<b>Current Price:</b> $%.2f`,
		emoji,
		alert.Ticker,
		alert.ZScore,
		alert.PctMove,
		direction,
		alert.Time.Format("2006-01-02 15:04:05"),
		alert.Price,
	)
}
