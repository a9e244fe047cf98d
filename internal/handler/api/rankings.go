package api

import (
	"time"

	"VolScan/internal/domain/models"
	"VolScan/internal/repository"
	"VolScan/internal/service/ratelimit"
	"VolScan/internal/services/insights"
	xhttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
	"VolScan/pkg/util"

	"github.com/labstack/echo/v4"
)

// RateParams bounds the per-client token bucket.
type RateParams struct {
	Capacity     float64
	RefillPerSec float64
}

// Handler serves the read API over the analyzer's artifacts: the exported
// ranking tables and the stats snapshot.
type Handler struct {
	exportDir string
	cache     *repository.StatsCache
	limiter   *ratelimit.Limiter
	rate      RateParams
	l         *logger.Logger
}

// NewHandler creates the read API handler.
func NewHandler(exportDir string, cache *repository.StatsCache, limiter *ratelimit.Limiter, rate RateParams, l *logger.Logger) *Handler {
	return &Handler{
		exportDir: exportDir,
		cache:     cache,
		limiter:   limiter,
		rate:      rate,
		l:         l.With("api"),
	}
}

// RegisterRoutes wires the read endpoints.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api", h.rateLimit)
	g.GET("/rankings", h.Rankings)
	g.GET("/tickers", h.Tickers)
	g.GET("/tickers/:ticker", h.Ticker)
}

// rateLimit applies the per-remote token bucket to the /api group.
func (h *Handler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow("api:"+c.RealIP(), h.rate.Capacity, h.rate.RefillPerSec) {
			return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many requests"))
		}
		return next(c)
	}
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":  "ok",
		"tickers": h.cache.Len(),
		"time":    time.Now().UTC(),
	})
}

// Rankings returns one exported ranking table, truncated to the requested
// limit.
func (h *Handler) Rankings(c echo.Context) error {
	req := &models.RankingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	table, found, err := repository.LoadTable(h.exportDir,
		models.Category(req.Category),
		models.RankingType(req.Type),
		models.Window(req.Window))
	if err != nil {
		h.l.Error("ranking table read failed",
			logger.String("category", req.Category),
			logger.String("type", req.Type),
			logger.String("window", req.Window),
			logger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("ranking table unreadable").WithError(err))
	}
	if !found {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf(
			"no %s/%s ranking for window %s, run the analyzer first",
			req.Category, req.Type, req.Window))
	}

	rows := table.Rows
	if len(rows) > req.Limit {
		rows = rows[:req.Limit]
	}
	return xhttp.ListResponse(c, rows, int64(len(table.Rows)))
}

// Tickers lists every ticker present in the snapshot.
func (h *Handler) Tickers(c echo.Context) error {
	tickers := h.cache.Tickers()
	return xhttp.ListResponse(c, tickers, int64(len(tickers)))
}

// tickerResponse couples the stored stats with a derived insight report.
type tickerResponse struct {
	Ticker    string                `json:"ticker"`
	UpdatedAt time.Time             `json:"updated_at"`
	Stats     *models.TickerStats   `json:"stats"`
	Insight   *models.InsightReport `json:"insight,omitempty"`
}

// Ticker returns the stored stats for one ticker plus the insight report
// for the requested window. Entries are served regardless of cache TTL;
// UpdatedAt tells the client how old they are.
func (h *Handler) Ticker(c echo.Context) error {
	req := &models.TickerInsightRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ticker := util.NormalizeTicker(c.Param("ticker"))
	entry, ok := h.cache.Snapshot()[ticker]
	if !ok || entry.Stats == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("ticker %s not analyzed", ticker))
	}

	resp := &tickerResponse{
		Ticker:    ticker,
		UpdatedAt: entry.Timestamp,
		Stats:     entry.Stats,
	}
	window := models.Window(req.Window)
	if ws, ok := entry.Stats.Windows[window]; ok && ws != nil {
		report := insights.Analyze(ticker, window, *ws)
		resp.Insight = &report
	}
	return xhttp.SuccessResponse(c, resp)
}
