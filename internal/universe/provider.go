// Package universe assembles the set of tickers the analyzer walks.
package universe

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"VolScan/pkg/http"
	"VolScan/pkg/logger"
	"VolScan/pkg/util"
)

// screener symbols longer than this are warrants, units and other
// derivative listings we do not want
const maxSymbolLen = 5

// Universe is a categorized, deduplicated ticker set. Symbols present in
// both lists count as ETFs.
type Universe struct {
	ETFs   []string
	Stocks []string

	etfSet map[string]struct{}
}

// New builds a universe from explicit ETF and stock lists. Both lists are
// deduplicated and sorted; stocks already present as ETFs are dropped.
func New(etfs, stocks []string) *Universe {
	u := &Universe{
		ETFs:   util.DedupSorted(etfs),
		etfSet: make(map[string]struct{}, len(etfs)),
	}
	for _, t := range u.ETFs {
		u.etfSet[t] = struct{}{}
	}
	for _, t := range util.DedupSorted(stocks) {
		if _, dup := u.etfSet[t]; !dup {
			u.Stocks = append(u.Stocks, t)
		}
	}
	return u
}

// Static builds the universe from the curated lists alone.
func Static() *Universe {
	return New(staticETFs(), staticStocks())
}

// All returns every ticker, ETFs first, sorted within each category.
func (u *Universe) All() []string {
	out := make([]string, 0, len(u.ETFs)+len(u.Stocks))
	out = append(out, u.ETFs...)
	out = append(out, u.Stocks...)
	return out
}

// IsETF reports whether the ticker belongs to the ETF set.
func (u *Universe) IsETF(ticker string) bool {
	_, ok := u.etfSet[util.NormalizeTicker(ticker)]
	return ok
}

// Len returns the total number of tickers.
func (u *Universe) Len() int {
	return len(u.ETFs) + len(u.Stocks)
}

// Option configures a Provider.
type Option func(*Provider)

// WithExtra appends user-configured symbols to the stock set.
func WithExtra(symbols []string) Option {
	return func(p *Provider) {
		p.extra = symbols
	}
}

// WithScreener enables the remote screener merge.
func WithScreener(url string, limit int) Option {
	return func(p *Provider) {
		p.screenerURL = url
		p.screenerLimit = limit
	}
}

// Provider builds the ticker universe, optionally widening the curated
// stock list with the exchange screener.
type Provider struct {
	client *http.Client
	l      *logger.Logger

	extra         []string
	screenerURL   string
	screenerLimit int
}

// NewProvider creates a universe provider.
func NewProvider(client *http.Client, l *logger.Logger, opts ...Option) *Provider {
	p := &Provider{
		client:        client,
		l:             l,
		screenerLimit: 10000,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build assembles the universe. Screener failures degrade to the curated
// lists with a warning, never an error.
func (p *Provider) Build(ctx context.Context) *Universe {
	stocks := staticStocks()
	stocks = append(stocks, p.extra...)

	if p.screenerURL != "" {
		fetched, err := p.fetchScreener(ctx)
		if err != nil {
			p.l.Warn("screener fetch failed, using curated lists",
				logger.Error(err))
		} else {
			stocks = append(stocks, fetched...)
			p.l.Info("merged screener symbols", logger.Int("count", len(fetched)))
		}
	}

	u := New(staticETFs(), stocks)
	p.l.Info("universe built",
		logger.Int("etfs", len(u.ETFs)),
		logger.Int("stocks", len(u.Stocks)))
	return u
}

type screenerResponse struct {
	Data struct {
		Rows []struct {
			Symbol string `json:"symbol"`
		} `json:"rows"`
	} `json:"data"`
}

func (p *Provider) fetchScreener(ctx context.Context) ([]string, error) {
	var resp screenerResponse
	err := p.client.SendAndParse(ctx, &http.RequestOptions{
		Method: http.MethodGet,
		URL:    p.screenerURL,
		// the screener endpoint rejects non-browser requests
		Headers: map[string]string{"User-Agent": "Mozilla/5.0"},
		QueryParams: map[string][]string{
			"tableonly": {"true"},
			"limit":     {strconv.Itoa(p.screenerLimit)},
			"offset":    {"0"},
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, row := range resp.Data.Rows {
		s := strings.TrimSpace(row.Symbol)
		if s == "" || len(s) > maxSymbolLen {
			continue
		}
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols, nil
}
