package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rp1014/launchtrack/internal/model"
)

const defaultGeckoTerminalBaseURL = "https://api.geckoterminal.com/api/v2"

// GeckoTerminal fetches OHLCV candles for a pool. The API serves at most
// ~1000 bars per request, so any extremum derived from the series covers
// that window only, not the token's full history.
type GeckoTerminal struct {
	BaseURL string
	Network string
	Client  *http.Client
}

// NewGeckoTerminal creates a GeckoTerminal candle adapter for one
// network (e.g. "solana").
func NewGeckoTerminal(baseURL, network string, timeout time.Duration) *GeckoTerminal {
	if baseURL == "" {
		baseURL = defaultGeckoTerminalBaseURL
	}
	if network == "" {
		network = "solana"
	}
	return &GeckoTerminal{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Network: network,
		Client:  NewHTTPClient(timeout),
	}
}

func (g *GeckoTerminal) Name() string { return "geckoterminal" }

// gtResponse wraps the ohlcv_list payload: rows of
// [timestamp, open, high, low, close, volume], newest first.
type gtResponse struct {
	Data struct {
		Attributes struct {
			List [][]float64 `json:"ohlcv_list"`
		} `json:"attributes"`
	} `json:"data"`
}

// Candles fetches the OHLCV series for a pool address. On any failure it
// returns nil. Rows with fewer than six fields are dropped rather than
// failing the whole series.
func (g *GeckoTerminal) Candles(ctx context.Context, pool string, tf Timeframe, aggregate, limit int) model.CandleSeries {
	out, err := g.fetchCandles(ctx, pool, tf, aggregate, limit)
	if err != nil {
		log.Printf("[WARN] geckoterminal %s: %v", pool, err)
		return nil
	}
	return out
}

func (g *GeckoTerminal) fetchCandles(ctx context.Context, pool string, tf Timeframe, aggregate, limit int) (model.CandleSeries, error) {
	if aggregate <= 0 {
		aggregate = 1
	}
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	endpoint := fmt.Sprintf("%s/networks/%s/pools/%s/ohlcv/%s?aggregate=%d&limit=%d",
		g.BaseURL, url.PathEscape(g.Network), url.PathEscape(pool), string(tf), aggregate, limit)

	var resp gtResponse
	if err := getJSON(ctx, g.Client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetch ohlcv: %w", err)
	}

	series := make(model.CandleSeries, 0, len(resp.Data.Attributes.List))
	for _, row := range resp.Data.Attributes.List {
		if len(row) < 6 {
			continue
		}
		series = append(series, model.Candle{
			Ts:     int64(row[0]),
			Open:   row[1],
			High:   row[2],
			Low:    row[3],
			Close:  row[4],
			Volume: row[5],
		})
	}
	return series, nil
}
