package provider

import (
	"context"

	"github.com/rp1014/launchtrack/internal/model"
)

// Source adapters normalize one provider's raw response into canonical
// partial data. They share a single failure contract: transport errors,
// non-2xx statuses, malformed payloads, and well-formed-but-empty
// responses all collapse to the empty result. No error crosses the
// adapter boundary and no adapter retries internally; retry policy, if
// any, belongs to the caller.

// PriceSource resolves current prices for a batch of on-chain
// identifiers. Identifiers absent from the result had no price.
type PriceSource interface {
	Prices(ctx context.Context, mints []string) map[string]float64
	Name() string
}

// VenueSource lists the trading venues observed for one identifier.
type VenueSource interface {
	Venues(ctx context.Context, mint string) []model.Venue
	Name() string
}

// Timeframe is the candle granularity accepted by the candle provider.
type Timeframe string

const (
	TimeframeMinute Timeframe = "minute"
	TimeframeHour   Timeframe = "hour"
	TimeframeDay    Timeframe = "day"
)

// CandleSource fetches the OHLCV series for one venue. The returned
// window is whatever the provider serves (commonly capped near 1000
// bars); callers must treat extrema over it as approximations.
type CandleSource interface {
	Candles(ctx context.Context, pool string, tf Timeframe, aggregate, limit int) model.CandleSeries
	Name() string
}
