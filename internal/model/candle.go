package model

// Candle represents a single OHLCV bar at a Unix timestamp.
type Candle struct {
	Ts     int64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// CandleSeries holds the bars returned for one venue. No ordering is
// assumed; providers return newest-first, oldest-first, or worse.
type CandleSeries []Candle
