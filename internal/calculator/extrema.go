package calculator

import "github.com/rp1014/launchtrack/internal/model"

// Extrema scans a candle series and returns the high-of-highs and
// low-of-lows. Candles with non-positive highs are ignored for the high,
// and candles with non-positive lows for the low, independently; candle
// feeds for young pools routinely contain zeroed bars.
//
// The result is only an all-time-high/low proxy: it covers whatever
// window the candle provider returned (often capped near 1000 bars), not
// the token's full trading history. Callers presenting it as ATH/ATL
// should label it accordingly.
//
// An empty series, or one with no valid values, yields (nil, nil).
func Extrema(series model.CandleSeries) (high, low *float64) {
	for _, c := range series {
		if c.High > 0 && (high == nil || c.High > *high) {
			h := c.High
			high = &h
		}
		if c.Low > 0 && (low == nil || c.Low < *low) {
			l := c.Low
			low = &l
		}
	}
	return high, low
}
