package market

import "github.com/rp1014/launchtrack/internal/model"

// NearestCandle returns the candle whose timestamp is closest to target,
// provided the distance is within tolerance (both in seconds). Ties keep
// the candle encountered first. This is a nearest-neighbor lookup, not
// interpolation; it answers "what was the price around time T", e.g. N
// minutes after the token generation event. Returns nil when nothing in
// the series is close enough.
func NearestCandle(series model.CandleSeries, target, tolerance int64) *model.Candle {
	if tolerance < 0 {
		return nil
	}
	var best *model.Candle
	var bestDist int64
	for i := range series {
		dist := series[i].Ts - target
		if dist < 0 {
			dist = -dist
		}
		if dist > tolerance {
			continue
		}
		if best == nil || dist < bestDist {
			best = &series[i]
			bestDist = dist
		}
	}
	return best
}
