package provider

import (
	"context"

	"github.com/rp1014/launchtrack/internal/model"
)

// Static serves fixed data for development and testing. It implements
// all three source interfaces; unset maps behave like provider failures.
type Static struct {
	PriceByMint   map[string]float64
	VenuesByMint  map[string][]model.Venue
	CandlesByPool map[string]model.CandleSeries
}

func (s *Static) Name() string { return "static" }

func (s *Static) Prices(_ context.Context, mints []string) map[string]float64 {
	if s.PriceByMint == nil {
		return nil
	}
	out := make(map[string]float64, len(mints))
	for _, m := range mints {
		if p, ok := s.PriceByMint[m]; ok {
			out[m] = p
		}
	}
	return out
}

func (s *Static) Venues(_ context.Context, mint string) []model.Venue {
	return s.VenuesByMint[mint]
}

func (s *Static) Candles(_ context.Context, pool string, _ Timeframe, _ int, _ int) model.CandleSeries {
	return s.CandlesByPool[pool]
}
