package market

import "github.com/rp1014/launchtrack/internal/model"

// SelectVenue picks the single authoritative venue for an asset: the one
// with the highest reported liquidity. Missing liquidity counts as zero.
// Ties keep the first venue seen, so the provider's own ordering acts as
// the final tie-break. Returns nil for an empty set, which downstream
// reads as "no current price from this provider".
func SelectVenue(venues []model.Venue) *model.Venue {
	var best *model.Venue
	bestLiq := -1.0
	for i := range venues {
		liq := 0.0
		if venues[i].Liquidity != nil {
			liq = *venues[i].Liquidity
		}
		if liq > bestLiq {
			best = &venues[i]
			bestLiq = liq
		}
	}
	return best
}
