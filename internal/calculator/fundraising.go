package calculator

// Fundraising economics derived from an asset's static sale figures.
// These are pure functions; any figure that cannot be computed is
// reported as nil rather than a conventional default, so presentation
// layers decide how to display "no minimum raise was set" themselves.

// Oversubscription is committed capital over the minimum raise target.
// Undefined (nil) when no positive minimum was set; a sale without a
// minimum has no break-even point to be over-subscribed against.
func Oversubscription(committed, minRaise float64) *float64 {
	if minRaise <= 0 {
		return nil
	}
	v := committed / minRaise
	return &v
}

// AllocationRate is the fraction of committed capital actually accepted.
// When no committed figure exists, full allocation is assumed (1.0).
func AllocationRate(raised, committed float64) float64 {
	if committed <= 0 {
		return 1.0
	}
	return raised / committed
}

// EffectiveContribution is the amount of a requested contribution that
// was actually accepted under the sale's allocation rate.
func EffectiveContribution(requested, allocationRate float64) float64 {
	return requested * allocationRate
}

// SaleRatio is the sale allocation as a percentage of total supply, or
// nil when total supply is unknown.
func SaleRatio(saleTokens, totalSupply float64) *float64 {
	if totalSupply <= 0 {
		return nil
	}
	v := saleTokens / totalSupply * 100
	return &v
}

// Profit is the mark-to-market gain of the sale allocation: current value
// of the sold tokens minus what was raised for them. Undefined without a
// current price.
func Profit(currentPrice *float64, saleTokens, raised float64) *float64 {
	if currentPrice == nil {
		return nil
	}
	v := *currentPrice*saleTokens - raised
	return &v
}
