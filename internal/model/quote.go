package model

// Quote is one provider's view of an asset's current market state.
// A failed fetch is represented by the absence of a Quote (nil), never by
// a zero-filled one.
type Quote struct {
	Source    string
	Price     float64
	Change24h *float64
	Volume24h *float64
	Liquidity *float64
	MarketCap *float64
	Venue     string
}

// Venue is one trading pair/pool through which an asset's market price is
// observed. All market fields are optional; providers frequently omit
// liquidity for new pools.
type Venue struct {
	PairAddress string
	DexID       string
	PriceUSD    *float64
	Liquidity   *float64
	Volume24h   *float64
	Change24h   *float64
	MarketCap   *float64
}
