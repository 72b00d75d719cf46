package model

import "time"

// Metric is a derived return figure. It exists only when both the basis
// and the observed value were available and the basis was positive; a
// missing metric is a nil *Metric, never a zero-valued one.
type Metric struct {
	Basis    float64 `json:"basis"`
	Observed float64 `json:"observed"`
	Multiple float64 `json:"multiple"`
	Percent  float64 `json:"percent"`
}

// Record is the per-asset output of one aggregation run: the asset's
// static definition merged with the selected quote and every derived
// metric. Pointer fields are nil when the underlying data was
// unavailable; consumers must not assume zero-filling.
//
// A Record has no identity across runs. It is built once, handed to the
// consumer, and discarded.
type Record struct {
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	Mint           string `json:"mint"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Permissionless bool   `json:"permissionless"`

	ICOPrice    float64  `json:"ico_price"`
	ICODate     string   `json:"ico_date,omitempty"`
	LaunchPrice *float64 `json:"launch_price,omitempty"`

	SaleTokens       float64  `json:"sale_tokens"`
	TotalSupply      float64  `json:"total_supply"`
	MonthlyAllowance *float64 `json:"monthly_allowance,omitempty"`

	CurrentPrice *float64 `json:"current_price,omitempty"`
	PriceSource  string   `json:"price_source,omitempty"`
	Change24h    *float64 `json:"change_24h,omitempty"`
	Volume24h    *float64 `json:"volume_24h,omitempty"`
	Liquidity    *float64 `json:"liquidity,omitempty"`
	MarketCap    *float64 `json:"market_cap,omitempty"`
	VenueAddress string   `json:"venue_address,omitempty"`
	VenueDex     string   `json:"venue_dex,omitempty"`

	// ATH/ATL are bounded by whatever candle window the provider returned
	// (commonly capped near 1000 bars). They are a proxy for the true
	// all-time extrema, not the real thing.
	ATH *float64 `json:"ath,omitempty"`
	ATL *float64 `json:"atl,omitempty"`

	// TGEAnchorPrice is the close of the candle nearest the configured
	// offset after the token generation event.
	TGEAnchorPrice *float64 `json:"tge_anchor_price,omitempty"`

	ROI       *Metric `json:"roi,omitempty"`
	LaunchROI *Metric `json:"launch_roi,omitempty"`
	ATHROI    *Metric `json:"ath_roi,omitempty"`
	ATLROI    *Metric `json:"atl_roi,omitempty"`
	AnchorROI *Metric `json:"anchor_roi,omitempty"`

	Committed        float64  `json:"committed"`
	Raised           float64  `json:"raised"`
	MinRaise         float64  `json:"min_raise"`
	Contributors     int      `json:"contributors"`
	Oversubscription *float64 `json:"oversubscription,omitempty"`
	AllocationRate   float64  `json:"allocation_rate"`
	SaleRatio        *float64 `json:"sale_ratio,omitempty"`
	Profit           *float64 `json:"profit,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Float returns a pointer to v. Convenience for the optional fields above.
func Float(v float64) *float64 { return &v }
