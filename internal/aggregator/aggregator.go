package aggregator

import (
	"context"
	"log"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rp1014/launchtrack/internal/calculator"
	"github.com/rp1014/launchtrack/internal/market"
	"github.com/rp1014/launchtrack/internal/model"
	"github.com/rp1014/launchtrack/internal/provider"
)

// Aggregator builds one Record per configured asset by reconciling the
// three providers. Assets are processed sequentially in configuration
// order; one asset's failures never affect another's record. Between
// assets a fixed delay keeps the per-venue providers under their rate
// limits.
type Aggregator struct {
	Prices  provider.PriceSource
	Venues  provider.VenueSource
	Candles provider.CandleSource

	Assets []model.AssetDefinition

	// Candle request shape passed through to the candle provider.
	Timeframe   provider.Timeframe
	Aggregate   int
	CandleLimit int

	// AnchorOffset places the time-anchored return measurement relative
	// to the token generation event; AnchorTolerance bounds how far the
	// nearest candle may be from that point.
	AnchorOffset    time.Duration
	AnchorTolerance time.Duration

	// AssetDelay is inserted between successive assets. Purely a
	// rate-limit concession, not a correctness requirement.
	AssetDelay time.Duration

	// Clock defaults to the wall clock; tests inject a mock.
	Clock clock.Clock
}

// Result is the outcome of one aggregation run. Degraded is set when not
// a single asset resolved a current price, so the caller can apply its
// own fallback policy.
type Result struct {
	Records  []model.Record
	Degraded bool
}

func (a *Aggregator) clock() clock.Clock {
	if a.Clock != nil {
		return a.Clock
	}
	return clock.New()
}

// Run processes every configured asset and returns the assembled
// records. Cancelling the context stops the run between assets; records
// already built are returned alongside the context error, and remain
// usable.
func (a *Aggregator) Run(ctx context.Context) (*Result, error) {
	clk := a.clock()

	mints := make([]string, 0, len(a.Assets))
	for _, asset := range a.Assets {
		mints = append(mints, asset.Mint)
	}
	// One batched spot-price call covers every asset.
	prices := a.Prices.Prices(ctx, mints)

	res := &Result{Records: make([]model.Record, 0, len(a.Assets))}
	for i, asset := range a.Assets {
		if i > 0 && a.AssetDelay > 0 {
			select {
			case <-ctx.Done():
				res.Degraded = allPricesMissing(res.Records)
				return res, ctx.Err()
			case <-clk.After(a.AssetDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			res.Degraded = allPricesMissing(res.Records)
			return res, err
		}
		res.Records = append(res.Records, a.buildRecord(ctx, clk, asset, prices))
	}

	res.Degraded = allPricesMissing(res.Records)
	if res.Degraded {
		log.Printf("[WARN] aggregation degraded: no asset resolved a current price")
	}
	return res, nil
}

// buildRecord assembles one asset's record from whatever subset of
// provider data is available. Missing data surfaces as nil fields.
func (a *Aggregator) buildRecord(ctx context.Context, clk clock.Clock, asset model.AssetDefinition, prices map[string]float64) model.Record {
	rec := model.Record{
		Symbol:           asset.Symbol,
		Name:             asset.Name,
		Mint:             asset.Mint,
		Category:         asset.Category,
		Description:      asset.Description,
		Permissionless:   asset.Permissionless,
		ICOPrice:         asset.ICOPrice,
		ICODate:          asset.ICODate,
		LaunchPrice:      asset.LaunchPrice,
		SaleTokens:       asset.SaleTokens,
		TotalSupply:      asset.TotalSupply,
		MonthlyAllowance: asset.MonthlyAllowance,
		Committed:        asset.Committed,
		Raised:           asset.Raised,
		MinRaise:         asset.MinRaise,
		Contributors:     asset.Contributors,
		FetchedAt:        clk.Now(),
	}

	var current *float64
	if p, ok := prices[asset.Mint]; ok && p > 0 {
		current = model.Float(p)
		rec.PriceSource = a.Prices.Name()
	}

	venues := a.Venues.Venues(ctx, asset.Mint)
	venue := market.SelectVenue(venues)

	var series model.CandleSeries
	if venue != nil {
		rec.VenueAddress = venue.PairAddress
		rec.VenueDex = venue.DexID
		rec.Liquidity = venue.Liquidity
		rec.Volume24h = venue.Volume24h
		rec.Change24h = venue.Change24h
		rec.MarketCap = venue.MarketCap

		// Venue price is the fallback when the spot provider failed.
		if current == nil && venue.PriceUSD != nil {
			current = venue.PriceUSD
			rec.PriceSource = a.Venues.Name()
		}

		series = a.Candles.Candles(ctx, venue.PairAddress, a.Timeframe, a.Aggregate, a.CandleLimit)
	}

	rec.CurrentPrice = current
	rec.ATH, rec.ATL = calculator.Extrema(series)

	if tge, ok := asset.TGE(); ok && len(series) > 0 {
		target := tge.Add(a.AnchorOffset).Unix()
		if c := market.NearestCandle(series, target, int64(a.AnchorTolerance/time.Second)); c != nil {
			rec.TGEAnchorPrice = model.Float(c.Close)
		}
	}

	basis := model.Float(asset.ICOPrice)
	rec.ROI = calculator.ROI(current, basis)
	rec.LaunchROI = calculator.ROI(asset.LaunchPrice, basis)
	rec.ATHROI = calculator.ROI(rec.ATH, basis)
	rec.ATLROI = calculator.ROI(rec.ATL, basis)
	rec.AnchorROI = calculator.ROI(rec.TGEAnchorPrice, basis)

	if asset.Oversubscription != nil {
		rec.Oversubscription = asset.Oversubscription
	} else {
		rec.Oversubscription = calculator.Oversubscription(asset.Committed, asset.MinRaise)
	}
	rec.AllocationRate = calculator.AllocationRate(asset.Raised, asset.Committed)
	rec.SaleRatio = calculator.SaleRatio(asset.SaleTokens, asset.TotalSupply)
	rec.Profit = calculator.Profit(current, asset.SaleTokens, asset.Raised)

	return rec
}

func allPricesMissing(records []model.Record) bool {
	if len(records) == 0 {
		return true
	}
	for _, r := range records {
		if r.CurrentPrice != nil {
			return false
		}
	}
	return true
}
