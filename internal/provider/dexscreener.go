package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rp1014/launchtrack/internal/model"
)

const defaultDexScreenerBaseURL = "https://api.dexscreener.com"

// DexScreener lists the trading venues (pairs/pools) observed for a
// token, each with price, liquidity, volume, and 24h change figures.
type DexScreener struct {
	BaseURL string
	Client  *http.Client
}

// NewDexScreener creates a DexScreener venue adapter.
func NewDexScreener(baseURL string, timeout time.Duration) *DexScreener {
	if baseURL == "" {
		baseURL = defaultDexScreenerBaseURL
	}
	return &DexScreener{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  NewHTTPClient(timeout),
	}
}

func (d *DexScreener) Name() string { return "dexscreener" }

// dsPair mirrors the fields we read from the pairs payload. Liquidity and
// market cap are frequently missing for young pools, hence the pointer
// decode targets.
type dsPair struct {
	PairAddress string `json:"pairAddress"`
	DexID       string `json:"dexId"`
	PriceUSD    string `json:"priceUsd"`
	Liquidity   *struct {
		USD *float64 `json:"usd"`
	} `json:"liquidity"`
	Volume *struct {
		H24 *float64 `json:"h24"`
	} `json:"volume"`
	PriceChange *struct {
		H24 *float64 `json:"h24"`
	} `json:"priceChange"`
	MarketCap *float64 `json:"marketCap"`
}

type dsResponse struct {
	Pairs []dsPair `json:"pairs"`
}

// Venues returns every venue the provider lists for the mint, in the
// provider's order. On any failure it returns nil.
func (d *DexScreener) Venues(ctx context.Context, mint string) []model.Venue {
	out, err := d.fetchVenues(ctx, mint)
	if err != nil {
		log.Printf("[WARN] dexscreener %s: %v", mint, err)
		return nil
	}
	return out
}

func (d *DexScreener) fetchVenues(ctx context.Context, mint string) ([]model.Venue, error) {
	endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", d.BaseURL, url.PathEscape(mint))

	var resp dsResponse
	if err := getJSON(ctx, d.Client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetch venues: %w", err)
	}

	venues := make([]model.Venue, 0, len(resp.Pairs))
	for _, p := range resp.Pairs {
		v := model.Venue{
			PairAddress: p.PairAddress,
			DexID:       p.DexID,
			MarketCap:   p.MarketCap,
		}
		if price, err := strconv.ParseFloat(p.PriceUSD, 64); err == nil && price > 0 {
			v.PriceUSD = model.Float(price)
		}
		if p.Liquidity != nil {
			v.Liquidity = p.Liquidity.USD
		}
		if p.Volume != nil {
			v.Volume24h = p.Volume.H24
		}
		if p.PriceChange != nil {
			v.Change24h = p.PriceChange.H24
		}
		venues = append(venues, v)
	}
	return venues, nil
}
