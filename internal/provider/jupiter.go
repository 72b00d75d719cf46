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
)

const defaultJupiterBaseURL = "https://api.jup.ag"

// Jupiter queries the Jupiter Price API v2 for spot prices. Up to 100
// mints can be resolved in one request, which is why the aggregator
// batches all assets into a single call.
type Jupiter struct {
	BaseURL string
	Client  *http.Client
}

// NewJupiter creates a Jupiter price adapter. baseURL may be empty to use
// the public endpoint.
func NewJupiter(baseURL string, timeout time.Duration) *Jupiter {
	if baseURL == "" {
		baseURL = defaultJupiterBaseURL
	}
	return &Jupiter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  NewHTTPClient(timeout),
	}
}

func (j *Jupiter) Name() string { return "jupiter" }

// jupiterResponse is the v2 price payload. Prices arrive as strings.
type jupiterResponse struct {
	Data map[string]struct {
		ID    string `json:"id"`
		Price string `json:"price"`
	} `json:"data"`
}

// Prices resolves current USD prices for the given mints. On any failure
// it returns nil; mints the API did not price are simply absent from the
// result.
func (j *Jupiter) Prices(ctx context.Context, mints []string) map[string]float64 {
	out, err := j.fetchPrices(ctx, mints)
	if err != nil {
		log.Printf("[WARN] jupiter: %v", err)
		return nil
	}
	return out
}

func (j *Jupiter) fetchPrices(ctx context.Context, mints []string) (map[string]float64, error) {
	if len(mints) == 0 {
		return nil, nil
	}
	endpoint := fmt.Sprintf("%s/price/v2?ids=%s", j.BaseURL, url.QueryEscape(strings.Join(mints, ",")))

	var resp jupiterResponse
	if err := getJSON(ctx, j.Client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	out := make(map[string]float64, len(resp.Data))
	for mint, entry := range resp.Data {
		p, err := strconv.ParseFloat(entry.Price, 64)
		if err != nil || p <= 0 {
			continue
		}
		out[mint] = p
	}
	return out, nil
}
