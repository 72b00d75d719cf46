package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDexScreener_Venues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/latest/dex/tokens/mintA", r.URL.Path)
		w.Write([]byte(`{"pairs":[
			{"pairAddress":"pool1","dexId":"raydium","priceUsd":"1.71",
			 "liquidity":{"usd":3400000},"volume":{"h24":1300000},
			 "priceChange":{"h24":13.66},"marketCap":17000000},
			{"pairAddress":"pool2","dexId":"orca","priceUsd":"1.70"}
		]}`))
	}))
	defer srv.Close()

	d := NewDexScreener(srv.URL, time.Second)
	got := d.Venues(context.Background(), "mintA")

	require.Len(t, got, 2)
	assert.Equal(t, "pool1", got[0].PairAddress)
	assert.Equal(t, "raydium", got[0].DexID)
	require.NotNil(t, got[0].PriceUSD)
	assert.Equal(t, 1.71, *got[0].PriceUSD)
	require.NotNil(t, got[0].Liquidity)
	assert.Equal(t, 3400000.0, *got[0].Liquidity)
	require.NotNil(t, got[0].Change24h)
	assert.Equal(t, 13.66, *got[0].Change24h)

	// pool2 omits the optional blocks: absent, not zero-filled.
	assert.Nil(t, got[1].Liquidity)
	assert.Nil(t, got[1].Volume24h)
	assert.Nil(t, got[1].MarketCap)
	require.NotNil(t, got[1].PriceUSD)
	assert.Equal(t, 1.70, *got[1].PriceUSD)
}

func TestDexScreener_FailSoft(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		d := NewDexScreener(srv.URL, time.Second)
		assert.Nil(t, d.Venues(context.Background(), "mintA"))
	})

	t.Run("NullPairs", func(t *testing.T) {
		// DexScreener returns {"pairs":null} for unknown tokens.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"schemaVersion":"1.0.0","pairs":null}`))
		}))
		defer srv.Close()

		d := NewDexScreener(srv.URL, time.Second)
		assert.Empty(t, d.Venues(context.Background(), "mintA"))
	})
}
