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

func TestGeckoTerminal_Candles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/networks/solana/pools/pool1/ohlcv/day", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("aggregate"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":{"attributes":{"ohlcv_list":[
			[1728259200,1.50,1.80,1.40,1.71,250000],
			[1728172800,1.20,1.55,1.10,1.50,310000],
			[1728086400,0.90]
		]}}}`))
	}))
	defer srv.Close()

	g := NewGeckoTerminal(srv.URL, "solana", time.Second)
	got := g.Candles(context.Background(), "pool1", TimeframeDay, 1, 1000)

	require.Len(t, got, 2, "short rows are dropped")
	assert.Equal(t, int64(1728259200), got[0].Ts)
	assert.Equal(t, 1.80, got[0].High)
	assert.Equal(t, 1.40, got[0].Low)
	assert.Equal(t, 1.71, got[0].Close)
	assert.Equal(t, 250000.0, got[0].Volume)
}

func TestGeckoTerminal_ClampsRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("aggregate"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":{"attributes":{"ohlcv_list":[]}}}`))
	}))
	defer srv.Close()

	g := NewGeckoTerminal(srv.URL, "solana", time.Second)
	got := g.Candles(context.Background(), "pool1", TimeframeDay, -5, 9999)
	assert.Empty(t, got)
}

func TestGeckoTerminal_FailSoft(t *testing.T) {
	t.Run("ServerError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream error", http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewGeckoTerminal(srv.URL, "solana", time.Second)
		assert.Nil(t, g.Candles(context.Background(), "pool1", TimeframeDay, 1, 1000))
	})

	t.Run("MalformedBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"attributes":{"ohlcv_list":"oops"}}}`))
		}))
		defer srv.Close()

		g := NewGeckoTerminal(srv.URL, "solana", time.Second)
		assert.Nil(t, g.Candles(context.Background(), "pool1", TimeframeDay, 1, 1000))
	})
}
