package market

import (
	"testing"

	"github.com/rp1014/launchtrack/internal/model"
)

func TestSelectVenue_HighestLiquidity(t *testing.T) {
	venues := []model.Venue{
		{PairAddress: "a", Liquidity: model.Float(100)},
		{PairAddress: "b", Liquidity: model.Float(500)},
		{PairAddress: "c", Liquidity: model.Float(300)},
	}
	got := SelectVenue(venues)
	if got == nil || got.PairAddress != "b" {
		t.Fatalf("selected %+v, want venue b", got)
	}
}

func TestSelectVenue_TieKeepsFirst(t *testing.T) {
	venues := []model.Venue{
		{PairAddress: "a", Liquidity: model.Float(100)},
		{PairAddress: "b", Liquidity: model.Float(500)},
		{PairAddress: "c", Liquidity: model.Float(500)},
	}
	got := SelectVenue(venues)
	if got == nil || got.PairAddress != "b" {
		t.Fatalf("selected %+v, want first of the tied venues (b)", got)
	}
}

func TestSelectVenue_MissingLiquidityCountsAsZero(t *testing.T) {
	venues := []model.Venue{
		{PairAddress: "a"},
		{PairAddress: "b", Liquidity: model.Float(1)},
	}
	got := SelectVenue(venues)
	if got == nil || got.PairAddress != "b" {
		t.Fatalf("selected %+v, want venue b", got)
	}
}

func TestSelectVenue_AllMissingKeepsFirst(t *testing.T) {
	venues := []model.Venue{
		{PairAddress: "a"},
		{PairAddress: "b"},
	}
	got := SelectVenue(venues)
	if got == nil || got.PairAddress != "a" {
		t.Fatalf("selected %+v, want venue a", got)
	}
}

func TestSelectVenue_Empty(t *testing.T) {
	if got := SelectVenue(nil); got != nil {
		t.Fatalf("expected nil for empty venue set, got %+v", got)
	}
}
