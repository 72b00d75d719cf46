package calculator

import (
	"testing"

	"github.com/rp1014/launchtrack/internal/model"
)

func TestExtrema(t *testing.T) {
	series := model.CandleSeries{
		{Ts: 1, High: 1, Low: 0.5},
		{Ts: 2, High: 5, Low: 0.2},
		{Ts: 3, High: 3, Low: 0.9},
	}
	high, low := Extrema(series)
	if high == nil || *high != 5 {
		t.Errorf("high = %v, want 5", high)
	}
	if low == nil || *low != 0.2 {
		t.Errorf("low = %v, want 0.2", low)
	}
}

func TestExtrema_Empty(t *testing.T) {
	high, low := Extrema(nil)
	if high != nil || low != nil {
		t.Errorf("expected (nil, nil) for empty series, got (%v, %v)", high, low)
	}
}

func TestExtrema_SkipsInvalidValues(t *testing.T) {
	// Zeroed highs/lows are skipped independently: a candle with a bad
	// high can still contribute its low.
	series := model.CandleSeries{
		{Ts: 1, High: 0, Low: 0.4},
		{Ts: 2, High: 2, Low: 0},
		{Ts: 3, High: -1, Low: -1},
	}
	high, low := Extrema(series)
	if high == nil || *high != 2 {
		t.Errorf("high = %v, want 2", high)
	}
	if low == nil || *low != 0.4 {
		t.Errorf("low = %v, want 0.4", low)
	}
}

func TestExtrema_AllInvalid(t *testing.T) {
	series := model.CandleSeries{
		{Ts: 1, High: 0, Low: 0},
		{Ts: 2, High: -3, Low: -3},
	}
	high, low := Extrema(series)
	if high != nil || low != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", high, low)
	}
}
