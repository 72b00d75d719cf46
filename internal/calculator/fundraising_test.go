package calculator

import (
	"testing"

	"github.com/rp1014/launchtrack/internal/model"
)

func TestOversubscription(t *testing.T) {
	got := Oversubscription(1_000_000, 250_000)
	if got == nil || *got != 4.0 {
		t.Errorf("oversubscription = %v, want 4.0", got)
	}
}

func TestOversubscription_NoMinimum(t *testing.T) {
	// No minimum raise means the ratio is undefined, not 1.0. Displaying
	// a break-even default is the presentation layer's call.
	if got := Oversubscription(1_000_000, 0); got != nil {
		t.Errorf("expected nil for zero minimum, got %v", *got)
	}
	if got := Oversubscription(1_000_000, -1); got != nil {
		t.Errorf("expected nil for negative minimum, got %v", *got)
	}
}

func TestAllocationRate(t *testing.T) {
	if got := AllocationRate(750_000, 1_500_000); got != 0.5 {
		t.Errorf("allocation rate = %v, want 0.5", got)
	}
	// No committed figure: full allocation assumed.
	if got := AllocationRate(750_000, 0); got != 1.0 {
		t.Errorf("allocation rate = %v, want 1.0 when nothing committed", got)
	}
}

func TestEffectiveContribution(t *testing.T) {
	if got := EffectiveContribution(10_000, 0.5); got != 5_000 {
		t.Errorf("effective contribution = %v, want 5000", got)
	}
}

func TestSaleRatio(t *testing.T) {
	got := SaleRatio(100_000_000, 1_000_000_000)
	if got == nil || *got != 10.0 {
		t.Errorf("sale ratio = %v, want 10.0", got)
	}
	if got := SaleRatio(100, 0); got != nil {
		t.Errorf("expected nil for zero supply, got %v", *got)
	}
}

func TestProfit(t *testing.T) {
	got := Profit(model.Float(0.30), 100_000_000, 7_500_000)
	if got == nil || *got != 22_500_000 {
		t.Errorf("profit = %v, want 22500000", got)
	}
	if got := Profit(nil, 100_000_000, 7_500_000); got != nil {
		t.Errorf("expected nil profit without a current price, got %v", *got)
	}
}
