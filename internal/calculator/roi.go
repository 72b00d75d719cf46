package calculator

import "github.com/rp1014/launchtrack/internal/model"

// ROI derives the return metric of an observed price against a basis
// price. It is defined only when both values are present and the basis is
// positive; in every other case it returns nil. Absence propagates as
// absence — a missing input is never substituted with a default, and the
// division by basis can therefore never be a division by zero.
func ROI(observed, basis *float64) *model.Metric {
	if observed == nil || basis == nil || *basis <= 0 {
		return nil
	}
	return &model.Metric{
		Basis:    *basis,
		Observed: *observed,
		Multiple: *observed / *basis,
		Percent:  (*observed - *basis) / *basis * 100,
	}
}
