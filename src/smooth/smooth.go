// Package smooth implements the curve fitting strategies used to overlay a
// trend line on a scatter plot: linear and polynomial least squares, lowess
// (locally weighted regression) and a penalized smoothing spline.
//
// Each strategy is a separate Method value carrying only the parameters it
// uses. Fit evaluates the fitted curve at the input x positions, so the
// result is always aligned one-to-one with xs.
package smooth

import (
	"fmt"
	"math"
)

// Method is one curve fitting strategy.
type Method interface {
	// Name returns the selector name understood by Parse.
	Name() string
	// RequiresUniqueX reports whether Fit demands strictly increasing x
	// values. Callers feeding duplicate x to such a method get a FitError.
	RequiresUniqueX() bool
	// Fit computes fitted y values aligned with xs. xs must be sorted
	// ascending; ys must have the same length.
	Fit(xs, ys []float64) ([]float64, error)
}

// checkPoints validates the shared preconditions of every Fit implementation.
func checkPoints(method string, xs, ys []float64, strict bool) error {
	if len(xs) != len(ys) {
		return &ConfigurationError{
			Param:  "xs/ys",
			Reason: fmt.Sprintf("length mismatch: %d x values vs %d y values", len(xs), len(ys)),
		}
	}
	if len(xs) == 0 {
		return &FitError{Method: method, Reason: "no data points"}
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return &FitError{Method: method, Reason: "x values are not sorted ascending"}
		}
		if strict && xs[i] == xs[i-1] {
			return &FitError{
				Method: method,
				Reason: fmt.Sprintf("duplicate x value %v: strictly increasing x required", xs[i]),
			}
		}
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &FitError{Method: method, Reason: "non-finite x value"}
		}
	}
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return &FitError{Method: method, Reason: "non-finite y value"}
		}
	}
	return nil
}
