package smooth

import (
	"fmt"
	"strings"
)

// Params carries the numeric knobs for the string-selector front ends (CLI
// flags, viewer widgets). Each Method built by Parse picks out only the
// fields it uses.
type Params struct {
	Degree    int
	Frac      float64
	Iter      int
	Delta     float64
	Smoothing float64
	Weights   []float64
}

// DefaultParams mirrors the historical defaults of the plotting call.
func DefaultParams() Params {
	return Params{Degree: 1, Frac: 0.66, Iter: 3}
}

// Parse resolves a smoother selector name to a Method. The empty string and
// "none" select no smoothing and return a nil Method. Unknown names are a
// ConfigurationError naming the offending value.
func Parse(name string, p Params) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "linear":
		return Linear{}, nil
	case "poly":
		return Polynomial{Degree: p.Degree}, nil
	case "lowess":
		return Lowess{Frac: p.Frac, Iter: p.Iter, Delta: p.Delta}, nil
	case "splines":
		return Spline{Degree: p.Degree, Smoothing: p.Smoothing, Weights: p.Weights}, nil
	default:
		return nil, &ConfigurationError{
			Param:  "smoother",
			Reason: fmt.Sprintf("unknown smoother %q (valid: none, linear, poly, lowess, splines)", name),
		}
	}
}
