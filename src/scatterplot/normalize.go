// Package scatterplot renders a scatter plot of (x, y) samples with an
// optional smoothed trend curve. The pipeline is a single synchronous pass:
// normalize the input to a sorted numeric axis, collapse duplicate x values
// when curve fitting needs it, run the selected smoother, then draw scatter
// and curve through go-chart. Rendering writes into a caller supplied
// writer; there is no shared canvas state, so concurrent calls with
// distinct writers are safe.
package scatterplot

import (
	"fmt"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

// Series is the raw input to a plot: y values over either numeric or
// time-valued x. Exactly one of Xs and Times must be set, which keeps the x
// domain homogeneous by construction.
type Series struct {
	Xs    []float64
	Times []time.Time
	Ys    []float64
}

// normalize converts the series to a sorted numeric x axis. Time values map
// to the chart backend's numeric time representation so date ticks and the
// year formatter share one domain. The sort is stable, so ties keep their
// original order.
func (s Series) normalize() (xs, ys []float64, dateAxis bool, err error) {
	if s.Xs != nil && s.Times != nil {
		return nil, nil, false, &smooth.ConfigurationError{
			Param:  "xs",
			Reason: "both numeric and time x values set; use exactly one",
		}
	}
	n := len(s.Xs)
	if s.Times != nil {
		dateAxis = true
		n = len(s.Times)
	}
	if n == 0 {
		return nil, nil, false, &smooth.ConfigurationError{Param: "xs", Reason: "no x values"}
	}
	if len(s.Ys) != n {
		return nil, nil, false, &smooth.ConfigurationError{
			Param:  "xs/ys",
			Reason: fmt.Sprintf("length mismatch: %d x values vs %d y values", n, len(s.Ys)),
		}
	}

	xs = make([]float64, n)
	if dateAxis {
		for i, t := range s.Times {
			xs[i] = chart.TimeToFloat64(t)
		}
	} else {
		copy(xs, s.Xs)
	}
	ys = append([]float64(nil), s.Ys...)

	if !sort.Float64sAreSorted(xs) {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
		sx := make([]float64, n)
		sy := make([]float64, n)
		for i, j := range idx {
			sx[i] = xs[j]
			sy[i] = ys[j]
		}
		xs, ys = sx, sy
	}
	return xs, ys, dateAxis, nil
}

// timeFromFloat is the inverse of the backend's time-to-float conversion,
// used by the date axis tick formatter.
func timeFromFloat(v float64) time.Time {
	return time.Unix(0, int64(v))
}
