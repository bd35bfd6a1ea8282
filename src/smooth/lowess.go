package smooth

import (
	"fmt"
	"math"
	"sort"
)

// Lowess is Cleveland's locally weighted scatterplot smoothing: each fitted
// value comes from a tricube-weighted linear regression over the nearest
// neighborhood, optionally robustified against outliers with bisquare
// reweighting.
type Lowess struct {
	// Frac is the fraction of points used for each local fit, in (0, 1].
	Frac float64
	// Iter is the number of robustifying reweighting passes, >= 0.
	Iter int
	// Delta is the x distance below which neighboring points reuse a
	// linearly interpolated value instead of a fresh local fit. Zero fits
	// every point directly.
	Delta float64
}

func (Lowess) Name() string          { return "lowess" }
func (Lowess) RequiresUniqueX() bool { return true }

func (l Lowess) Fit(xs, ys []float64) ([]float64, error) {
	if l.Frac <= 0 || l.Frac > 1 {
		return nil, &ConfigurationError{
			Param:  "frac",
			Reason: fmt.Sprintf("must be in (0, 1], got %v", l.Frac),
		}
	}
	if l.Iter < 0 {
		return nil, &ConfigurationError{
			Param:  "it",
			Reason: fmt.Sprintf("must be >= 0, got %d", l.Iter),
		}
	}
	if l.Delta < 0 {
		return nil, &ConfigurationError{
			Param:  "delta",
			Reason: fmt.Sprintf("must be >= 0, got %v", l.Delta),
		}
	}
	if err := checkPoints("lowess", xs, ys, true); err != nil {
		return nil, err
	}

	n := len(xs)
	if n == 1 {
		return []float64{ys[0]}, nil
	}
	// neighborhood size, at least two points
	r := int(math.Ceil(l.Frac * float64(n)))
	if r < 2 {
		r = 2
	}
	if r > n {
		r = n
	}

	fitted := make([]float64, n)
	robust := make([]float64, n)
	for i := range robust {
		robust[i] = 1
	}

	for pass := 0; ; pass++ {
		l.onePass(xs, ys, robust, fitted, r)
		if pass >= l.Iter {
			break
		}
		if !updateRobustWeights(ys, fitted, robust) {
			break
		}
	}
	return fitted, nil
}

// onePass fits every point once with the current robustness weights,
// skipping points within Delta of the last direct fit and filling them by
// linear interpolation.
func (l Lowess) onePass(xs, ys, robust, fitted []float64, r int) {
	n := len(xs)
	lo, hi := 0, r-1
	last := -1
	i := 0
	for {
		// slide the window so it holds the r nearest points to xs[i]
		for hi < n-1 && xs[i]-xs[lo] > xs[hi+1]-xs[i] {
			lo++
			hi++
		}
		fitted[i] = localLine(xs, ys, robust, xs[i], lo, hi)
		if last >= 0 && i > last+1 {
			span := xs[i] - xs[last]
			for j := last + 1; j < i; j++ {
				a := (xs[j] - xs[last]) / span
				fitted[j] = a*fitted[i] + (1-a)*fitted[last]
			}
		}
		last = i
		if i == n-1 {
			return
		}
		// farthest point within Delta of the current one is skipped; it
		// and everything in between come from interpolation next round
		cut := xs[i] + l.Delta
		next := i + 1
		for next < n-1 && xs[next+1] <= cut {
			next++
		}
		i = next
	}
}

// localLine runs a weighted linear regression over the window [lo, hi] and
// evaluates it at x0. Tricube distance weights are combined with the
// robustness weights from previous iterations.
func localLine(xs, ys, robust []float64, x0 float64, lo, hi int) float64 {
	h := math.Max(x0-xs[lo], xs[hi]-x0)
	var sw, swx, swy float64
	w := make([]float64, hi-lo+1)
	for j := lo; j <= hi; j++ {
		wj := robust[j]
		if h > 0 {
			wj *= tricube(math.Abs(xs[j]-x0) / h)
		}
		w[j-lo] = wj
		sw += wj
		swx += wj * xs[j]
		swy += wj * ys[j]
	}
	if sw <= 0 {
		return ys[int(math.Round(float64(lo+hi)/2))]
	}
	mx := swx / sw
	my := swy / sw
	var num, den float64
	for j := lo; j <= hi; j++ {
		dx := xs[j] - mx
		num += w[j-lo] * dx * (ys[j] - my)
		den += w[j-lo] * dx * dx
	}
	if den <= 1e-12*h*h || den == 0 {
		return my
	}
	b := num / den
	return my + b*(x0-mx)
}

// updateRobustWeights recomputes bisquare robustness weights from the
// current residuals. It reports false when the residuals are all (near)
// zero, in which case further iterations cannot change the fit.
func updateRobustWeights(ys, fitted, robust []float64) bool {
	n := len(ys)
	resid := make([]float64, n)
	for i := range ys {
		resid[i] = math.Abs(ys[i] - fitted[i])
	}
	sorted := append([]float64(nil), resid...)
	sort.Float64s(sorted)
	var med float64
	if n%2 == 1 {
		med = sorted[n/2]
	} else {
		med = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	if med <= 0 {
		return false
	}
	cut := 6 * med
	for i := range robust {
		robust[i] = bisquare(resid[i] / cut)
	}
	return true
}

func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u*u
	return c * c * c
}

func bisquare(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u
	return c * c
}
