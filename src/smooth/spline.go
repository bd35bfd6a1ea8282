package smooth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Spline is a penalized least squares smoothing spline in the discrete
// Whittaker/Reinsch formulation: it finds the smoothest curve through the
// points whose weighted residual sum of squares stays within Smoothing.
//
// The roughness penalty is the squared Degree-th difference of the fitted
// sequence, so Degree plays the role of the spline order. Smoothing zero
// reproduces every input y exactly.
type Spline struct {
	// Degree is the difference order of the roughness penalty, >= 1.
	Degree int
	// Smoothing is the upper bound on the weighted residual sum of
	// squares, >= 0. Zero means exact interpolation.
	Smoothing float64
	// Weights are optional positive per-point weights; nil means uniform.
	Weights []float64
}

func (Spline) Name() string          { return "splines" }
func (Spline) RequiresUniqueX() bool { return true }

func (s Spline) Fit(xs, ys []float64) ([]float64, error) {
	if s.Degree < 1 {
		return nil, &ConfigurationError{
			Param:  "degree",
			Reason: fmt.Sprintf("must be >= 1, got %d", s.Degree),
		}
	}
	if s.Smoothing < 0 {
		return nil, &ConfigurationError{
			Param:  "smoothing",
			Reason: fmt.Sprintf("must be >= 0, got %v", s.Smoothing),
		}
	}
	if err := checkPoints("splines", xs, ys, true); err != nil {
		return nil, err
	}
	n := len(xs)
	if s.Weights != nil {
		if len(s.Weights) != n {
			return nil, &ConfigurationError{
				Param:  "weights",
				Reason: fmt.Sprintf("length %d does not match %d data points", len(s.Weights), n),
			}
		}
		for i, w := range s.Weights {
			if w <= 0 || math.IsNaN(w) {
				return nil, &ConfigurationError{
					Param:  "weights",
					Reason: fmt.Sprintf("weight %v at index %d is not positive", w, i),
				}
			}
		}
	}
	if s.Degree >= n {
		return nil, &FitError{
			Method: "splines",
			Reason: fmt.Sprintf("degree %d needs more than %d points", s.Degree, n),
		}
	}

	// Smoothing zero asks for exact interpolation; the fitted sequence is
	// only evaluated at the data sites, so it is the data itself.
	if s.Smoothing == 0 {
		return append([]float64(nil), ys...), nil
	}

	w := s.Weights
	if w == nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = 1
		}
	}
	coef := diffCoeffs(s.Degree)

	// Residual sum grows monotonically with the penalty weight lambda.
	// Bracket the largest lambda whose residual sum still fits the budget,
	// then bisect on log-lambda.
	best := append([]float64(nil), ys...) // lambda = 0, zero residual
	lo := 0.0
	hi := 1.0
	var hiFit []float64
	var hiRSS float64
	for {
		fit, rss, err := s.solvePenalized(w, ys, coef, hi)
		if err != nil {
			return nil, err
		}
		hiFit, hiRSS = fit, rss
		if hiRSS > s.Smoothing || hi >= 1e15 {
			break
		}
		lo = hi
		best = hiFit
		hi *= 16
	}
	if hiRSS <= s.Smoothing {
		// even the flattest attainable curve stays within budget
		return hiFit, nil
	}
	for i := 0; i < 60 && hi-lo > 1e-12*hi; i++ {
		mid := (lo + hi) / 2
		fit, rss, err := s.solvePenalized(w, ys, coef, mid)
		if err != nil {
			return nil, err
		}
		if rss <= s.Smoothing {
			lo = mid
			best = fit
		} else {
			hi = mid
		}
	}
	return best, nil
}

// solvePenalized solves (W + lambda*D'D) f = W y and returns the fitted
// values with their weighted residual sum of squares.
func (s Spline) solvePenalized(w, ys, coef []float64, lambda float64) ([]float64, float64, error) {
	n := len(ys)
	d := len(coef) - 1

	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		a.SetSym(i, i, w[i])
	}
	for r := 0; r+d < n; r++ {
		for i := 0; i <= d; i++ {
			for j := i; j <= d; j++ {
				a.SetSym(r+i, r+j, a.At(r+i, r+j)+lambda*coef[i]*coef[j])
			}
		}
	}
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, w[i]*ys[i])
	}

	var ch mat.Cholesky
	if !ch.Factorize(a) {
		return nil, 0, &FitError{Method: "splines", Reason: "penalized system is not positive definite"}
	}
	var v mat.VecDense
	if err := ch.SolveVecTo(&v, b); err != nil {
		return nil, 0, &FitError{Method: "splines", Reason: err.Error()}
	}

	fitted := make([]float64, n)
	var rss float64
	for i := 0; i < n; i++ {
		fitted[i] = v.AtVec(i)
		r := ys[i] - fitted[i]
		rss += w[i] * r * r
	}
	return fitted, rss, nil
}

// diffCoeffs returns the coefficients of the order-d forward difference,
// e.g. d=2 -> [1, -2, 1].
func diffCoeffs(d int) []float64 {
	coef := []float64{1}
	for k := 0; k < d; k++ {
		next := make([]float64, len(coef)+1)
		for i, c := range coef {
			next[i] += c
			next[i+1] -= c
		}
		coef = next
	}
	return coef
}
