package smooth

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Linear is an ordinary least squares fit of degree 1.
type Linear struct{}

func (Linear) Name() string          { return "linear" }
func (Linear) RequiresUniqueX() bool { return false }

func (Linear) Fit(xs, ys []float64) ([]float64, error) {
	return polyFitEval("linear", xs, ys, 1)
}

// Polynomial is a least squares polynomial fit of configurable degree.
// Degree 1 is numerically identical to Linear.
type Polynomial struct {
	Degree int
}

func (Polynomial) Name() string          { return "poly" }
func (Polynomial) RequiresUniqueX() bool { return false }

func (p Polynomial) Fit(xs, ys []float64) ([]float64, error) {
	if p.Degree < 1 {
		return nil, &ConfigurationError{
			Param:  "degree",
			Reason: fmt.Sprintf("must be >= 1, got %d", p.Degree),
		}
	}
	return polyFitEval("poly", xs, ys, p.Degree)
}

// polyFitEval solves the least squares polynomial of the given degree via QR
// factorization of the Vandermonde matrix and evaluates it at every x.
func polyFitEval(method string, xs, ys []float64, degree int) ([]float64, error) {
	if err := checkPoints(method, xs, ys, false); err != nil {
		return nil, err
	}
	n := len(xs)
	if degree >= n {
		return nil, &FitError{
			Method: method,
			Reason: fmt.Sprintf("degree %d needs at least %d points, got %d", degree, degree+1, n),
		}
	}

	// Fit in a centered domain. Raw x values can be huge (date axes carry
	// nanosecond epoch floats), which makes the Vandermonde matrix hopelessly
	// ill conditioned; shifting by the mean leaves the fitted values unchanged.
	shift := mean(xs)
	cx := make([]float64, n)
	for i, x := range xs {
		cx[i] = x - shift
	}

	a := vandermonde(cx, degree)
	b := mat.NewDense(n, 1, append([]float64(nil), ys...))
	c := mat.NewDense(degree+1, 1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		// Condition is a warning: the solution was still computed.
		if _, ok := err.(mat.Condition); !ok {
			return nil, &FitError{Method: method, Reason: err.Error()}
		}
	}

	coef := make([]float64, degree+1)
	for i := range coef {
		coef[i] = c.At(i, 0)
	}
	fitted := make([]float64, n)
	for i, x := range cx {
		fitted[i] = evalPoly(coef, x)
	}
	return fitted, nil
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// vandermonde builds the n x (degree+1) design matrix with rows 1, x, x^2, ...
func vandermonde(xs []float64, degree int) *mat.Dense {
	m := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j <= degree; j++ {
			m.Set(i, j, p)
			p *= x
		}
	}
	return m
}

// evalPoly evaluates coefficients in ascending power order via Horner's rule.
func evalPoly(coef []float64, x float64) float64 {
	y := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		y = y*x + coef[i]
	}
	return y
}
