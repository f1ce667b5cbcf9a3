package calibration

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	polynomialDegree     = 2
	exponentialMinPoints = 3
)

// Polynomial is a fitted least-squares polynomial, coefficients in
// ascending order. Read-only after fitting; safe for concurrent use.
type Polynomial struct {
	Coeffs []float64
}

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return y
}

// EvalAll evaluates the polynomial over a slice, returning a same-length
// result slice.
func (p *Polynomial) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	return ys
}

// FitForceCorrection fits a degree-2 least-squares polynomial mapping
// computed force to measured force.
func FitForceCorrection(table *ForceCorrectionTable) (*Polynomial, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return fitPolynomial(table.XComputed, table.YMeasured, polynomialDegree)
}

// fitPolynomial solves the Vandermonde least-squares system with QR.
func fitPolynomial(xs, ys []float64, degree int) (*Polynomial, error) {
	n := len(xs)
	cols := degree + 1

	A := mat.NewDense(n, cols, nil)
	B := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := 1.0
		for j := 0; j < cols; j++ {
			A.Set(i, j, v)
			v *= xs[i]
		}
		B.SetVec(i, ys[i])
	}

	var qr mat.QR
	qr.Factorize(A)

	var coeffs mat.VecDense
	if err := qr.SolveVecTo(&coeffs, false, B); err != nil {
		return nil, &Error{Kind: KindNoConvergence, Message: "polynomial fit failed", Cause: err}
	}

	p := &Polynomial{Coeffs: make([]float64, cols)}
	for j := 0; j < cols; j++ {
		p.Coeffs[j] = coeffs.AtVec(j)
	}
	return p, nil
}

// Exponential is a fitted model of the form a*exp(b*x) + c.
// Read-only after fitting; safe for concurrent use.
type Exponential struct {
	A, B, C float64
}

// Eval evaluates the model at x.
func (e *Exponential) Eval(x float64) float64 {
	return e.A*math.Exp(e.B*x) + e.C
}

// EvalAll evaluates the model over a slice, returning a same-length result
// slice.
func (e *Exponential) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = e.Eval(x)
	}
	return ys
}

// FitPixelWeight fits a*exp(b*x)+c against the pixel-weight table by
// nonlinear least squares.
func FitPixelWeight(table *PixelWeightTable) (*Exponential, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return fitExponential(table.PixelWeight, table.ForceN)
}

// fitExponential minimizes the sum of squared residuals of a*exp(b*x)+c
// with BFGS, starting from a log-linear estimate of the parameters.
func fitExponential(xs, ys []float64) (*Exponential, error) {
	residuals := func(p []float64) []float64 {
		a, b, c := p[0], p[1], p[2]
		rs := make([]float64, len(xs))
		for i := range xs {
			rs[i] = a*math.Exp(b*xs[i]) + c - ys[i]
		}
		return rs
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var sum float64
			for _, r := range residuals(p) {
				sum += r * r
			}
			return sum
		},
		Grad: func(grad, p []float64) {
			a, b := p[0], p[1]
			grad[0], grad[1], grad[2] = 0, 0, 0
			for i, r := range residuals(p) {
				e := math.Exp(b * xs[i])
				grad[0] += 2 * r * e
				grad[1] += 2 * r * a * xs[i] * e
				grad[2] += 2 * r
			}
		},
	}

	result, err := optimize.Minimize(problem, initialExponentialGuess(xs, ys), nil, &optimize.BFGS{})
	if err != nil {
		return nil, &Error{Kind: KindNoConvergence, Message: "exponential fit did not converge", Cause: err}
	}
	for _, v := range result.X {
		if !isFinite(v) {
			return nil, &Error{Kind: KindNoConvergence, Message: "exponential fit produced non-finite parameters"}
		}
	}

	return &Exponential{A: result.X[0], B: result.X[1], C: result.X[2]}, nil
}

// initialExponentialGuess estimates (a, b, c): the rate b from a linear
// regression of log(y - shift) on x after shifting y positive, then a and
// c from the linear subproblem for that fixed b.
func initialExponentialGuess(xs, ys []float64) []float64 {
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	span := maxY - minY
	if span == 0 {
		span = 1
	}
	shift := minY - 0.05*span

	logs := make([]float64, len(ys))
	for i, y := range ys {
		logs[i] = math.Log(y - shift)
	}
	_, b := stat.LinearRegression(xs, logs, nil, false)

	exps := make([]float64, len(xs))
	for i, x := range xs {
		exps[i] = math.Exp(b * x)
	}
	c, a := stat.LinearRegression(exps, ys, nil, false)

	return []float64{a, b, c}
}
