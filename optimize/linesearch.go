// Package optimize provides the step-size selection used by the
// gradient-descent trainer, plus a finite-difference gradient check.
package optimize

import (
	"gonum.org/v1/gonum/floats"

	"github.com/parridge/parridge/pkg/errors"
)

// Defaults for Backtracking, per Boyd & Vandenberghe p. 464.
const (
	DefaultAlpha         = 0.2
	DefaultBeta          = 0.6
	DefaultMaxBacktracks = 100
)

// Backtracking selects a step size t along the negative gradient
// direction by shrinking t until the Armijo sufficient-decrease
// condition holds:
//
//	fun(x − t·g) ≤ fun(x) − Alpha·t·⟨g,g⟩
//
// Zero-valued fields fall back to the package defaults.
type Backtracking struct {
	Alpha float64 // sufficient-decrease fraction, in (0, 1)
	Beta  float64 // shrink factor applied to t, in (0, 1)
	// MaxBacktracks caps the number of shrink steps so pathological
	// objectives cannot loop forever. Hitting the cap raises a
	// ConvergenceWarning and returns the smallest t tried.
	MaxBacktracks int
}

// Search returns a step size t for moving from x along -grad.
// fun must not retain or mutate the slice it is handed.
func (b Backtracking) Search(fun func(x []float64) float64, x, grad []float64) float64 {
	alpha := b.Alpha
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	beta := b.Beta
	if beta == 0 {
		beta = DefaultBeta
	}
	maxBacktracks := b.MaxBacktracks
	if maxBacktracks == 0 {
		maxBacktracks = DefaultMaxBacktracks
	}

	fx := fun(x)
	gg := floats.Dot(grad, grad)

	t := 1.0
	trial := make([]float64, len(x))
	for i := 0; ; i++ {
		copy(trial, x)
		floats.AddScaled(trial, -t, grad)
		if fun(trial) <= fx-alpha*t*gg {
			return t
		}
		if i == maxBacktracks-1 {
			break
		}
		t *= beta
	}

	errors.Warn(errors.NewConvergenceWarning("backtracking line search", maxBacktracks, "Armijo condition not satisfied"))
	return t
}

// EstimateGradient estimates the gradient of fun at x by forward
// finite differences with step delta.
func EstimateGradient(fun func(x []float64) float64, x []float64, delta float64) []float64 {
	f0 := fun(x)
	grad := make([]float64, len(x))
	pert := make([]float64, len(x))
	copy(pert, x)
	for i := range x {
		pert[i] = x[i] + delta
		grad[i] = (fun(pert) - f0) / delta
		pert[i] = x[i]
	}
	return grad
}
