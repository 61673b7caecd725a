package linear

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

// Iteration captures the state of one gradient-descent step, taken at
// the point the step started from.
type Iteration struct {
	K         int
	Elapsed   time.Duration
	GradNorm  float64
	Objective float64
}

// GDResult summarizes a finished gradient-descent fit.
type GDResult struct {
	// GradNorm is ‖∇F(β)‖₂ at the returned β.
	GradNorm float64
	// Iterations is the number of steps taken.
	Iterations int
	// Converged reports whether GradNorm dropped below Eps.
	Converged bool
	Elapsed   time.Duration
}

// FitGD minimizes F(β) by gradient descent with backtracking line
// search, starting from the zero vector (or a caller-supplied Beta of
// matching dimension). Each iteration computes the distributed
// gradient, tests ‖∇F(β)‖₂ < Eps on that fresh gradient, and otherwise
// steps β ← β − t·∇F(β) with t from the line search. It stops after
// MaxIter steps or on convergence; with MaxIter=0 the start point is
// returned untouched after a single gradient evaluation.
func (rr *RidgeRegression) FitGD(data *dataset.Dataset) (*GDResult, error) {
	beta, err := rr.startingPoint(data.Dim())
	if err != nil {
		return nil, err
	}

	fun := func(p []float64) float64 {
		return Objective(data, p, rr.Lambda)
	}

	rr.History = rr.History[:0]
	start := time.Now()

	var gradNorm float64
	k := 0
	for {
		grad := ObjectiveGradient(data, beta, rr.Lambda)
		gradNorm = floats.Norm(grad, 2)
		if gradNorm < rr.Eps || k >= rr.MaxIter {
			break
		}

		obj := Objective(data, beta, rr.Lambda)
		t := rr.Search.Search(fun, beta, grad)
		floats.AddScaled(beta, -t, grad)

		it := Iteration{K: k, Elapsed: time.Since(start), GradNorm: gradNorm, Objective: obj}
		rr.History = append(rr.History, it)
		rr.logger.Info().
			Int("iteration", it.K).
			Dur("elapsed", it.Elapsed).
			Float64("step", t).
			Float64("grad_norm", it.GradNorm).
			Float64("objective", it.Objective).
			Msg("gradient descent step")
		k++
	}

	res := &GDResult{
		GradNorm:   gradNorm,
		Iterations: k,
		Converged:  gradNorm < rr.Eps,
		Elapsed:    time.Since(start),
	}
	if !res.Converged {
		errors.Warn(errors.NewConvergenceWarning("gradient descent", k, ""))
	}

	rr.setBeta(beta)
	return res, nil
}
