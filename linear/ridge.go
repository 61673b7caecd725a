// Package linear implements L2-regularized linear regression over a
// partitioned dataset. The model can be fitted either by gradient
// descent with backtracking line search (FitGD) or by solving the
// regularized normal equations directly (FitLS).
package linear

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/core/model"
	"github.com/parridge/parridge/optimize"
	"github.com/parridge/parridge/pkg/errors"
)

// RidgeRegression estimates β minimizing
//
//	F(β) = (1/n) Σ (y − ⟨β,x⟩)² + λ‖β‖²
//
// over a dataset of (x, y) records.
type RidgeRegression struct {
	model.BaseEstimator

	// Lambda is the L2 regularization strength λ.
	Lambda float64
	// MaxIter bounds the number of gradient-descent iterations.
	MaxIter int
	// Eps terminates gradient descent once ‖∇F(β)‖₂ < Eps.
	Eps float64
	// Search configures the backtracking line search used by FitGD.
	Search optimize.Backtracking

	// Beta is the fitted parameter vector. Before FitGD it may be set
	// to a custom starting point; the default start is the zero vector.
	Beta      *mat.VecDense
	NFeatures int

	// History records one entry per gradient-descent iteration.
	History []Iteration

	logger zerolog.Logger
}

// NewRidgeRegression returns a model with the standard defaults:
// λ=0, 100 iterations maximum, ε=0.01, and a no-op logger.
func NewRidgeRegression(opts ...Option) *RidgeRegression {
	rr := &RidgeRegression{
		Lambda:  0,
		MaxIter: 100,
		Eps:     0.01,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(rr)
	}
	return rr
}

// Predict returns the prediction ⟨β, x⟩ for a single feature vector.
func (rr *RidgeRegression) Predict(x []float64) (float64, error) {
	if !rr.IsFitted() {
		return 0, errors.NewNotFittedError("RidgeRegression", "Predict")
	}
	if len(x) != rr.NFeatures {
		return 0, errors.NewDimensionError("RidgeRegression.Predict", rr.NFeatures, len(x), 1)
	}
	return floats.Dot(rr.Beta.RawVector().Data, x), nil
}

// BetaSlice returns the fitted coefficients as a copy, or nil if the
// model is not fitted.
func (rr *RidgeRegression) BetaSlice() []float64 {
	if rr.Beta == nil {
		return nil
	}
	out := make([]float64, rr.Beta.Len())
	copy(out, rr.Beta.RawVector().Data)
	return out
}

// startingPoint returns the initial β for gradient descent: a copy of
// a caller-supplied Beta, or the zero vector of dimension d.
func (rr *RidgeRegression) startingPoint(d int) ([]float64, error) {
	beta := make([]float64, d)
	if rr.Beta != nil {
		if rr.Beta.Len() != d {
			return nil, errors.NewDimensionError("RidgeRegression.FitGD", d, rr.Beta.Len(), 1)
		}
		copy(beta, rr.Beta.RawVector().Data)
	}
	return beta, nil
}

// setBeta installs beta as the fitted parameter vector.
func (rr *RidgeRegression) setBeta(beta []float64) {
	rr.Beta = mat.NewVecDense(len(beta), beta)
	rr.NFeatures = len(beta)
	rr.SetFitted()
}
