package linear

import (
	"github.com/rs/zerolog"

	"github.com/parridge/parridge/optimize"
)

// Option configures a RidgeRegression.
type Option func(*RidgeRegression)

// WithLambda sets the L2 regularization strength λ.
func WithLambda(lambda float64) Option {
	return func(rr *RidgeRegression) {
		rr.Lambda = lambda
	}
}

// WithMaxIter sets the maximum number of gradient-descent iterations.
func WithMaxIter(maxIter int) Option {
	return func(rr *RidgeRegression) {
		rr.MaxIter = maxIter
	}
}

// WithEps sets the gradient-norm tolerance ε.
func WithEps(eps float64) Option {
	return func(rr *RidgeRegression) {
		rr.Eps = eps
	}
}

// WithLineSearch sets the backtracking line search parameters.
func WithLineSearch(search optimize.Backtracking) Option {
	return func(rr *RidgeRegression) {
		rr.Search = search
	}
}

// WithLogger sets the logger used for per-iteration training progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(rr *RidgeRegression) {
		rr.logger = logger
	}
}
