package linear

import (
	"gonum.org/v1/gonum/floats"

	"github.com/parridge/parridge/dataset"
)

// Predict returns the linear prediction ⟨β, x⟩.
func Predict(beta, x []float64) float64 {
	return floats.Dot(beta, x)
}

// pointLoss is the squared error (y − ⟨β,x⟩)² of a single record.
func pointLoss(r dataset.Record, beta []float64) float64 {
	res := r.Y - floats.Dot(beta, r.X)
	return res * res
}

// addPointGradient adds −2(y − ⟨β,x⟩)·x, the gradient of pointLoss
// with respect to β, into dst.
func addPointGradient(r dataset.Record, beta, dst []float64) {
	res := r.Y - floats.Dot(beta, r.X)
	floats.AddScaled(dst, -2*res, r.X)
}

// Objective computes the regularized mean squared error
//
//	F(β) = (1/n) Σ (y − ⟨β,x⟩)² + λ‖β‖²
//
// as a distributed sum of per-record losses; the regularization term
// is evaluated locally. data must be non-empty.
func Objective(data *dataset.Dataset, beta []float64, lambda float64) float64 {
	n := float64(data.Count())
	sum := data.SumFloat(func(r dataset.Record) float64 {
		return pointLoss(r, beta)
	})
	return sum/n + lambda*floats.Dot(beta, beta)
}

// ObjectiveGradient computes ∇F(β) as the distributed mean of the
// per-record gradients plus the regularization gradient 2λβ.
func ObjectiveGradient(data *dataset.Dataset, beta []float64, lambda float64) []float64 {
	n := float64(data.Count())
	grad := data.SumVec(func(r dataset.Record, dst []float64) {
		addPointGradient(r, beta, dst)
	})
	floats.Scale(1/n, grad)
	floats.AddScaled(grad, 2*lambda, beta)
	return grad
}
