// Package metrics provides regression evaluation metrics, both over
// prediction vectors and directly over a partitioned dataset.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

// MSE computes the mean squared error (1/n) Σ (yTrue − yPred)².
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2Score computes the coefficient of determination R² = 1 − RSS/TSS.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)
		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}

// DatasetMSE computes the mean squared error of the coefficients beta
// over data as a distributed sum:
//
//	MSE(β) = (1/n) Σ (y − ⟨β,x⟩)²
//
// No regularization penalty is included; test-time evaluation reports
// plain MSE regardless of the λ used during training.
func DatasetMSE(data *dataset.Dataset, beta []float64) (float64, error) {
	if data.Count() == 0 {
		return 0, errors.NewValueError("DatasetMSE", "empty dataset")
	}
	if len(beta) != data.Dim() {
		return 0, errors.NewDimensionError("DatasetMSE", data.Dim(), len(beta), 1)
	}

	sum := data.SumFloat(func(r dataset.Record) float64 {
		res := r.Y - floats.Dot(beta, r.X)
		return res * res
	})
	return sum / float64(data.Count()), nil
}
