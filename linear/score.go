package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/core/parallel"
	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/metrics"
	"github.com/parridge/parridge/pkg/errors"
)

// scoreSequentialCutoff is the record count below which Score predicts
// sequentially; goroutine fan-out is not worth it for tiny datasets.
const scoreSequentialCutoff = 256

// Score returns the coefficient of determination R² of the fitted
// model over data.
func (rr *RidgeRegression) Score(data *dataset.Dataset) (float64, error) {
	if !rr.IsFitted() {
		return 0, errors.NewNotFittedError("RidgeRegression", "Score")
	}
	if data.Dim() != rr.NFeatures {
		return 0, errors.NewDimensionError("RidgeRegression.Score", rr.NFeatures, data.Dim(), 1)
	}

	beta := rr.Beta.RawVector().Data
	records := data.Records()
	yTrue := mat.NewVecDense(len(records), nil)
	yPred := mat.NewVecDense(len(records), nil)
	// Chunks write disjoint indices, so no locking is needed.
	parallel.ParallelizeWithThreshold(len(records), scoreSequentialCutoff, func(start, end int) {
		for i := start; i < end; i++ {
			yTrue.SetVec(i, records[i].Y)
			yPred.SetVec(i, Predict(beta, records[i].X))
		}
	})
	return metrics.R2Score(yTrue, yPred)
}
