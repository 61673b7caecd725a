package linear

import (
	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

// SaveBeta writes the fitted coefficients to path as one CSV line.
func (rr *RidgeRegression) SaveBeta(path string) error {
	if !rr.IsFitted() {
		return errors.NewNotFittedError("RidgeRegression", "SaveBeta")
	}
	return dataset.WriteVector(path, rr.Beta.RawVector().Data)
}

// LoadBeta reads coefficients from path and marks the model fitted.
// If NFeatures is already known (a fitted or trained model), the
// loaded dimension must match it.
func (rr *RidgeRegression) LoadBeta(path string) error {
	v, err := dataset.ReadVector(path)
	if err != nil {
		return err
	}
	if rr.NFeatures != 0 && rr.NFeatures != len(v) {
		return errors.NewDimensionError("RidgeRegression.LoadBeta", rr.NFeatures, len(v), 1)
	}
	rr.setBeta(v)
	return nil
}
