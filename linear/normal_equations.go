package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

// FitLS solves for β directly via the regularized normal equations.
// One distributed pass aggregates the Gram matrix Σ xxᵗ and the moment
// vector Σ yx, then the dense system
//
//	((1/n)Σ xxᵗ + λI) β = (1/n)Σ yx
//
// is solved locally, by Cholesky when the left-hand side is positive
// definite (guaranteed for λ>0) and by a dense least-squares solve
// otherwise. The identity is sized to the data's feature dimension. A
// singular system (possible for λ=0 on rank-deficient data) fails with
// ErrSingularMatrix.
func (rr *RidgeRegression) FitLS(data *dataset.Dataset) error {
	d := data.Dim()
	n := float64(data.Count())

	gram, moment := data.SumOuter()

	a := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			v := gram.At(i, j) / n
			if i == j {
				v += rr.Lambda
			}
			a.SetSym(i, j, v)
		}
	}

	b := mat.NewVecDense(d, moment)
	b.ScaleVec(1/n, b)

	beta := mat.NewVecDense(d, nil)
	var chol mat.Cholesky
	if chol.Factorize(a) {
		if err := chol.SolveVecTo(beta, b); err != nil {
			return errors.NewModelError("RidgeRegression.FitLS", "cholesky solve failed", errors.ErrSingularMatrix)
		}
	} else if err := beta.SolveVec(a, b); err != nil {
		return errors.NewModelError("RidgeRegression.FitLS", "linear solve failed", errors.ErrSingularMatrix)
	}

	rr.setBeta(beta.RawVector().Data)
	return nil
}
