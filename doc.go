// Package parridge implements parallel ridge regression over a
// partitioned in-memory dataset.
//
// A linear model β is estimated either by gradient descent with
// backtracking line search, with objective and gradient computed as
// distributed sums over the dataset partitions, or by aggregating the
// sufficient statistics (Gram matrix and cross-correlation vector) in
// one pass and solving the regularized normal equations with a dense
// linear solver.
//
// The library packages:
//
//   - dataset: partitioned record collection, CSV loading, vector I/O
//   - linear: the RidgeRegression estimator and both solvers
//   - optimize: backtracking line search, numerical gradients
//   - metrics: regression metrics, dataset-level MSE evaluation
//   - plotting: convergence-curve rendering
//
// The cmd/parridge command ties these together behind the flag
// interface described in its help output.
package parridge
