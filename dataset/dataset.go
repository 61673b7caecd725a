// Package dataset provides the partitioned in-memory collection of
// labeled feature vectors that training and evaluation run over, plus
// the CSV input formats. All aggregation methods fan out one goroutine
// per partition and combine per-partition partials, so their results
// do not depend on how records are distributed beyond ordinary
// floating-point non-associativity.
package dataset

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/core/parallel"
	"github.com/parridge/parridge/pkg/errors"
)

// Record is a single labeled observation: a feature vector X of the
// dataset's shared dimension and a real label Y. Records are never
// mutated after parsing.
type Record struct {
	X []float64
	Y float64
}

// Dataset is a partitioned, read-only multiset of Records sharing one
// feature dimension.
type Dataset struct {
	parts [][]Record
	dim   int
	n     int
}

// New builds a Dataset by distributing records round-robin across
// numPartitions partitions. All records must share one feature
// dimension; at least one record is required.
func New(records []Record, numPartitions int) (*Dataset, error) {
	if len(records) == 0 {
		return nil, errors.NewValueError("dataset.New", "no records")
	}
	if numPartitions < 1 {
		numPartitions = 1
	}
	if numPartitions > len(records) {
		numPartitions = len(records)
	}

	dim := len(records[0].X)
	if dim == 0 {
		return nil, errors.NewValueError("dataset.New", "records have no features")
	}
	for _, r := range records {
		if len(r.X) != dim {
			return nil, errors.NewDimensionError("dataset.New", dim, len(r.X), 1)
		}
	}

	parts := make([][]Record, numPartitions)
	for i := range parts {
		parts[i] = make([]Record, 0, len(records)/numPartitions+1)
	}
	for i, r := range records {
		p := i % numPartitions
		parts[p] = append(parts[p], r)
	}

	return &Dataset{parts: parts, dim: dim, n: len(records)}, nil
}

// Count returns the total number of records.
func (ds *Dataset) Count() int {
	return ds.n
}

// Dim returns the shared feature dimension.
func (ds *Dataset) Dim() int {
	return ds.dim
}

// NumPartitions returns the number of partitions.
func (ds *Dataset) NumPartitions() int {
	return len(ds.parts)
}

// Records returns all records in partition order. The result is a
// fresh slice but shares the underlying feature vectors.
func (ds *Dataset) Records() []Record {
	out := make([]Record, 0, ds.n)
	for _, part := range ds.parts {
		out = append(out, part...)
	}
	return out
}

// Repartition returns a new Dataset with the same records spread
// round-robin across numPartitions partitions.
func (ds *Dataset) Repartition(numPartitions int) *Dataset {
	// New cannot fail here: the records were validated on construction.
	out, _ := New(ds.Records(), numPartitions)
	return out
}

// SumFloat maps every record through f and returns the sum. Each
// partition accumulates its own partial; the partials are combined
// after all workers join. f must be pure: sums are required to be
// order-independent under repartitioning.
func (ds *Dataset) SumFloat(f func(r Record) float64) float64 {
	partials := make([]float64, len(ds.parts))
	_ = parallel.ForEachPartition(context.Background(), len(ds.parts), func(_ context.Context, p int) error {
		var sum float64
		for _, r := range ds.parts[p] {
			sum += f(r)
		}
		partials[p] = sum
		return nil
	})
	return floats.Sum(partials)
}

// SumVec has every record add its contribution into a per-partition
// buffer of length Dim via f, then combines the buffers element-wise.
func (ds *Dataset) SumVec(f func(r Record, dst []float64)) []float64 {
	partials := make([][]float64, len(ds.parts))
	_ = parallel.ForEachPartition(context.Background(), len(ds.parts), func(_ context.Context, p int) error {
		dst := make([]float64, ds.dim)
		for _, r := range ds.parts[p] {
			f(r, dst)
		}
		partials[p] = dst
		return nil
	})

	total := make([]float64, ds.dim)
	for _, partial := range partials {
		floats.Add(total, partial)
	}
	return total
}

// SumOuter accumulates the sufficient statistics for the normal
// equations in a single pass: the Gram matrix Σ xᵢxᵢᵗ and the moment
// vector Σ yᵢxᵢ.
func (ds *Dataset) SumOuter() (gram *mat.SymDense, moment []float64) {
	grams := make([]*mat.SymDense, len(ds.parts))
	moments := make([][]float64, len(ds.parts))
	_ = parallel.ForEachPartition(context.Background(), len(ds.parts), func(_ context.Context, p int) error {
		g := mat.NewSymDense(ds.dim, nil)
		m := make([]float64, ds.dim)
		for _, r := range ds.parts[p] {
			// NewVecDense aliases r.X, no copy per record.
			g.SymRankOne(g, 1, mat.NewVecDense(ds.dim, r.X))
			floats.AddScaled(m, r.Y, r.X)
		}
		grams[p] = g
		moments[p] = m
		return nil
	})

	gram = mat.NewSymDense(ds.dim, nil)
	moment = make([]float64, ds.dim)
	for p := range grams {
		gram.AddSym(gram, grams[p])
		floats.Add(moment, moments[p])
	}
	return gram, moment
}
