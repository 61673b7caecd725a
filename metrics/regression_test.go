package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25,
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     mat.NewVecDense(3, []float64{10.0, 20.0, 30.0}),
			yPred:     mat.NewVecDense(3, []float64{12.0, 18.0, 33.0}),
			want:      17.0 / 3.0,
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MSE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v (tolerance %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})
	yPred := mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if math.Abs(got-0.5) > 1e-10 {
		t.Errorf("RMSE() = %v, want 0.5", got)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			want:      1.0,
			tolerance: 1e-10,
		},
		{
			name:      "mean prediction scores zero",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(3, []float64{2.0, 2.0, 2.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:    "no variance in yTrue",
			yTrue:   mat.NewVecDense(3, []float64{2.0, 2.0, 2.0}),
			yPred:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatasetMSE(t *testing.T) {
	records := []dataset.Record{
		{X: []float64{1, 0}, Y: 2},
		{X: []float64{0, 1}, Y: 1},
	}
	ds, err := dataset.New(records, 2)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	// Residuals are 1 and 0, so plain MSE is 0.5 regardless of any
	// training-time regularization.
	got, err := DatasetMSE(ds, []float64{1, 1})
	if err != nil {
		t.Fatalf("DatasetMSE: %v", err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("DatasetMSE = %v, want 0.5", got)
	}
}

func TestDatasetMSEDimensionMismatch(t *testing.T) {
	records := []dataset.Record{{X: []float64{1, 0}, Y: 2}}
	ds, err := dataset.New(records, 1)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	_, err = DatasetMSE(ds, []float64{1, 2, 3})
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("got %v, want DimensionError", err)
	}
}
