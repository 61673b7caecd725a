package linear

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/pkg/errors"
)

func TestSaveLoadBetaRoundTrip(t *testing.T) {
	ds := testDataset(t, 2)

	trained := NewRidgeRegression()
	if err := trained.FitLS(ds); err != nil {
		t.Fatalf("FitLS: %v", err)
	}

	path := filepath.Join(t.TempDir(), "beta")
	if err := trained.SaveBeta(path); err != nil {
		t.Fatalf("SaveBeta: %v", err)
	}

	loaded := NewRidgeRegression()
	if err := loaded.LoadBeta(path); err != nil {
		t.Fatalf("LoadBeta: %v", err)
	}
	if !loaded.IsFitted() {
		t.Fatal("model not marked fitted after LoadBeta")
	}

	want := trained.BetaSlice()
	got := loaded.BetaSlice()
	if len(got) != len(want) {
		t.Fatalf("loaded %d coefficients, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0 {
			t.Errorf("beta[%d] = %v, want exactly %v", i, got[i], want[i])
		}
	}
}

func TestSaveBetaNotFitted(t *testing.T) {
	rr := NewRidgeRegression()
	err := rr.SaveBeta(filepath.Join(t.TempDir(), "beta"))

	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Fatalf("got %v, want NotFittedError", err)
	}
}

func TestPredictAndScore(t *testing.T) {
	ds := testDataset(t, 2)

	rr := NewRidgeRegression()
	if err := rr.FitLS(ds); err != nil {
		t.Fatalf("FitLS: %v", err)
	}

	pred, err := rr.Predict([]float64{2, 3})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if math.Abs(pred-8) > 1e-9 {
		t.Errorf("Predict = %v, want 8", pred)
	}

	if _, err := rr.Predict([]float64{1, 2, 3}); err == nil {
		t.Error("expected dimension error for wrong input width")
	}

	// Noiseless fit explains all variance.
	r2, err := rr.Score(ds)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("Score = %v, want 1", r2)
	}
}

func TestScoreLargeDataset(t *testing.T) {
	// Enough records to push Score onto its concurrent prediction
	// path. Noiseless data generated by β = (1, 2).
	records := make([]dataset.Record, 2000)
	for i := range records {
		x1 := float64(i % 13)
		x2 := float64(i%7) - 3
		records[i] = dataset.Record{X: []float64{x1, x2}, Y: x1 + 2*x2}
	}
	ds, err := dataset.New(records, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rr := NewRidgeRegression()
	if err := rr.FitLS(ds); err != nil {
		t.Fatalf("FitLS: %v", err)
	}

	r2, err := rr.Score(ds)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(r2-1) > 1e-6 {
		t.Errorf("Score = %v, want 1", r2)
	}
}

func TestPredictNotFitted(t *testing.T) {
	rr := NewRidgeRegression()
	if _, err := rr.Predict([]float64{1}); err == nil {
		t.Fatal("expected NotFittedError")
	}
}
