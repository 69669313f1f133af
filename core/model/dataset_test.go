package model

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

func TestDatasetFromMatrix(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})
	y := mat.NewDense(3, 1, []float64{7, 8, 9})

	ds, err := DatasetFromMatrix(X, y)
	if err != nil {
		t.Fatalf("DatasetFromMatrix() unexpected error: %v", err)
	}
	if ds.NSamples() != 3 || ds.NFeatures() != 2 {
		t.Fatalf("unexpected dims: samples=%d features=%d", ds.NSamples(), ds.NFeatures())
	}
	if !reflect.DeepEqual(ds.Codomain, []float64{7, 8, 9}) {
		t.Errorf("Codomain = %v", ds.Codomain)
	}
	if !reflect.DeepEqual(ds.Domains[1], []float64{10, 20, 30}) {
		t.Errorf("Domains[1] = %v", ds.Domains[1])
	}
	if !reflect.DeepEqual(ds.Row(2), []float64{3, 30}) {
		t.Errorf("Row(2) = %v", ds.Row(2))
	}

	// 値はコピーされる
	X.Set(0, 0, 100)
	if ds.Domains[0][0] != 1 {
		t.Error("dataset must not alias the source matrix")
	}
}

func TestDatasetFromMatrixErrors(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := DatasetFromMatrix(X, mat.NewDense(2, 1, []float64{1, 2}))
	if errors.KindOf(err) != errors.KindShapeMismatch {
		t.Errorf("expected shape mismatch, got %v", err)
	}

	_, err = DatasetFromMatrix(X, mat.NewDense(3, 2, nil))
	var valueErr *errors.ValueError
	if !errors.As(err, &valueErr) {
		t.Errorf("expected ValueError for a non-column y, got %v", err)
	}
}

func TestDatasetMatrix(t *testing.T) {
	ds := NewDataset([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})

	X, y := ds.Matrix()
	r, c := X.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("X dims = %dx%d, want 2x2", r, c)
	}
	if X.At(1, 0) != 4 || X.At(0, 1) != 5 {
		t.Errorf("unexpected X: %v", mat.Formatted(X))
	}
	if y.AtVec(1) != 2 {
		t.Errorf("y[1] = %v, want 2", y.AtVec(1))
	}

	X, y = NewDataset([]float64{1}).Matrix()
	if X != nil || y.Len() != 1 {
		t.Errorf("expected nil X and 1-length y for a dataset without features")
	}
}
