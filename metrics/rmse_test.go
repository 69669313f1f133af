package metrics

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

func affine(bias, slope float64) func([]float64) (float64, error) {
	return func(x []float64) (float64, error) {
		return bias + slope*x[0], nil
	}
}

func TestRootMeanSquareError(t *testing.T) {
	x := []float64{1, 2, 4, 3, 5}
	y := []float64{1, 3, 3, 2, 5}

	tests := []struct {
		name     string
		codomain []float64
		domain   []float64
		predict  func([]float64) (float64, error)
		want     float64
		wantKind errors.Kind
	}{
		{
			name:     "least squares line",
			codomain: y,
			domain:   x,
			predict:  affine(0.4, 0.8),
			// residuals: -0.2, 1.0, -0.6, -0.8, 0.6
			want: math.Sqrt(2.4 / 5),
		},
		{
			name:     "exact fit is zero",
			codomain: []float64{1, 3, 5},
			domain:   []float64{0, 1, 2},
			predict:  affine(1, 2),
			want:     0,
		},
		{
			name:     "empty targets",
			codomain: nil,
			domain:   nil,
			predict:  affine(0, 1),
			wantKind: errors.KindEmptyInput,
		},
		{
			name:     "length mismatch",
			codomain: []float64{1, 2, 3},
			domain:   []float64{1, 2},
			predict:  affine(0, 1),
			wantKind: errors.KindShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RootMeanSquareError(tt.codomain, tt.domain, tt.predict)
			if tt.wantKind != errors.KindUnknown {
				if errors.KindOf(err) != tt.wantKind {
					t.Fatalf("RootMeanSquareError() error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("RootMeanSquareError() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RootMeanSquareError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootMeanSquareErrorNonNegative(t *testing.T) {
	y := []float64{-3, 0.5, 2, 7, -1}
	x := []float64{0, 1, 2, 3, 4}
	for _, slope := range []float64{-2, -0.5, 0, 1, 3} {
		got, err := RootMeanSquareError(y, x, affine(0.1, slope))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got <= 0 {
			t.Errorf("slope %v: RMSE = %v, want > 0 for an inexact fit", slope, got)
		}
	}
}

func TestRootMeanSquareErrorPropagatesPredictError(t *testing.T) {
	sentinel := fmt.Errorf("predict failed")
	_, err := RootMeanSquareError([]float64{1}, []float64{1}, func([]float64) (float64, error) {
		return 0, sentinel
	})
	if err != sentinel {
		t.Errorf("expected predict error to be returned unchanged, got %v", err)
	}
}

func TestRootMeanSquareErrorDataset(t *testing.T) {
	domains := [][]float64{
		{1, 2, 3, 4},
		{0, 1, 0, 1},
	}
	// y = 1 + 2*x0 - x1
	codomain := []float64{3, 4, 7, 8}
	predict := func(x []float64) (float64, error) {
		return 1 + 2*x[0] - x[1], nil
	}

	got, err := RootMeanSquareErrorDataset(codomain, domains, predict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("RootMeanSquareErrorDataset() = %v, want 0", got)
	}

	_, err = RootMeanSquareErrorDataset(codomain, [][]float64{{1, 2}}, predict)
	if errors.KindOf(err) != errors.KindShapeMismatch {
		t.Errorf("expected shape mismatch, got %v", err)
	}

	_, err = RootMeanSquareErrorDataset(nil, nil, predict)
	if errors.KindOf(err) != errors.KindEmptyInput {
		t.Errorf("expected empty input, got %v", err)
	}
}

func TestR2ScoreDegenerate(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{2, 2, 2})
	yPred := mat.NewVecDense(3, []float64{1, 2, 3})

	_, err := R2Score(yTrue, yPred)
	if !errors.Is(err, errors.ErrDegenerateData) {
		t.Errorf("expected ErrDegenerateData, got %v", err)
	}
}
