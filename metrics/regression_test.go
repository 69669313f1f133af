package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// 閉形式の直線 y = 0.4 + 0.8x をサンプルデータ x=[1,2,4,3,5] に当てた予測値
var (
	sampleTrue = []float64{1, 3, 3, 2, 5}
	samplePred = []float64{1.2, 2.0, 3.6, 2.8, 4.4}
)

type vecCase struct {
	name     string
	yTrue    *mat.VecDense
	yPred    *mat.VecDense
	want     float64
	wantKind errors.Kind // KindUnknown はエラーなし
}

func runVecCases(t *testing.T, fnName string, fn func(yTrue, yPred *mat.VecDense) (float64, error), tests []vecCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fn(tt.yTrue, tt.yPred)
			if tt.wantKind != errors.KindUnknown {
				if kind := errors.KindOf(err); kind != tt.wantKind {
					t.Errorf("%s() error = %v, want kind %s", fnName, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s() unexpected error: %v", fnName, err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("%s() = %v, want %v", fnName, got, tt.want)
			}
		})
	}
}

func commonFailures() []vecCase {
	return []vecCase{
		{
			name:     "length mismatch",
			yTrue:    mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:    mat.NewVecDense(2, []float64{1, 2}),
			wantKind: errors.KindShapeMismatch,
		},
		{
			name:     "empty vectors",
			yTrue:    &mat.VecDense{},
			yPred:    &mat.VecDense{},
			wantKind: errors.KindEmptyInput,
		},
	}
}

func TestMSE(t *testing.T) {
	runVecCases(t, "MSE", MSE, append([]vecCase{
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
			want:  0,
		},
		{
			name:  "closed-form line on sample data",
			yTrue: mat.NewVecDense(5, sampleTrue),
			yPred: mat.NewVecDense(5, samplePred),
			want:  0.48, // (0.04 + 1 + 0.36 + 0.64 + 0.36) / 5
		},
	}, commonFailures()...))
}

func TestMSEMatrix(t *testing.T) {
	got, err := MSEMatrix(
		mat.NewDense(5, 1, sampleTrue),
		mat.NewDense(5, 1, samplePred),
	)
	if err != nil {
		t.Fatalf("MSEMatrix() unexpected error: %v", err)
	}
	if math.Abs(got-0.48) > 1e-10 {
		t.Errorf("MSEMatrix() = %v, want 0.48", got)
	}

	_, err = MSEMatrix(mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil))
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValueError for multi-column input, got %v", err)
	}

	_, err = MSEMatrix(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	if errors.KindOf(err) != errors.KindShapeMismatch {
		t.Errorf("expected shape mismatch, got %v", err)
	}
}

func TestRMSE(t *testing.T) {
	runVecCases(t, "RMSE", RMSE, append([]vecCase{
		{
			name:  "closed-form line on sample data",
			yTrue: mat.NewVecDense(5, sampleTrue),
			yPred: mat.NewVecDense(5, samplePred),
			want:  math.Sqrt(0.48),
		},
		{
			name:  "constant offset",
			yTrue: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred: mat.NewVecDense(4, []float64{3, 4, 5, 6}),
			want:  2,
		},
	}, commonFailures()...))
}

func TestMAE(t *testing.T) {
	runVecCases(t, "MAE", MAE, append([]vecCase{
		{
			name:  "closed-form line on sample data",
			yTrue: mat.NewVecDense(5, sampleTrue),
			yPred: mat.NewVecDense(5, samplePred),
			want:  0.64, // (0.2 + 1 + 0.6 + 0.8 + 0.6) / 5
		},
		{
			name:  "mixed signs",
			yTrue: mat.NewVecDense(3, []float64{0, 0, 0}),
			yPred: mat.NewVecDense(3, []float64{-1, 2, -3}),
			want:  2,
		},
	}, commonFailures()...))
}

func TestR2Score(t *testing.T) {
	runVecCases(t, "R2Score", R2Score, append([]vecCase{
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
			want:  1,
		},
		{
			name:  "closed-form line on sample data",
			yTrue: mat.NewVecDense(5, sampleTrue),
			yPred: mat.NewVecDense(5, samplePred),
			want:  1 - 2.4/8.8,
		},
		{
			name:  "worse than mean baseline",
			yTrue: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred: mat.NewVecDense(4, []float64{4, 3, 2, 1}),
			want:  -3,
		},
		{
			name:     "no variance in yTrue",
			yTrue:    mat.NewVecDense(3, []float64{3, 3, 3}),
			yPred:    mat.NewVecDense(3, []float64{2, 3, 4}),
			wantKind: errors.KindDegenerateData,
		},
	}, commonFailures()...))
}

func BenchmarkMSE(b *testing.B) {
	size := 10000
	yTrue := mat.NewVecDense(size, nil)
	yPred := mat.NewVecDense(size, nil)
	for i := 0; i < size; i++ {
		yTrue.SetVec(i, float64(i))
		yPred.SetVec(i, float64(i)+0.1*float64(i%10))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MSE(yTrue, yPred)
	}
}
