package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "linear.LinearRegression",
			kind:     "empty data",
			err:      ErrEmptyData,
			wantMsg:  "linfit: linear.LinearRegression: empty data: empty data",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "linfit: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		axis int
		want string
	}{
		{0, "linfit: CheckFitArgs: dimension mismatch on axis 0 (rows). Expected 5, got 4"},
		{1, "linfit: CheckFitArgs: dimension mismatch on axis 1 (features). Expected 5, got 4"},
	}
	for _, tt := range tests {
		err := NewDimensionError("CheckFitArgs", 5, 4, tt.axis)
		if err.Error() != tt.want {
			t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
		}
		var dimErr *DimensionError
		if !As(err, &dimErr) {
			t.Error("Error should be castable to *DimensionError")
		}
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("AlgorithmEstimator", "Predict")

	want := "linfit: AlgorithmEstimator: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewDegenerateDataError(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"with feature", 2, "linfit: linear.LinearRegression: degenerate data in feature 2: zero variance"},
		{"without feature", -1, "linfit: linear.LinearRegression: degenerate data: zero variance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDegenerateDataError("linear.LinearRegression", "zero variance", tt.index)
			if err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
			}
			if !Is(err, ErrDegenerateData) {
				t.Error("errors.Is(err, ErrDegenerateData) should be true")
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"empty", NewEmptyDataError("stats.Average"), KindEmptyInput},
		{"wrapped empty", Wrap(NewEmptyDataError("stats.Average"), "fit"), KindEmptyInput},
		{"dimension", NewDimensionError("op", 2, 3, 1), KindShapeMismatch},
		{"validation", NewValidationError("alpha", "must not be zero", 0.0), KindInvalidParameter},
		{"degenerate", NewDegenerateDataError("op", "zero variance", 0), KindDegenerateData},
		{"plain", New("other"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		KindUnknown:          "unknown",
		KindEmptyInput:       "empty_input",
		KindShapeMismatch:    "shape_mismatch",
		KindInvalidParameter: "invalid_parameter",
		KindDegenerateData:   "degenerate_data",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), k.String(), s)
		}
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("metrics.MSE", "empty vector")
	if err.Error() != "linfit: metrics.MSE: empty vector" {
		t.Errorf("Error() = %v", err.Error())
	}
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var dimErr *DimensionError
	if !As(NewDimensionError("linear.Hyperplane", 2, 3, 1), &dimErr) {
		t.Fatal("expected *DimensionError")
	}
	logger.Error().Object("error_detail", dimErr).Msg("predict failed")

	out := buf.String()
	for _, want := range []string{`"operation":"linear.Hyperplane"`, `"axis_name":"features"`, `"type":"DimensionError"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %s does not contain %s", out, want)
		}
	}
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(NewConvergenceWarning("linear.GradientDescent", 20, "non-finite coefficients"))

	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}
	want := "linear.GradientDescent failed to converge after 20 epochs: non-finite coefficients"
	if got[0].Error() != want {
		t.Errorf("warning = %q, want %q", got[0].Error(), want)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("coefficients", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("finite values should pass, got %v", err)
	}
	err := CheckNumericalStability("coefficients", []float64{1, math.NaN(), 3}, 7)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Iteration != 7 {
		t.Errorf("Iteration = %d, want 7", numErr.Iteration)
	}
}
