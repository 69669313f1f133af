package model

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

func TestCheckFitArgs(t *testing.T) {
	y := []float64{1, 2, 3}
	x := []float64{4, 5, 6}

	tests := []struct {
		name     string
		codomain []float64
		domains  [][]float64
		coeffs   []float64
		alpha    float64
		epochs   int
		wantKind errors.Kind
	}{
		{"valid", y, [][]float64{x}, make([]float64, 2), 0.01, 20, errors.KindUnknown},
		{"no features", y, nil, make([]float64, 1), 0.01, 20, errors.KindUnknown},
		{"unused conventions pass", y, [][]float64{x}, make([]float64, 2), UnusedRate, UnusedEpochs, errors.KindUnknown},
		{"empty codomain", nil, [][]float64{x}, make([]float64, 2), 0.01, 20, errors.KindEmptyInput},
		{"empty codomain and domains", []float64{}, nil, make([]float64, 1), 0.01, 20, errors.KindEmptyInput},
		{"domain too short", y, [][]float64{{1, 2}}, make([]float64, 2), 0.01, 20, errors.KindShapeMismatch},
		{"coefficients too short", y, [][]float64{x}, make([]float64, 1), 0.01, 20, errors.KindShapeMismatch},
		{"coefficients too long", y, [][]float64{x}, make([]float64, 3), 0.01, 20, errors.KindShapeMismatch},
		{"zero rate", y, [][]float64{x}, make([]float64, 2), 0, 20, errors.KindInvalidParameter},
		{"NaN rate", y, [][]float64{x}, make([]float64, 2), math.NaN(), 20, errors.KindInvalidParameter},
		{"zero epochs", y, [][]float64{x}, make([]float64, 2), 0.01, 0, errors.KindInvalidParameter},
		{"negative epochs", y, [][]float64{x}, make([]float64, 2), 0.01, -3, errors.KindInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFitArgs("test", tt.codomain, tt.domains, tt.coeffs, tt.alpha, tt.epochs)
			if tt.wantKind == errors.KindUnknown {
				if err != nil {
					t.Fatalf("CheckFitArgs() unexpected error: %v", err)
				}
				return
			}
			if got := errors.KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf(CheckFitArgs()) = %v, want %v (err: %v)", got, tt.wantKind, err)
			}
		})
	}
}

func TestCheckFitArgsAxis(t *testing.T) {
	err := CheckFitArgs("test", []float64{1, 2}, [][]float64{{1, 2}}, []float64{0}, 1, 1)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Axis != 1 || dimErr.Expected != 2 || dimErr.Got != 1 {
		t.Errorf("unexpected DimensionError: %+v", dimErr)
	}

	err = CheckFitArgs("test", []float64{1, 2}, [][]float64{{1}}, []float64{0, 0}, 1, 1)
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Axis != 0 {
		t.Errorf("expected axis 0, got %d", dimErr.Axis)
	}
}
