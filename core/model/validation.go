package model

import (
	"math"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

const (
	// UnusedRate は学習率を使わない推定器に渡す値です。
	UnusedRate = -1.0
	// UnusedEpochs はエポック数を使わない推定器に渡す値です。
	UnusedEpochs = math.MaxInt
)

// CheckFitArgs は数値計算の前に推定器の引数を検証します。
//
//   - codomain が空なら空入力エラー
//   - 特徴量列の長さが codomain と異なれば axis 0 の DimensionError
//   - len(coeffs) != 1+len(domains) なら axis 1 の DimensionError
//   - alpha が0またはNaN、epochs が0以下なら ValidationError
func CheckFitArgs(op string, codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) error {
	if len(codomain) == 0 {
		return errors.NewEmptyDataError(op)
	}
	for _, domain := range domains {
		if len(domain) != len(codomain) {
			return errors.NewDimensionError(op, len(codomain), len(domain), 0)
		}
	}
	if len(coeffs) != len(domains)+1 {
		return errors.NewDimensionError(op, len(domains)+1, len(coeffs), 1)
	}
	if alpha == 0 || math.IsNaN(alpha) {
		return errors.NewValidationError("alpha", "learning rate must be non-zero", alpha)
	}
	if epochs <= 0 {
		return errors.NewValidationError("epochs", "epoch count must be positive", epochs)
	}
	return nil
}
