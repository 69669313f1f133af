// Package linear は線形モデルの推定器を提供します。
//
// すべての推定器は model.Algorithm のシグネチャに従います。
//
//	coeffs := make([]float64, 1+len(domains))
//	predict, err := linear.GradientDescent(codomain, domains, coeffs,
//	    linear.DefaultGradientDescentRate, linear.DefaultGradientDescentEpochs)
//
// coeffs は学習結果で上書きされ、返される予測関数はその時点の係数のコピーを保持します。
package linear

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// Hyperplane は係数ベクトル coeffs から予測関数 x ↦ coeffs[0] + Σ coeffs[1+k]·x[k] を作ります。
// coeffs はコピーされます。len(x) が len(coeffs)-1 と異なる場合は axis 1 の DimensionError を返します。
func Hyperplane(coeffs []float64) model.PredictFunc {
	c := append([]float64(nil), coeffs...)
	return func(x []float64) (float64, error) {
		if len(x) != len(c)-1 {
			return 0, errors.NewDimensionError("linear.Hyperplane", len(c)-1, len(x), 1)
		}
		return c[0] + floats.Dot(c[1:], x), nil
	}
}

// linearScore は現在の係数で観測 i のスコアを計算します。coeffs は学習中の値を直接読むので、
// 同じエポック内の直前の更新が反映されます。
func linearScore(coeffs []float64, domains [][]float64, i int) float64 {
	score := coeffs[0]
	for k, domain := range domains {
		score += coeffs[1+k] * domain[i]
	}
	return score
}
