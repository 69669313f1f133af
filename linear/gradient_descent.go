package linear

import (
	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
)

const (
	// DefaultGradientDescentRate は GradientDescent の既定の学習率です。
	DefaultGradientDescentRate = 0.01
	// DefaultGradientDescentEpochs は GradientDescent の既定のエポック数です。
	DefaultGradientDescentEpochs = 20
)

// GradientDescent はオンライン（確率的）勾配降下法で線形回帰の係数を求めます。
//
// coeffs の現在値から始め、各エポックで観測を順に1つずつ処理します。
//
//	e = predict(x_i) - y_i
//	C[0]   -= alpha·e
//	C[1+k] -= alpha·e·x_ki
//
// 各観測の誤差は直前の観測で更新された係数で計算します。coeffs は最終値で上書きされます。
func GradientDescent(codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) (_ model.PredictFunc, err error) {
	const op = "linear.GradientDescent"
	defer errors.Recover(&err, op)

	if err := model.CheckFitArgs(op, codomain, domains, coeffs, alpha, epochs); err != nil {
		return nil, err
	}
	trace := startFit("GradientDescent", codomain, domains, alpha, epochs)

	for epoch := 0; epoch < epochs; epoch++ {
		for i, y := range codomain {
			e := linearScore(coeffs, domains, i) - y
			coeffs[0] -= alpha * e
			for k, domain := range domains {
				coeffs[1+k] -= alpha * e * domain[i]
			}
		}
	}
	warnIfUnstable("GradientDescent", op, coeffs, epochs)

	predict := Hyperplane(coeffs)
	trace.done(coeffs, codomain, domains, predict)
	return predict, nil
}
