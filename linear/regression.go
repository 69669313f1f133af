package linear

import (
	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/stats"
)

// LinearRegression は閉形式で係数を求めます。alpha と epochs は使いません。
//
// 各特徴量 k について独立に単回帰の傾き
//
//	C[1+k] = Σ(x_ki - mean_k)(y_i - mean_y) / Σ(x_ki - mean_k)²
//
// を求め、最後に C[0] = mean_y - Σ C[1+k]·mean_k とします。特徴量間の相関は考慮しないため、
// 特徴量が1つの場合を除き多変量の最小二乗解とは一致しません。
//
// 分母が0（定数列）の特徴量があれば DegenerateDataError を返し、coeffs は変更しません。
func LinearRegression(codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) (_ model.PredictFunc, err error) {
	const op = "linear.LinearRegression"
	defer errors.Recover(&err, op)

	if err := model.CheckFitArgs(op, codomain, domains, coeffs, model.UnusedRate, model.UnusedEpochs); err != nil {
		return nil, err
	}
	trace := startFit("LinearRegression", codomain, domains, model.UnusedRate, model.UnusedEpochs)

	meanY, err := stats.Average(codomain)
	if err != nil {
		return nil, err
	}

	fitted := make([]float64, len(coeffs))
	fitted[0] = meanY
	for k, domain := range domains {
		meanX, err := stats.Average(domain)
		if err != nil {
			return nil, err
		}

		var num, den float64
		for i, x := range domain {
			dx := x - meanX
			num += dx * (codomain[i] - meanY)
			den += dx * dx
		}
		if den == 0 {
			return nil, errors.NewDegenerateDataError(op, "zero variance", k)
		}

		fitted[1+k] = num / den
		fitted[0] -= fitted[1+k] * meanX
	}

	copy(coeffs, fitted)
	predict := Hyperplane(coeffs)
	trace.done(coeffs, codomain, domains, predict)
	return predict, nil
}
