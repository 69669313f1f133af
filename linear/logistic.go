package linear

import (
	"math"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
)

const (
	// DefaultLogisticRate は LogisticRegression の既定の学習率です。
	DefaultLogisticRate = 0.3
	// DefaultLogisticEpochs は LogisticRegression の既定のエポック数です。
	DefaultLogisticEpochs = 6
)

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// LogisticRegression は2値分類のロジスティック回帰の係数を求めます。codomain は 0/1 のラベルです。
//
// GradientDescent と同じく観測ごとに coeffs を更新します。
//
//	p = sigmoid(predict(x_i))
//	g = alpha·(y_i - p)·p·(1 - p)
//	C[0]   += g
//	C[1+k] += g·x_ki
//
// 返す予測関数は (0, 1) の確率を返します。分類には 0.5 を閾値として使います。
func LogisticRegression(codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) (_ model.PredictFunc, err error) {
	const op = "linear.LogisticRegression"
	defer errors.Recover(&err, op)

	if err := model.CheckFitArgs(op, codomain, domains, coeffs, alpha, epochs); err != nil {
		return nil, err
	}
	trace := startFit("LogisticRegression", codomain, domains, alpha, epochs)

	for epoch := 0; epoch < epochs; epoch++ {
		for i, y := range codomain {
			p := sigmoid(linearScore(coeffs, domains, i))
			g := alpha * (y - p) * p * (1 - p)
			coeffs[0] += g
			for k, domain := range domains {
				coeffs[1+k] += g * domain[i]
			}
		}
	}
	warnIfUnstable("LogisticRegression", op, coeffs, epochs)

	score := Hyperplane(coeffs)
	predict := func(x []float64) (float64, error) {
		z, err := score(x)
		if err != nil {
			return 0, err
		}
		return sigmoid(z), nil
	}
	trace.done(coeffs, codomain, domains, predict)
	return predict, nil
}
