package metrics

import (
	"math"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// RootMeanSquareError は単一特徴量の入力 domain に対する予測関数 predict の
// 平方根平均二乗誤差を返します。codomain と domain は同じ観測を指す位置で揃っている必要があります。
//
// predict には model.PredictFunc をそのまま渡せます。predict が返したエラーはそのまま返します。
func RootMeanSquareError(codomain, domain []float64, predict func(x []float64) (float64, error)) (float64, error) {
	const op = "RootMeanSquareError"
	if len(codomain) == 0 {
		return 0, errors.NewEmptyDataError(op)
	}
	if len(domain) != len(codomain) {
		return 0, errors.NewDimensionError(op, len(codomain), len(domain), 0)
	}

	var sum float64
	x := make([]float64, 1)
	for i, y := range codomain {
		x[0] = domain[i]
		p, err := predict(x)
		if err != nil {
			return 0, err
		}
		sum += (p - y) * (p - y)
	}
	return math.Sqrt(sum / float64(len(codomain))), nil
}

// RootMeanSquareErrorDataset は D 個の特徴量列に対する RootMeanSquareError です。
func RootMeanSquareErrorDataset(codomain []float64, domains [][]float64, predict func(x []float64) (float64, error)) (float64, error) {
	const op = "RootMeanSquareErrorDataset"
	if len(codomain) == 0 {
		return 0, errors.NewEmptyDataError(op)
	}
	for _, domain := range domains {
		if len(domain) != len(codomain) {
			return 0, errors.NewDimensionError(op, len(codomain), len(domain), 0)
		}
	}

	var sum float64
	x := make([]float64, len(domains))
	for i, y := range codomain {
		for k, domain := range domains {
			x[k] = domain[i]
		}
		p, err := predict(x)
		if err != nil {
			return 0, err
		}
		sum += (p - y) * (p - y)
	}
	return math.Sqrt(sum / float64(len(codomain))), nil
}
