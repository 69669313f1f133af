package linear

import (
	"github.com/YuminosukeSato/linfit/core/model"
)

const (
	// SimpleGradientDescentRate は SimpleGradientDescentDefault の学習率です。
	SimpleGradientDescentRate = 0.01
	// SimpleGradientDescentEpochs は SimpleGradientDescentDefault のエポック数です。
	SimpleGradientDescentEpochs = 4
)

// SimpleModel は1変数の直線 y = Bias + Slope·x です。
type SimpleModel struct {
	Slope float64
	Bias  float64
}

// Predict は x に対する予測値を返します。
func (m SimpleModel) Predict(x float64) float64 {
	return m.Bias + m.Slope*x
}

// Coefficients は係数ベクトル [Bias, Slope] を返します。
func (m SimpleModel) Coefficients() []float64 {
	return []float64{m.Bias, m.Slope}
}

// PredictFunc は長さ1の特徴ベクトルを受け取る予測関数を返します。
func (m SimpleModel) PredictFunc() model.PredictFunc {
	return Hyperplane(m.Coefficients())
}

// SimpleLinearRegression は output を input で説明する最小二乗直線を求めます。
func SimpleLinearRegression(output, input []float64) (SimpleModel, error) {
	coeffs := make([]float64, 2)
	if _, err := LinearRegression(output, [][]float64{input}, coeffs, model.UnusedRate, model.UnusedEpochs); err != nil {
		return SimpleModel{}, err
	}
	return SimpleModel{Bias: coeffs[0], Slope: coeffs[1]}, nil
}

// SimpleGradientDescent は (0, 0) から始めて GradientDescent と同じ更新で直線を求めます。
func SimpleGradientDescent(output, input []float64, alpha float64, epochs int) (SimpleModel, error) {
	coeffs := make([]float64, 2)
	if _, err := GradientDescent(output, [][]float64{input}, coeffs, alpha, epochs); err != nil {
		return SimpleModel{}, err
	}
	return SimpleModel{Bias: coeffs[0], Slope: coeffs[1]}, nil
}

// SimpleGradientDescentDefault は学習率 0.01、4エポックで SimpleGradientDescent を実行します。
func SimpleGradientDescentDefault(output, input []float64) (SimpleModel, error) {
	return SimpleGradientDescent(output, input, SimpleGradientDescentRate, SimpleGradientDescentEpochs)
}
