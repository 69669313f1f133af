// Package preprocessing は推定器に渡す前の特徴量の変換を提供します。
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// StandardScaler は特徴量を平均0、標準偏差1に変換する
//
// 反復型の推定器（GradientDescent、LogisticRegression）は特徴量のスケールが揃っていると
// 同じ学習率で安定して学習できます。
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	scaled, err := scaler.FitTransformDataset(ds)
//	predict, err := linear.GradientDescent(scaled.Codomain, scaled.Domains, coeffs, 0.01, 20)
type StandardScaler struct {
	state *model.StateManager

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差（母標準偏差）
	Scale []float64

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		state:    model.NewStateManager("StandardScaler"),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

func (s *StandardScaler) fitColumns(op string, columns [][]float64, nSamples int) error {
	if nSamples == 0 || len(columns) == 0 {
		return errors.NewEmptyDataError(op)
	}

	mean := make([]float64, len(columns))
	scale := make([]float64, len(columns))
	for j, col := range columns {
		if len(col) != nSamples {
			return errors.NewDimensionError(op, nSamples, len(col), 0)
		}
		m, std := stat.PopMeanStdDev(col, nil)
		if s.WithMean {
			mean[j] = m
		}
		scale[j] = 1.0
		// 標準偏差が0に近い場合は1のまま（ゼロ除算を避ける）
		if s.WithStd && std >= 1e-8 {
			scale[j] = std
		}
	}

	s.Mean, s.Scale = mean, scale
	s.state.SetFitted(len(columns), nSamples)
	return nil
}

// Fit は訓練データ X（n_samples × n_features）から平均と標準偏差を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	columns := make([][]float64, c)
	for j := range columns {
		columns[j] = mat.Col(nil, j, X)
	}
	return s.fitColumns("StandardScaler.Fit", columns, r)
}

// FitDataset は ds の特徴量列から平均と標準偏差を計算する
func (s *StandardScaler) FitDataset(ds model.Dataset) error {
	return s.fitColumns("StandardScaler.FitDataset", ds.Domains, ds.NSamples())
}

func (s *StandardScaler) checkFeatures(op string, c int) error {
	if err := s.state.RequireFitted(op); err != nil {
		return err
	}
	nFeatures, _ := s.state.GetDimensions()
	if c != nFeatures {
		return errors.NewDimensionError("StandardScaler."+op, nFeatures, c, 1)
	}
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	r, c := X.Dims()
	if err := s.checkFeatures("Transform", c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Scale[j]
	}, X)
	return result, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	r, c := X.Dims()
	if err := s.checkFeatures("InverseTransform", c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, v float64) float64 {
		return v*s.Scale[j] + s.Mean[j]
	}, X)
	return result, nil
}

func (s *StandardScaler) mapDataset(op string, ds model.Dataset, f func(v float64, j int) float64) (model.Dataset, error) {
	if err := s.checkFeatures(op, ds.NFeatures()); err != nil {
		return model.Dataset{}, err
	}

	domains := make([][]float64, len(ds.Domains))
	for j, domain := range ds.Domains {
		if len(domain) != ds.NSamples() {
			return model.Dataset{}, errors.NewDimensionError("StandardScaler."+op, ds.NSamples(), len(domain), 0)
		}
		domains[j] = make([]float64, len(domain))
		for i, v := range domain {
			domains[j][i] = f(v, j)
		}
	}
	return model.Dataset{
		Codomain: append([]float64(nil), ds.Codomain...),
		Domains:  domains,
	}, nil
}

// TransformDataset は ds の特徴量列を標準化した新しい Dataset を返す。目的変数はコピーされる。
func (s *StandardScaler) TransformDataset(ds model.Dataset) (model.Dataset, error) {
	return s.mapDataset("TransformDataset", ds, func(v float64, j int) float64 {
		return (v - s.Mean[j]) / s.Scale[j]
	})
}

// FitTransformDataset は FitDataset と TransformDataset を続けて実行する
func (s *StandardScaler) FitTransformDataset(ds model.Dataset) (model.Dataset, error) {
	if err := s.FitDataset(ds); err != nil {
		return model.Dataset{}, err
	}
	return s.TransformDataset(ds)
}

// InverseTransformDataset は TransformDataset の逆変換
func (s *StandardScaler) InverseTransformDataset(ds model.Dataset) (model.Dataset, error) {
	return s.mapDataset("InverseTransformDataset", ds, func(v float64, j int) float64 {
		return v*s.Scale[j] + s.Mean[j]
	})
}

// UnscaleCoefficients は標準化した特徴量で学習した係数ベクトルを元のスケールの係数に変換する
//
//	w_k = w'_k / scale_k
//	b   = b' - Σ w_k·mean_k
func (s *StandardScaler) UnscaleCoefficients(coeffs []float64) ([]float64, error) {
	if err := s.checkFeatures("UnscaleCoefficients", len(coeffs)-1); err != nil {
		return nil, err
	}
	out := make([]float64, len(coeffs))
	out[0] = coeffs[0]
	for k := range s.Mean {
		out[1+k] = coeffs[1+k] / s.Scale[k]
		out[0] -= out[1+k] * s.Mean[k]
	}
	return out, nil
}

// IsFitted は学習済みかどうかを返す
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	nFeatures, _ := s.state.GetDimensions()
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, nFeatures)
}

var (
	_ model.Transformer        = (*StandardScaler)(nil)
	_ model.DatasetTransformer = (*StandardScaler)(nil)
)
