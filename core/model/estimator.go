// Package model は推定器が共有する型を定義します。
//
// すべての推定器は Algorithm のシグネチャに従い、目的変数（codomain）と特徴量列
// （domains）、呼び出し側が確保した係数ベクトルを受け取り、予測関数を返します。
// 係数ベクトルはインデックス0がバイアス、1+k が特徴量 k の重みです。
package model

import "gonum.org/v1/gonum/mat"

// PredictFunc は特徴ベクトルからスカラーへの予測関数です。
// 生成時点の係数のスナップショットを保持するため、複数のgoroutineから同時に呼び出せます。
type PredictFunc func(x []float64) (float64, error)

// Algorithm は推定器の共通シグネチャです。
// coeffs は学習結果として上書きされます。alpha と epochs を使わない推定器には
// UnusedRate と UnusedEpochs を渡します。
type Algorithm func(codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) (PredictFunc, error)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer はモデルの決定係数（R²）を計算するインターフェース
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor は行列ベースの学習・予測・評価をまとめたインターフェース
type Regressor interface {
	Fitter
	Predictor
	Scorer
}
