// Package discriminant は2クラス・1特徴量の線形判別分析を提供します。
package discriminant

import (
	"maps"
	"math"
	"slices"
	"time"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
	"github.com/YuminosukeSato/linfit/stats"
)

// Discriminant は学習済みの判別モデルです。各スライスはラベルの昇順に並びます。
type Discriminant struct {
	Labels   []float64
	Means    []float64
	Priors   []float64
	Variance float64 // プール分散
}

// PartitionByClass は domain の値をラベルごとに観測順で分けます。
func PartitionByClass(codomain, domain []float64) map[float64][]float64 {
	classes := make(map[float64][]float64)
	for i, label := range codomain {
		classes[label] = append(classes[label], domain[i])
	}
	return classes
}

// Fit はクラスごとの平均と事前確率、プール分散を求めます。
//
// プール分散は各観測の自クラス平均からの偏差平方和を N - クラス数 で割った値です。
// N とクラス数が等しい場合、またはプール分散が0の場合は DegenerateDataError を返します。
func Fit(codomain, domain []float64) (*Discriminant, error) {
	const op = "discriminant.Fit"
	if len(codomain) == 0 {
		return nil, errors.NewEmptyDataError(op)
	}
	if len(domain) != len(codomain) {
		return nil, errors.NewDimensionError(op, len(codomain), len(domain), 0)
	}

	classes := PartitionByClass(codomain, domain)
	labels := slices.Sorted(maps.Keys(classes))
	n := len(codomain)
	if n == len(labels) {
		return nil, errors.NewDegenerateDataError(op, "zero degrees of freedom for pooled variance", -1)
	}

	d := &Discriminant{
		Labels: labels,
		Means:  make([]float64, len(labels)),
		Priors: make([]float64, len(labels)),
	}
	var sumSq float64
	for c, label := range labels {
		values := classes[label]
		mean, err := stats.Average(values)
		if err != nil {
			return nil, err
		}
		d.Means[c] = mean
		d.Priors[c] = float64(len(values)) / float64(n)
		for _, x := range values {
			sumSq += (x - mean) * (x - mean)
		}
	}

	d.Variance = sumSq / float64(n-len(labels))
	if d.Variance == 0 {
		return nil, errors.NewDegenerateDataError(op, "pooled variance is zero", 0)
	}
	return d, nil
}

// Scores は x に対する各クラスの判別スコア x·μ/σ² - μ²/(2σ²) + ln(π) を返します。
func (d *Discriminant) Scores(x float64) []float64 {
	scores := make([]float64, len(d.Labels))
	for c, mean := range d.Means {
		scores[c] = x*mean/d.Variance - mean*mean/(2*d.Variance) + math.Log(d.Priors[c])
	}
	return scores
}

// Predict は長さ1の x について、スコアが最大のクラスのインデックス（ラベルの昇順）を返します。
// 同点の場合は先のクラスを選びます。
func (d *Discriminant) Predict(x []float64) (float64, error) {
	if len(x) != 1 {
		return 0, errors.NewDimensionError("discriminant.Predict", 1, len(x), 1)
	}

	best, maxScore := 0, -math.MaxFloat64
	for c, score := range d.Scores(x[0]) {
		if score > maxScore {
			best, maxScore = c, score
		}
	}
	return float64(best), nil
}

// Label はクラスのインデックスを元のラベルに戻します。
func (d *Discriminant) Label(index int) (float64, error) {
	if index < 0 || index >= len(d.Labels) {
		return 0, errors.NewValueError("discriminant.Label", "class index out of range")
	}
	return d.Labels[index], nil
}

// PredictFunc は現在の統計量のコピーを保持する予測関数を返します。
func (d *Discriminant) PredictFunc() model.PredictFunc {
	snapshot := &Discriminant{
		Labels:   slices.Clone(d.Labels),
		Means:    slices.Clone(d.Means),
		Priors:   slices.Clone(d.Priors),
		Variance: d.Variance,
	}
	return snapshot.Predict
}

// LinearDiscriminantAnalysis は model.Algorithm として使える線形判別分析です。
// domains はちょうど1列、coeffs は長さ2である必要があります。coeffs の値は変更しません。
// alpha と epochs は使いません。予測関数はクラスのインデックスを float64 で返します。
func LinearDiscriminantAnalysis(codomain []float64, domains [][]float64, coeffs []float64, alpha float64, epochs int) (_ model.PredictFunc, err error) {
	const op = "discriminant.LinearDiscriminantAnalysis"
	defer errors.Recover(&err, op)

	if err := model.CheckFitArgs(op, codomain, domains, coeffs, model.UnusedRate, model.UnusedEpochs); err != nil {
		return nil, err
	}
	if len(domains) != 1 {
		return nil, errors.NewDimensionError(op, 1, len(domains), 1)
	}

	logger := log.GetLoggerWithName("discriminant").With(log.ModelNameKey, "LinearDiscriminantAnalysis")
	start := time.Now()
	logger.Debug("Training started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(codomain),
		log.FeaturesKey, 1,
	)

	d, err := Fit(codomain, domains[0])
	if err != nil {
		return nil, err
	}

	logger.Debug("Training completed",
		log.OperationKey, log.OperationFit,
		log.ClassesKey, len(d.Labels),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return d.PredictFunc(), nil
}
