package model

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/core/parallel"
	"github.com/YuminosukeSato/linfit/metrics"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// AlgorithmEstimator は Algorithm を行列ベースの Fit/Predict/Score に適合させます。
//
//	est := model.NewAlgorithmEstimator("GradientDescent", linear.GradientDescent,
//	    model.WithLearningRate(0.01),
//	    model.WithEpochs(20),
//	)
//	if err := est.Fit(X, y); err != nil {
//	    return err
//	}
//	yPred, err := est.Predict(X)
//
// 学習率とエポック数の既定値は UnusedRate と UnusedEpochs なので、反復型の
// アルゴリズムでは必ずオプションで指定してください。
type AlgorithmEstimator struct {
	state     *StateManager
	name      string
	algorithm Algorithm
	rate      float64
	epochs    int
	initial   []float64
	logger    log.Logger

	predict PredictFunc
	coeffs  []float64
}

// Option は AlgorithmEstimator の設定を変更する関数です。
type Option func(*AlgorithmEstimator)

// WithLearningRate は学習率を設定します。
func WithLearningRate(rate float64) Option {
	return func(e *AlgorithmEstimator) {
		e.rate = rate
	}
}

// WithEpochs はエポック数を設定します。
func WithEpochs(epochs int) Option {
	return func(e *AlgorithmEstimator) {
		e.epochs = epochs
	}
}

// WithInitialCoefficients は学習開始時の係数を設定します。値はコピーされます。
// 指定しない場合は0で初期化されます。
func WithInitialCoefficients(coeffs []float64) Option {
	return func(e *AlgorithmEstimator) {
		e.initial = append([]float64(nil), coeffs...)
	}
}

// WithLogger はロガーを設定します。
func WithLogger(logger log.Logger) Option {
	return func(e *AlgorithmEstimator) {
		e.logger = logger
	}
}

// NewAlgorithmEstimator は name という名前で alg を包んだ推定器を作成します。
func NewAlgorithmEstimator(name string, alg Algorithm, opts ...Option) *AlgorithmEstimator {
	e := &AlgorithmEstimator{
		state:     NewStateManager(name),
		name:      name,
		algorithm: alg,
		rate:      UnusedRate,
		epochs:    UnusedEpochs,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.GetLoggerWithName("model")
	}
	e.logger = e.logger.With(log.ModelNameKey, name)
	return e
}

// Name は推定器の名前を返します。
func (e *AlgorithmEstimator) Name() string {
	return e.name
}

// Fit は X（N×D）と y（N×1）で学習します。失敗した場合、以前の学習結果は保持されます。
func (e *AlgorithmEstimator) Fit(X, y mat.Matrix) (err error) {
	op := e.name + ".Fit"
	defer errors.Recover(&err, op)

	ds, err := DatasetFromMatrix(X, y)
	if err != nil {
		return err
	}

	coeffs := make([]float64, ds.NFeatures()+1)
	if e.initial != nil {
		if len(e.initial) != len(coeffs) {
			return errors.NewDimensionError(op, len(coeffs), len(e.initial), 1)
		}
		copy(coeffs, e.initial)
	}

	start := time.Now()
	e.logger.Debug("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, ds.NSamples(),
		log.FeaturesKey, ds.NFeatures(),
	)

	predict, err := e.algorithm(ds.Codomain, ds.Domains, coeffs, e.rate, e.epochs)
	if err != nil {
		return err
	}

	_ = e.state.WithStateMut(func() error {
		e.predict = predict
		e.coeffs = coeffs
		return nil
	})
	e.state.SetFitted(ds.NFeatures(), ds.NSamples())

	e.logger.Debug("Training completed",
		log.OperationKey, log.OperationFit,
		log.CoefficientsKey, coeffs,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は X の各行に対する予測を N×1 の行列で返します。
func (e *AlgorithmEstimator) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := e.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}

	nFeatures, _ := e.state.GetDimensions()
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError(e.name+".Predict", nFeatures, c, 1)
	}

	var predict PredictFunc
	_ = e.state.WithState(func() error {
		predict = e.predict
		return nil
	})

	predictions := mat.NewDense(r, 1, nil)
	err := parallel.ParallelizeErr(r, parallelThreshold, func(start, end int) error {
		row := make([]float64, c)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			v, err := predict(row)
			if err != nil {
				return err
			}
			predictions.Set(i, 0, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// Score は予測の決定係数（R²）を返します。
func (e *AlgorithmEstimator) Score(X, y mat.Matrix) (float64, error) {
	if err := e.state.RequireFitted("Score"); err != nil {
		return 0, err
	}

	yPred, err := e.Predict(X)
	if err != nil {
		return 0, err
	}

	r, cy := y.Dims()
	if cy != 1 {
		return 0, errors.NewValueError(e.name+".Score", "y must be a column vector")
	}
	return metrics.R2Score(
		mat.NewVecDense(r, mat.Col(nil, 0, y)),
		mat.NewVecDense(r, mat.Col(nil, 0, yPred)),
	)
}

// Coefficients は学習済みの係数ベクトルのコピーを返します。未学習の場合は nil です。
func (e *AlgorithmEstimator) Coefficients() []float64 {
	var out []float64
	_ = e.state.WithState(func() error {
		if e.coeffs != nil {
			out = append([]float64(nil), e.coeffs...)
		}
		return nil
	})
	return out
}

// PredictFunc は学習済みの予測関数を返します。
func (e *AlgorithmEstimator) PredictFunc() (PredictFunc, error) {
	if err := e.state.RequireFitted("PredictFunc"); err != nil {
		return nil, err
	}
	var predict PredictFunc
	_ = e.state.WithState(func() error {
		predict = e.predict
		return nil
	})
	return predict, nil
}

// IsFitted はモデルが学習済みかどうかを返します。
func (e *AlgorithmEstimator) IsFitted() bool {
	return e.state.IsFitted()
}

// Reset は学習結果を破棄します。
func (e *AlgorithmEstimator) Reset() {
	_ = e.state.WithStateMut(func() error {
		e.predict = nil
		e.coeffs = nil
		return nil
	})
	e.state.Reset()
}

var _ Regressor = (*AlgorithmEstimator)(nil)
