// Package registry は名前から推定器を引くレジストリです。
//
//	reg := registry.Default()
//	for _, res := range reg.FitAll(ds) {
//	    if res.Err != nil {
//	        continue
//	    }
//	    rmse, _ := metrics.RootMeanSquareErrorDataset(ds.Codomain, ds.Domains, res.Predict)
//	}
package registry

import (
	"slices"
	"sync"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/core/parallel"
	"github.com/YuminosukeSato/linfit/discriminant"
	"github.com/YuminosukeSato/linfit/linear"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// 既定の推定器の名前
const (
	LinearRegression           = "linear_regression"
	LinearGradientDescent      = "linear_gradient_descent"
	LogisticRegression         = "logistic_regression"
	LinearDiscriminantAnalysis = "linear_discriminant_analysis"
)

// Entry は推定器とその既定のハイパーパラメータです。
type Entry struct {
	Name      string
	Algorithm model.Algorithm
	Rate      float64
	Epochs    int
}

// NewEstimator は Entry の既定値を設定した AlgorithmEstimator を返します。opts で上書きできます。
func (e Entry) NewEstimator(opts ...model.Option) *model.AlgorithmEstimator {
	all := append([]model.Option{
		model.WithLearningRate(e.Rate),
		model.WithEpochs(e.Epochs),
	}, opts...)
	return model.NewAlgorithmEstimator(e.Name, e.Algorithm, all...)
}

// Result は FitAll の1推定器分の結果です。
type Result struct {
	Name    string
	Coeffs  []float64
	Predict model.PredictFunc
	Err     error
}

// Registry は名前から Entry への対応表です。複数のgoroutineから安全に使えます。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	logger  log.Logger
}

// New は空のレジストリを作成します。
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
		logger:  log.GetLoggerWithName("registry"),
	}
}

// Default は4つの推定器を既定値で登録したレジストリを返します。
func Default() *Registry {
	r := New()
	for _, e := range []Entry{
		{LinearRegression, linear.LinearRegression, model.UnusedRate, model.UnusedEpochs},
		{LinearGradientDescent, linear.GradientDescent, linear.DefaultGradientDescentRate, linear.DefaultGradientDescentEpochs},
		{LogisticRegression, linear.LogisticRegression, linear.DefaultLogisticRate, linear.DefaultLogisticEpochs},
		{LinearDiscriminantAnalysis, discriminant.LinearDiscriminantAnalysis, model.UnusedRate, model.UnusedEpochs},
	} {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

// Register は推定器を登録します。名前が空、重複、または Algorithm が nil の場合はエラーです。
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return errors.NewValidationError("name", "must not be empty", e.Name)
	}
	if e.Algorithm == nil {
		return errors.NewValidationError("algorithm", "must not be nil", e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.Name]; ok {
		return errors.NewValidationError("name", "already registered", e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

// Lookup は name の Entry を返します。
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, errors.NewValidationError("name", "no such algorithm", name)
	}
	return e, nil
}

// Names は登録済みの名前を昇順で返します。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fit は name の推定器を既定のハイパーパラメータで ds に適用します。coeffs は上書きされます。
func (r *Registry) Fit(name string, ds model.Dataset, coeffs []float64) (model.PredictFunc, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Algorithm(ds.Codomain, ds.Domains, coeffs, e.Rate, e.Epochs)
}

// FitAll は登録済みのすべての推定器を並行に ds へ適用します。
// 各推定器はそれぞれ0で初期化した係数ベクトルを使い、結果は Names の順に並びます。
// ds は読み取りのみで共有されます。
func (r *Registry) FitAll(ds model.Dataset) []Result {
	names := r.Names()
	results := make([]Result, len(names))

	parallel.Parallelize(len(names), func(start, end int) {
		for i := start; i < end; i++ {
			name := names[i]
			coeffs := make([]float64, ds.NFeatures()+1)
			var predict model.PredictFunc
			err := errors.SafeExecute("registry.FitAll."+name, func() error {
				var err error
				predict, err = r.Fit(name, ds, coeffs)
				return err
			})
			results[i] = Result{Name: name, Coeffs: coeffs, Predict: predict, Err: err}
		}
	})

	for _, res := range results {
		if res.Err != nil {
			r.logger.Warn("Fit failed",
				log.ModelNameKey, res.Name,
				log.ErrorKindKey, errors.KindOf(res.Err).String(),
			)
		}
	}
	return results
}
