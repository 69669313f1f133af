package linear

import (
	"context"
	"time"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/metrics"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

type fitTrace struct {
	logger log.Logger
	start  time.Time
}

func startFit(modelName string, codomain []float64, domains [][]float64, alpha float64, epochs int) fitTrace {
	logger := log.GetLoggerWithName("linear").With(log.ModelNameKey, modelName)
	fields := []any{
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(codomain),
		log.FeaturesKey, len(domains),
	}
	if alpha != model.UnusedRate {
		fields = append(fields, log.LearningRateKey, alpha)
	}
	if epochs != model.UnusedEpochs {
		fields = append(fields, log.EpochsKey, epochs)
	}
	logger.Debug("Training started", fields...)
	return fitTrace{logger: logger, start: time.Now()}
}

// done は学習完了を記録します。Debug が有効な場合のみ学習データでの RMSE を計算します。
func (t fitTrace) done(coeffs []float64, codomain []float64, domains [][]float64, predict model.PredictFunc) {
	if !t.logger.Enabled(context.Background(), log.LevelDebug) {
		return
	}
	fields := []any{
		log.OperationKey, log.OperationFit,
		log.CoefficientsKey, append([]float64(nil), coeffs...),
		log.DurationMsKey, time.Since(t.start).Milliseconds(),
	}
	if rmse, err := metrics.RootMeanSquareErrorDataset(codomain, domains, predict); err == nil {
		fields = append(fields, log.RMSEKey, rmse)
	}
	t.logger.Debug("Training completed", fields...)
}

// warnIfUnstable は反復後の係数が有限でない場合に ConvergenceWarning を発行します。
func warnIfUnstable(modelName, op string, coeffs []float64, epochs int) {
	if err := errors.CheckNumericalStability(op, coeffs, epochs); err != nil {
		errors.Warn(errors.NewConvergenceWarning(modelName, epochs, err.Error()))
	}
}
