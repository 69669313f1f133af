// Package log defines standard attribute keys for estimator operations.
//
// Using these keys keeps the fields emitted by every estimator consistent, so
// fits of different algorithms can be filtered and compared in log analysis.
// Keys follow a hierarchical naming convention (e.g. "model.name", "data.samples").
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator.
	// Examples: "LinearRegression", "LogisticRegression", "LinearDiscriminantAnalysis"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "discriminant", "registry"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey is the number of observations (length of the codomain).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of domains (feature columns).
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct class labels seen by a classifier.
	ClassesKey = "data.classes"
)

// Training and Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LearningRateKey records the rate (alpha) of the iterative estimators.
	LearningRateKey = "hyperparams.learning_rate"

	// EpochsKey records the number of passes over the dataset.
	EpochsKey = "training.epochs"

	// CoefficientsKey records the coefficient vector (bias first) after fitting.
	CoefficientsKey = "model.coefficients"

	// RMSEKey records a root-mean-square error score.
	RMSEKey = "metrics.rmse"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"
)

// Error Context
const (
	// ErrorKindKey records the errors.Kind of a failure ("empty_input", "shape_mismatch", ...).
	ErrorKindKey = "error.kind"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"
)
