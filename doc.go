// Package linfit provides small linear learners for Go: closed-form and
// gradient-descent linear regression, logistic regression, and two-class
// linear discriminant analysis.
//
// Every learner shares one calling convention. It takes the target values
// (the codomain), one slice per feature (the domains), a coefficient vector
// of length features+1 laid out as [bias, w_1, ..., w_D], a learning rate and
// an epoch count, and returns a prediction function:
//
//	coeffs := make([]float64, 2)
//	predict, err := linear.GradientDescent(y, [][]float64{x}, coeffs,
//	    linear.DefaultGradientDescentRate, linear.DefaultGradientDescentEpochs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	yHat, _ := predict([]float64{6})
//
// The iterative learners update coeffs in place, so the caller can inspect or
// resume from them. Learners that do not use the rate or epochs accept
// model.UnusedRate and model.UnusedEpochs.
//
// # Packages
//
//   - linear: LinearRegression, GradientDescent, LogisticRegression, Hyperplane
//   - discriminant: LinearDiscriminantAnalysis and the fitted Discriminant
//   - stats: Average
//   - metrics: RootMeanSquareError, Accuracy, MSE, RMSE, MAE, R²
//   - preprocessing: StandardScaler
//   - registry: named learners with default hyperparameters, FitAll
//   - visualize: scatter plus fitted curves via gonum/plot
//   - core/model: Algorithm, Dataset, argument checks, AlgorithmEstimator
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: error kinds and structured logging
//
// # Matrix API
//
// model.AlgorithmEstimator wraps any learner behind Fit/Predict/Score over
// gonum matrices:
//
//	est := model.NewAlgorithmEstimator("LinearRegression", linear.LinearRegression)
//	if err := est.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, err := est.Predict(XTest)
//
// Prediction is parallelized for inputs with more than 1000 rows.
//
// # License
//
// linfit is released under the MIT License.
package linfit
