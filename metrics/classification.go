package metrics

import "github.com/YuminosukeSato/linfit/pkg/errors"

// Accuracy は scores >= threshold を陽性とみなしたときの正解率を返します。
// yTrue は 0/1 のラベルで、1 を陽性とします。
func Accuracy(yTrue, scores []float64, threshold float64) (float64, error) {
	const op = "Accuracy"
	if len(yTrue) == 0 {
		return 0, errors.NewEmptyDataError(op)
	}
	if len(scores) != len(yTrue) {
		return 0, errors.NewDimensionError(op, len(yTrue), len(scores), 0)
	}

	correct := 0
	for i, y := range yTrue {
		if (scores[i] >= threshold) == (y == 1) {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}
