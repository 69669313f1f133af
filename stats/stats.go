// Package stats は推定器が共有する基本統計量を提供します。
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// Average は seq の算術平均を返します。seq が空の場合は空入力エラーを返します。
func Average(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, errors.NewEmptyDataError("stats.Average")
	}
	return stat.Mean(seq, nil), nil
}
