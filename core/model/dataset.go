package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// Dataset は N 個の目的変数と、それぞれ長さ N の D 本の特徴量列の組です。
// Domains[k][i] と Codomain[i] は同じ観測を指します。
type Dataset struct {
	Codomain []float64
	Domains  [][]float64
}

// NewDataset は目的変数と特徴量列から Dataset を作ります。スライスはコピーしません。
func NewDataset(codomain []float64, domains ...[]float64) Dataset {
	return Dataset{Codomain: codomain, Domains: domains}
}

// DatasetFromMatrix は N×D の X と N×1 の y から Dataset を作ります。
// 値はコピーされるので、元の行列を後から変更しても影響しません。
func DatasetFromMatrix(X, y mat.Matrix) (Dataset, error) {
	const op = "DatasetFromMatrix"
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 {
		return Dataset{}, errors.NewEmptyDataError(op)
	}
	if ry != r {
		return Dataset{}, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return Dataset{}, errors.NewValueError(op, "y must be a column vector")
	}

	domains := make([][]float64, c)
	for j := 0; j < c; j++ {
		domains[j] = mat.Col(nil, j, X)
	}
	return Dataset{
		Codomain: mat.Col(nil, 0, y),
		Domains:  domains,
	}, nil
}

// NSamples は観測数 N を返します。
func (d Dataset) NSamples() int {
	return len(d.Codomain)
}

// NFeatures は特徴量の数 D を返します。
func (d Dataset) NFeatures() int {
	return len(d.Domains)
}

// Row は観測 i の特徴ベクトルを新しいスライスで返します。
func (d Dataset) Row(i int) []float64 {
	row := make([]float64, len(d.Domains))
	for k, domain := range d.Domains {
		row[k] = domain[i]
	}
	return row
}

// Matrix は特徴量を N×D、目的変数を N×1 の行列として返します。
// 特徴量が無い場合 X は nil です。
func (d Dataset) Matrix() (X *mat.Dense, y *mat.VecDense) {
	n := d.NSamples()
	if n == 0 {
		return nil, nil
	}
	y = mat.NewVecDense(n, append([]float64(nil), d.Codomain...))
	if len(d.Domains) == 0 {
		return nil, y
	}
	X = mat.NewDense(n, len(d.Domains), nil)
	for k, domain := range d.Domains {
		X.SetCol(k, domain)
	}
	return X, y
}
