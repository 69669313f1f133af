// Package visualize は1特徴量のデータと学習済みモデルを gonum/plot で描画します。
package visualize

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// 画像の既定サイズ
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Curve は描画する予測関数とその凡例名です。
type Curve struct {
	Name    string
	Predict model.PredictFunc
}

type xys struct {
	x, y []float64
}

func (d xys) Len() int                    { return len(d.x) }
func (d xys) XY(i int) (float64, float64) { return d.x[i], d.y[i] }

// FitPlot は (domain, codomain) の散布図に各 Curve の予測曲線を重ねたプロットを作ります。
// 予測関数は長さ1の特徴ベクトルで呼び出されます。
func FitPlot(title string, codomain, domain []float64, curves ...Curve) (*plot.Plot, error) {
	const op = "visualize.FitPlot"
	if len(codomain) == 0 {
		return nil, errors.NewEmptyDataError(op)
	}
	if len(domain) != len(codomain) {
		return nil, errors.NewDimensionError(op, len(codomain), len(domain), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Left = true
	p.Legend.Top = true

	scatter, err := plotter.NewScatter(xys{x: domain, y: codomain})
	if err != nil {
		return nil, errors.Wrap(err, "could not create scatter plot")
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("data", scatter)

	xMin, xMax, _, _ := scatter.DataRange()
	for i, c := range curves {
		// 描画中はエラーを返せないので先に一度呼んで確認する
		if _, err := c.Predict([]float64{xMin}); err != nil {
			return nil, errors.Wrapf(err, "curve %q", c.Name)
		}
		predict := c.Predict
		fn := plotter.NewFunction(func(x float64) float64 {
			y, err := predict([]float64{x})
			if err != nil {
				return math.NaN()
			}
			return y
		})
		fn.XMin, fn.XMax = xMin, xMax
		fn.Samples = 100
		fn.Color = plotutil.Color(i)
		fn.Width = vg.Points(1.5)
		p.Add(fn)
		p.Legend.Add(c.Name, fn)
	}
	return p, nil
}

// Save はプロットを path に保存します。形式は拡張子（.png, .svg, .pdf など）で決まります。
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "could not save plot to %s", path)
	}
	return nil
}

// WriteTo はプロットを format（"png", "svg" など）で w に書き出します。
func WriteTo(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return errors.Wrap(err, "could not create writer")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write plot")
	}
	return nil
}
