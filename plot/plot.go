package plot

import (
	"math/cmplx"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/mat"

	"github.com/plasmakit/specdeform/field"
)

// SpectrumPoints extracts the finite eigenvalues of a canonical matrix
// as (Re, Im) coordinate slices, skipping NaN-screened modes.
func SpectrumPoints(m *mat.CDense) (re, im []float64) {
	r, c := m.Dims()
	for j := 0; j < c; j++ {
		v := m.At(r-1, j)
		if cmplx.IsNaN(v) {
			continue
		}
		re = append(re, real(v))
		im = append(im, imag(v))
	}
	return re, im
}

// Spectrum scatters the eigenvalue spectrum in the complex frequency
// plane. Screened modes are absent from the figure.
func Spectrum(m *mat.CDense, title string) {
	re, im := SpectrumPoints(m)

	plt.Reset()
	plt.Plot(re, im, "ok", plt.Label("eigenvalues"), plt.LW(2))
	plt.Title(title)
	plt.Legend(plt.Loc("upper left"), plt.FrameOn(false))
	plt.Show()
}

// CurvePoints samples the real part of a profile along real xs.
func CurvePoints(p *field.Profile, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := p.RealValue(x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

// Curve traces a profile along the real axis with the given pyplot
// format string (e.g. "b" or "ok").
func Curve(p *field.Profile, xs []float64, format string) error {
	ys, err := CurvePoints(p, xs)
	if err != nil {
		return err
	}

	plt.Reset()
	plt.Plot(xs, ys, format, plt.Label(p.Label()), plt.LW(3))
	plt.Title(p.Label())
	plt.Legend(plt.Loc("upper left"))
	plt.Show()
	return nil
}
