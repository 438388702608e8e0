// Package crosssection implements the polymorphic wavelength- and
// temperature-dependent absorption cross-section abstraction consumed by
// molecular-absorber radiators and photolysis rate calculations.
package crosssection

import (
	"sort"

	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/interpolation"
)

// CrossSection is implemented by every concrete cross-section variant.
type CrossSection interface {
	// Name identifies the physical quantity this cross-section
	// represents (e.g. "O3").
	Name() string
	// Calculate returns sigma(lambda) in cm^2/molecule, sized to
	// wavelengthGrid's cell count, at temperature T [K].
	Calculate(wavelengthGrid *grid.Grid, temperatureK float64) ([]float64, error)
	// CalculateProfile is a convenience that loops Calculate over every
	// layer of temperatureProfileK, returning [n_layers][n_wavelengths].
	CalculateProfile(wavelengthGrid *grid.Grid, temperatureProfileK []float64) ([][]float64, error)
}

// base implements CalculateProfile once for every concrete variant that
// embeds it, following the reference implementation's default-method
// pattern via composition instead of inheritance.
type base struct {
	name string
	calc func(wavelengthGrid *grid.Grid, temperatureK float64) ([]float64, error)
}

func (b base) Name() string { return b.name }

func (b base) CalculateProfile(wavelengthGrid *grid.Grid, temperatureProfileK []float64) ([][]float64, error) {
	result := make([][]float64, len(temperatureProfileK))
	for i, T := range temperatureProfileK {
		sigma, err := b.calc(wavelengthGrid, T)
		if err != nil {
			return nil, err
		}
		result[i] = sigma
	}
	return result, nil
}

// Tabular is a temperature-independent or temperature-bracketed lookup
// cross-section, per spec sec.4.2: wavelengths sorted ascending; if
// temperaturesK is non-empty (sorted ascending), sigma is [n_T][n_lambda]
// and rows are linearly interpolated in T, clamped at the ends (no
// extrapolation); otherwise sigma is a flat [n_lambda] table.
type Tabular struct {
	base
	name          string
	wavelengthsNm []float64
	temperaturesK []float64
	sigmaFlat     []float64
	sigmaByT      [][]float64
}

// NewTabular constructs a temperature-independent tabular cross-section.
func NewTabular(name string, wavelengthsNm, sigma []float64) (*Tabular, error) {
	if len(wavelengthsNm) != len(sigma) {
		return nil, errs.New(errs.InvalidDimension, "crosssection.NewTabular", "%s: %d wavelengths, %d sigma values", name, len(wavelengthsNm), len(sigma))
	}
	t := &Tabular{name: name, wavelengthsNm: wavelengthsNm, sigmaFlat: sigma}
	t.base = base{name: name, calc: t.Calculate}
	return t, nil
}

// NewTabularWithTemperature constructs a temperature-bracketed tabular
// cross-section. temperaturesK must be sorted ascending; sigma[i] is the
// wavelength row for temperaturesK[i].
func NewTabularWithTemperature(name string, wavelengthsNm, temperaturesK []float64, sigma [][]float64) (*Tabular, error) {
	if len(temperaturesK) != len(sigma) {
		return nil, errs.New(errs.InvalidDimension, "crosssection.NewTabularWithTemperature", "%s: %d temperatures, %d sigma rows", name, len(temperaturesK), len(sigma))
	}
	for i, row := range sigma {
		if len(row) != len(wavelengthsNm) {
			return nil, errs.New(errs.InvalidDimension, "crosssection.NewTabularWithTemperature", "%s: row %d has %d values, want %d", name, i, len(row), len(wavelengthsNm))
		}
	}
	t := &Tabular{name: name, wavelengthsNm: wavelengthsNm, temperaturesK: temperaturesK, sigmaByT: sigma}
	t.base = base{name: name, calc: t.Calculate}
	return t, nil
}

func (t *Tabular) Calculate(wavelengthGrid *grid.Grid, temperatureK float64) ([]float64, error) {
	refSigma := t.sigmaFlat
	if t.sigmaByT != nil {
		refSigma = interpolateOverTemperature(t.temperaturesK, t.sigmaByT, temperatureK)
	}
	target := wavelengthGrid.Midpoints()
	result := interpolation.Linear(target, t.wavelengthsNm, refSigma)
	wlMin, wlMax := t.wavelengthsNm[0], t.wavelengthsNm[len(t.wavelengthsNm)-1]
	for i, wl := range target {
		if wl < wlMin || wl > wlMax {
			result[i] = 0
		}
		if result[i] < 0 {
			result[i] = 0
		}
	}
	return result, nil
}

// interpolateOverTemperature linearly interpolates between the two
// bracketing temperature rows, clamping to the nearest row outside the
// reference range (no extrapolation).
func interpolateOverTemperature(temperaturesK []float64, sigmaByT [][]float64, T float64) []float64 {
	n := len(temperaturesK)
	if n == 1 {
		return sigmaByT[0]
	}
	if T <= temperaturesK[0] {
		return sigmaByT[0]
	}
	if T >= temperaturesK[n-1] {
		return sigmaByT[n-1]
	}
	j := sort.Search(n, func(j int) bool { return temperaturesK[j] >= T })
	lo, hi := j-1, j
	t0, t1 := temperaturesK[lo], temperaturesK[hi]
	if t1 == t0 {
		return sigmaByT[lo]
	}
	frac := (T - t0) / (t1 - t0)
	rowLo, rowHi := sigmaByT[lo], sigmaByT[hi]
	out := make([]float64, len(rowLo))
	for i := range out {
		out[i] = rowLo[i] + frac*(rowHi[i]-rowLo[i])
	}
	return out
}
