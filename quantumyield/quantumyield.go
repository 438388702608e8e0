// Package quantumyield implements the polymorphic wavelength-, temperature-
// and air-density-dependent quantum yield abstraction consumed by
// photolysis rate calculations.
package quantumyield

import (
	"sort"

	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/interpolation"
)

// QuantumYield is implemented by every concrete quantum-yield variant. Every
// variant accepts the air-density argument uniformly, even those (constant,
// complementary) that ignore it, so calculate() has one signature across
// the whole capability set.
type QuantumYield interface {
	Name() string
	// Calculate returns phi(lambda) in [0,1], sized to wavelengthGrid's
	// cell count, at temperature T [K] and air density nAir
	// [molecules/cm^3].
	Calculate(wavelengthGrid *grid.Grid, temperatureK, nAir float64) ([]float64, error)
	// CalculateProfile loops Calculate over every layer.
	CalculateProfile(wavelengthGrid *grid.Grid, temperatureProfileK, nAirProfile []float64) ([][]float64, error)
}

type base struct {
	name string
	calc func(wavelengthGrid *grid.Grid, temperatureK, nAir float64) ([]float64, error)
}

func (b base) Name() string { return b.name }

func (b base) CalculateProfile(wavelengthGrid *grid.Grid, temperatureProfileK, nAirProfile []float64) ([][]float64, error) {
	if len(temperatureProfileK) != len(nAirProfile) {
		return nil, errs.New(errs.InvalidDimension, "quantumyield.CalculateProfile", "%d temperatures, %d air densities", len(temperatureProfileK), len(nAirProfile))
	}
	result := make([][]float64, len(temperatureProfileK))
	for i := range temperatureProfileK {
		phi, err := b.calc(wavelengthGrid, temperatureProfileK[i], nAirProfile[i])
		if err != nil {
			return nil, err
		}
		result[i] = phi
	}
	return result, nil
}

// Constant returns the same scalar value everywhere, ignoring T and n_air.
type Constant struct {
	base
	value float64
}

// NewConstant constructs a constant quantum yield clamped to [0,1].
func NewConstant(name string, value float64) *Constant {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	c := &Constant{value: value}
	c.base = base{name: name, calc: c.Calculate}
	return c
}

func (c *Constant) Calculate(wavelengthGrid *grid.Grid, _, _ float64) ([]float64, error) {
	out := make([]float64, wavelengthGrid.NCells())
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

// Tabular holds phi at a sorted wavelength array and (optionally) a sorted
// temperature array, the same shape as crosssection.Tabular. It linearly
// interpolates in lambda (and T, if present) and clamps the result to
// [0,1]; zero is returned outside the reference wavelength range.
type Tabular struct {
	base
	wavelengthsNm []float64
	temperaturesK []float64
	phiFlat       []float64
	phiByT        [][]float64
}

// NewTabular constructs a temperature-independent tabular quantum yield.
func NewTabular(name string, wavelengthsNm, phi []float64) (*Tabular, error) {
	if len(wavelengthsNm) != len(phi) {
		return nil, errs.New(errs.InvalidDimension, "quantumyield.NewTabular", "%s: %d wavelengths, %d phi values", name, len(wavelengthsNm), len(phi))
	}
	t := &Tabular{wavelengthsNm: wavelengthsNm, phiFlat: phi}
	t.base = base{name: name, calc: t.Calculate}
	return t, nil
}

// NewTabularWithTemperature constructs a temperature-bracketed tabular
// quantum yield.
func NewTabularWithTemperature(name string, wavelengthsNm, temperaturesK []float64, phi [][]float64) (*Tabular, error) {
	if len(temperaturesK) != len(phi) {
		return nil, errs.New(errs.InvalidDimension, "quantumyield.NewTabularWithTemperature", "%s: %d temperatures, %d phi rows", name, len(temperaturesK), len(phi))
	}
	t := &Tabular{wavelengthsNm: wavelengthsNm, temperaturesK: temperaturesK, phiByT: phi}
	t.base = base{name: name, calc: t.Calculate}
	return t, nil
}

func (t *Tabular) Calculate(wavelengthGrid *grid.Grid, temperatureK, _ float64) ([]float64, error) {
	refPhi := t.phiFlat
	if t.phiByT != nil {
		refPhi = interpolateOverTemperature(t.temperaturesK, t.phiByT, temperatureK)
	}
	target := wavelengthGrid.Midpoints()
	result := interpolation.Linear(target, t.wavelengthsNm, refPhi)
	wlMin, wlMax := t.wavelengthsNm[0], t.wavelengthsNm[len(t.wavelengthsNm)-1]
	for i, wl := range target {
		if wl < wlMin || wl > wlMax {
			result[i] = 0
			continue
		}
		if result[i] < 0 {
			result[i] = 0
		}
		if result[i] > 1 {
			result[i] = 1
		}
	}
	return result, nil
}

func interpolateOverTemperature(temperaturesK []float64, phiByT [][]float64, T float64) []float64 {
	n := len(temperaturesK)
	if n == 1 {
		return phiByT[0]
	}
	if T <= temperaturesK[0] {
		return phiByT[0]
	}
	if T >= temperaturesK[n-1] {
		return phiByT[n-1]
	}
	j := sort.Search(n, func(j int) bool { return temperaturesK[j] >= T })
	lo, hi := j-1, j
	t0, t1 := temperaturesK[lo], temperaturesK[hi]
	if t1 == t0 {
		return phiByT[lo]
	}
	frac := (T - t0) / (t1 - t0)
	rowLo, rowHi := phiByT[lo], phiByT[hi]
	out := make([]float64, len(rowLo))
	for i := range out {
		out[i] = rowLo[i] + frac*(rowHi[i]-rowLo[i])
	}
	return out
}

// Complementary returns 1-phi of a wrapped base yield, element-wise — e.g.
// the O(3P) channel complementing an O(1D) yield.
type Complementary struct {
	base
	of QuantumYield
}

// NewComplementary wraps of, computing 1-phi at calculate time.
func NewComplementary(name string, of QuantumYield) *Complementary {
	c := &Complementary{of: of}
	c.base = base{name: name, calc: c.Calculate}
	return c
}

func (c *Complementary) Calculate(wavelengthGrid *grid.Grid, temperatureK, nAir float64) ([]float64, error) {
	phi, err := c.of.Calculate(wavelengthGrid, temperatureK, nAir)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(phi))
	for i, v := range phi {
		out[i] = 1 - v
	}
	return out, nil
}
