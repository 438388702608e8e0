// Package extflux supplies top-of-atmosphere spectral photon flux for the
// solver's F_TOA input, plus irradiance/photon-flux unit conversions. It
// deliberately carries no embedded reference solar spectrum — callers
// supply their own measured or modeled tabular flux.
package extflux

import (
	"math"

	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/interpolation"
)

const (
	planckConstant = 6.62607015e-34 // J*s
	speedOfLight   = 2.99792458e8   // m/s
	boltzmann      = 1.380649e-23   // J/K
)

// Flux is implemented by every concrete extraterrestrial-flux supplier.
type Flux interface {
	// Calculate returns spectral photon flux [photons/cm^2/s/nm] at
	// wavelengthGrid's midpoints, scaled by the Earth-Sun distance
	// factor (r0/r)^2. Zero outside the reference wavelength range.
	Calculate(wavelengthGrid *grid.Grid, earthSunDistanceFactor float64) ([]float64, error)
}

// Tabular holds a reference wavelength/flux table at 1 AU and
// linearly interpolates it onto a target grid.
type Tabular struct {
	wavelengthsNm []float64
	fluxAt1AU     []float64
}

// NewTabular constructs a Tabular flux supplier.
func NewTabular(wavelengthsNm, fluxAt1AU []float64) (*Tabular, error) {
	if len(wavelengthsNm) != len(fluxAt1AU) {
		return nil, errs.New(errs.InvalidDimension, "extflux.NewTabular", "%d wavelengths, %d flux values", len(wavelengthsNm), len(fluxAt1AU))
	}
	if len(wavelengthsNm) < 2 {
		return nil, errs.New(errs.InvalidDimension, "extflux.NewTabular", "need at least 2 reference points, got %d", len(wavelengthsNm))
	}
	return &Tabular{wavelengthsNm: wavelengthsNm, fluxAt1AU: fluxAt1AU}, nil
}

// Calculate implements Flux.
func (f *Tabular) Calculate(wavelengthGrid *grid.Grid, earthSunDistanceFactor float64) ([]float64, error) {
	target := wavelengthGrid.Midpoints()
	result := interpolation.Linear(target, f.wavelengthsNm, f.fluxAt1AU)
	wlMin, wlMax := f.wavelengthsNm[0], f.wavelengthsNm[len(f.wavelengthsNm)-1]
	for i, wl := range target {
		if wl < wlMin || wl > wlMax {
			result[i] = 0
			continue
		}
		result[i] *= earthSunDistanceFactor
	}
	return result, nil
}

// CalculateIntegrated returns per-cell integrated flux [photons/cm^2/s],
// i.e. spectral flux times cell width.
func CalculateIntegrated(f Flux, wavelengthGrid *grid.Grid, earthSunDistanceFactor float64) ([]float64, error) {
	spectral, err := f.Calculate(wavelengthGrid, earthSunDistanceFactor)
	if err != nil {
		return nil, err
	}
	deltas := wavelengthGrid.Deltas()
	out := make([]float64, len(spectral))
	for i := range spectral {
		out[i] = spectral[i] * math.Abs(deltas[i])
	}
	return out, nil
}

// IrradianceToPhotonFlux converts spectral irradiance [W/m^2/nm] at a given
// wavelength [nm] to photon flux [photons/cm^2/s/nm].
func IrradianceToPhotonFlux(irradiance, wavelengthNm float64) float64 {
	wavelengthM := wavelengthNm * 1e-9
	photonsPerJoule := wavelengthM / (planckConstant * speedOfLight)
	return irradiance * 1e-4 * photonsPerJoule
}

// PhotonFluxToIrradiance converts photon flux [photons/cm^2/s/nm] at a
// given wavelength [nm] to spectral irradiance [W/m^2/nm].
func PhotonFluxToIrradiance(photonFlux, wavelengthNm float64) float64 {
	wavelengthM := wavelengthNm * 1e-9
	energyPerPhoton := planckConstant * speedOfLight / wavelengthM
	return photonFlux * energyPerPhoton * 1e4
}

// BlackbodySolarFlux generates an approximate Planck-function solar photon
// flux [photons/cm^2/s/nm] at the given wavelengths, useful as a stand-in
// spectrum when no measured table is available.
func BlackbodySolarFlux(wavelengthsNm []float64, temperatureK float64) []float64 {
	const solarRadiusM = 6.96e8
	const earthSunDistanceM = 1.496e11
	solidAngleFactor := math.Pow(solarRadiusM/earthSunDistanceM, 2)

	flux := make([]float64, len(wavelengthsNm))
	for i, wl := range wavelengthsNm {
		wavelengthM := wl * 1e-9
		x := planckConstant * speedOfLight / (wavelengthM * boltzmann * temperatureK)
		var planck float64
		if x <= 700 {
			planck = (2 * planckConstant * speedOfLight * speedOfLight) / (math.Pow(wavelengthM, 5) * (math.Exp(x) - 1))
		}
		irradiance := planck * math.Pi * solidAngleFactor
		irradiance *= 1e-9 // W/m^2/m -> W/m^2/nm
		flux[i] = IrradianceToPhotonFlux(irradiance, wl)
	}
	return flux
}
