package radiator

import (
	"math"

	"github.com/tuvx-go/tuvx/crosssection"
	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/interpolation"
	"github.com/tuvx-go/tuvx/profile"
)

// kmToCm converts a km column thickness into the cm units cross-sections
// and densities are documented in (sec.4.3).
const kmToCm = 1e5

// Radiator is implemented by every concrete radiator variant.
type Radiator interface {
	Name() string
	// UpdateState (re)computes and returns this radiator's optical
	// property state from the supplied grid/profile warehouses.
	UpdateState(grids *grid.Warehouse, profiles *profile.Warehouse) (*State, error)
	// State returns the most recently computed state, or an empty state
	// if UpdateState has not yet been called.
	State() *State
}

// FromCrossSection is a pure-absorber radiator: tau = sigma*n*|dz|,
// omega = g = 0.
type FromCrossSection struct {
	name             string
	crossSection     crosssection.CrossSection
	wavelengthGrid   string
	altitudeGrid     string
	densityProfile   string
	temperatureProfile string
	state            *State
}

// NewFromCrossSection constructs a molecular-absorber radiator. The four
// key strings name entries expected in the grid/profile warehouses at
// UpdateState time: wavelengthGridName ("nm"), altitudeGridName ("km"),
// densityProfileName ("molecules/cm3"), temperatureProfileName ("K").
func NewFromCrossSection(name string, cs crosssection.CrossSection, wavelengthGridName, altitudeGridName, densityProfileName, temperatureProfileName string) *FromCrossSection {
	return &FromCrossSection{
		name:               name,
		crossSection:       cs,
		wavelengthGrid:     wavelengthGridName,
		altitudeGrid:       altitudeGridName,
		densityProfile:     densityProfileName,
		temperatureProfile: temperatureProfileName,
		state:              NewState(0, 0),
	}
}

func (r *FromCrossSection) Name() string { return r.name }
func (r *FromCrossSection) State() *State { return r.state }

func (r *FromCrossSection) UpdateState(grids *grid.Warehouse, profiles *profile.Warehouse) (*State, error) {
	wlGrid, err := grids.GetByName(r.wavelengthGrid, "nm")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.FromCrossSection.UpdateState", "%s: missing wavelength grid %q: %v", r.name, r.wavelengthGrid, err)
	}
	zGrid, err := grids.GetByName(r.altitudeGrid, "km")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.FromCrossSection.UpdateState", "%s: missing altitude grid %q: %v", r.name, r.altitudeGrid, err)
	}
	density, err := profiles.GetByName(r.densityProfile, "molecules/cm3")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.FromCrossSection.UpdateState", "%s: missing density profile %q: %v", r.name, r.densityProfile, err)
	}
	temperature, err := profiles.GetByName(r.temperatureProfile, "K")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.FromCrossSection.UpdateState", "%s: missing temperature profile %q: %v", r.name, r.temperatureProfile, err)
	}

	nLayers := zGrid.NCells()
	if len(density.Midpoints()) != nLayers || len(temperature.Midpoints()) != nLayers {
		return nil, errs.New(errs.InvalidDimension, "radiator.FromCrossSection.UpdateState", "%s: profile sizes disagree with altitude grid (%d layers)", r.name, nLayers)
	}

	sigma, err := r.crossSection.CalculateProfile(wlGrid, temperature.Midpoints())
	if err != nil {
		return nil, err
	}

	nWavelengths := wlGrid.NCells()
	state := NewState(nLayers, nWavelengths)
	deltas := zGrid.Deltas()
	n := density.Midpoints()
	for i := 0; i < nLayers; i++ {
		thicknessCm := math.Abs(deltas[i]) * kmToCm
		for j := 0; j < nWavelengths; j++ {
			state.Tau[i][j] = sigma[i][j] * n[i] * thicknessCm
		}
	}
	r.state = state
	return state, nil
}

// Rayleigh is a pure-scatterer radiator using the standard
// sigma_R = 4.02e-28*(1000/lambda_nm)^4.04 parameterization.
type Rayleigh struct {
	name           string
	wavelengthGrid string
	altitudeGrid   string
	airDensityProfile string
	state          *State
}

// NewRayleigh constructs a Rayleigh-scattering radiator.
func NewRayleigh(name, wavelengthGridName, altitudeGridName, airDensityProfileName string) *Rayleigh {
	return &Rayleigh{
		name:              name,
		wavelengthGrid:    wavelengthGridName,
		altitudeGrid:      altitudeGridName,
		airDensityProfile: airDensityProfileName,
		state:             NewState(0, 0),
	}
}

func (r *Rayleigh) Name() string { return r.name }
func (r *Rayleigh) State() *State { return r.state }

// RayleighCrossSection returns sigma_R(lambda) in cm^2 for lambda in nm.
func RayleighCrossSection(lambdaNm float64) float64 {
	return 4.02e-28 * math.Pow(1000/lambdaNm, 4.04)
}

func (r *Rayleigh) UpdateState(grids *grid.Warehouse, profiles *profile.Warehouse) (*State, error) {
	wlGrid, err := grids.GetByName(r.wavelengthGrid, "nm")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.Rayleigh.UpdateState", "%s: missing wavelength grid %q: %v", r.name, r.wavelengthGrid, err)
	}
	zGrid, err := grids.GetByName(r.altitudeGrid, "km")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.Rayleigh.UpdateState", "%s: missing altitude grid %q: %v", r.name, r.altitudeGrid, err)
	}
	airDensity, err := profiles.GetByName(r.airDensityProfile, "molecules/cm3")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.Rayleigh.UpdateState", "%s: missing air density profile %q: %v", r.name, r.airDensityProfile, err)
	}

	nLayers := zGrid.NCells()
	if len(airDensity.Midpoints()) != nLayers {
		return nil, errs.New(errs.InvalidDimension, "radiator.Rayleigh.UpdateState", "%s: air density profile size disagrees with altitude grid (%d layers)", r.name, nLayers)
	}

	nWavelengths := wlGrid.NCells()
	mid := wlGrid.Midpoints()
	sigma := make([]float64, nWavelengths)
	for j, lambda := range mid {
		sigma[j] = RayleighCrossSection(lambda)
	}

	state := NewState(nLayers, nWavelengths)
	deltas := zGrid.Deltas()
	n := airDensity.Midpoints()
	for i := 0; i < nLayers; i++ {
		thicknessCm := math.Abs(deltas[i]) * kmToCm
		for j := 0; j < nWavelengths; j++ {
			state.Tau[i][j] = sigma[j] * n[i] * thicknessCm
			state.Omega[i][j] = 1
			state.G[i][j] = 0
		}
	}
	r.state = state
	return state, nil
}

// AerosolConfig parameterizes an Angstrom-law aerosol radiator.
type AerosolConfig struct {
	TauRef        float64 // column optical depth at ReferenceWavelengthNm
	ReferenceWavelengthNm float64
	AngstromExponent float64
	ScaleHeightKm float64
	Omega         float64 // used when OmegaSpectrum is nil
	G             float64 // used when GSpectrum is nil
	// OmegaSpectrum / GSpectrum, when non-nil, are sorted (wavelengthNm,
	// value) tables linearly interpolated instead of the scalar Omega/G.
	OmegaSpectrumWavelengthsNm []float64
	OmegaSpectrumValues        []float64
	GSpectrumWavelengthsNm     []float64
	GSpectrumValues            []float64
}

// Aerosol is a scattering-and-absorbing radiator using an exponential
// vertical profile and Angstrom spectral scaling.
type Aerosol struct {
	name           string
	cfg            AerosolConfig
	wavelengthGrid string
	altitudeGrid   string
	state          *State
}

// NewAerosol constructs an aerosol radiator.
func NewAerosol(name string, cfg AerosolConfig, wavelengthGridName, altitudeGridName string) *Aerosol {
	return &Aerosol{name: name, cfg: cfg, wavelengthGrid: wavelengthGridName, altitudeGrid: altitudeGridName, state: NewState(0, 0)}
}

func (a *Aerosol) Name() string { return a.name }
func (a *Aerosol) State() *State { return a.state }

func (a *Aerosol) UpdateState(grids *grid.Warehouse, profiles *profile.Warehouse) (*State, error) {
	wlGrid, err := grids.GetByName(a.wavelengthGrid, "nm")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.Aerosol.UpdateState", "%s: missing wavelength grid %q: %v", a.name, a.wavelengthGrid, err)
	}
	zGrid, err := grids.GetByName(a.altitudeGrid, "km")
	if err != nil {
		return nil, errs.New(errs.MissingEntity, "radiator.Aerosol.UpdateState", "%s: missing altitude grid %q: %v", a.name, a.altitudeGrid, err)
	}

	nLayers := zGrid.NCells()
	nWavelengths := wlGrid.NCells()
	edges := zGrid.Edges()
	mid := wlGrid.Midpoints()

	state := NewState(nLayers, nWavelengths)
	for j, lambda := range mid {
		tauSpec := a.cfg.TauRef * math.Pow(lambda/a.cfg.ReferenceWavelengthNm, -a.cfg.AngstromExponent)
		omega := a.cfg.Omega
		if a.cfg.OmegaSpectrumValues != nil {
			omega = interpAt(a.cfg.OmegaSpectrumWavelengthsNm, a.cfg.OmegaSpectrumValues, lambda)
		}
		g := a.cfg.G
		if a.cfg.GSpectrumValues != nil {
			g = interpAt(a.cfg.GSpectrumWavelengthsNm, a.cfg.GSpectrumValues, lambda)
		}
		for i := 0; i < nLayers; i++ {
			zLo, zHi := edges[i], edges[i+1]
			if zLo > zHi {
				zLo, zHi = zHi, zLo
			}
			w := math.Exp(-zLo/a.cfg.ScaleHeightKm) - math.Exp(-zHi/a.cfg.ScaleHeightKm)
			state.Tau[i][j] = tauSpec * w
			state.Omega[i][j] = omega
			state.G[i][j] = g
		}
	}
	a.state = state
	return state, nil
}

func interpAt(x, y []float64, target float64) float64 {
	out := interpolation.Linear([]float64{target}, x, y)
	return out[0]
}
