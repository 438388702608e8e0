// Package model ties grids, profiles, radiators, the solver and
// photolysis integration together into a thin orchestrator, per sec.4.10.
package model

import (
	"github.com/tuvx-go/tuvx/errs"
)

// Config captures every option the orchestrator honours. It is the
// language-neutral option table of sec.6 expressed as a Go struct; a zero
// Config is not usable on its own — WavelengthEdges/AltitudeEdges (or
// their Min/Max/NBins equivalents) must be set.
type Config struct {
	// Wavelength grid, nm. Either supply WavelengthEdges directly, or
	// WavelengthMinNm/WavelengthMaxNm/NWavelengthBins for an
	// equally-spaced grid.
	WavelengthEdges   []float64
	WavelengthMinNm   float64
	WavelengthMaxNm   float64
	NWavelengthBins   int

	// Altitude grid, km. Either supply AltitudeEdges directly, or
	// AltitudeMinKm/AltitudeMaxKm/NAltitudeLayers for an equally-spaced
	// grid.
	AltitudeEdges    []float64
	AltitudeMinKm    float64
	AltitudeMaxKm    float64
	NAltitudeLayers  int

	SolarZenithAngleDeg float64

	// DayOfYear and EarthSunDistanceFactor: if EarthSunDistanceFactor <=
	// 0, it is computed from DayOfYear via solar.EarthSunDistanceFactor.
	DayOfYear              int
	EarthSunDistanceFactor float64

	// SurfaceAlbedo is used when SurfaceAlbedoWavelengthsNm is nil;
	// otherwise the spectral table is used.
	SurfaceAlbedo               float64
	SurfaceAlbedoWavelengthsNm  []float64
	SurfaceAlbedoValues         []float64

	// Optional explicit profiles, indexed by altitude layer. When nil,
	// UseStandardAtmosphere (if true) fills Temperature/Pressure/AirDensity
	// from stdatmos; OzoneProfileCm3 has no standard-atmosphere fallback.
	// When supplied it is stored as the "ozone" profile; no ozone radiator
	// is registered from Config in either case.
	TemperatureProfileK        []float64
	PressureProfileHPa         []float64
	AirDensityProfileCm3       []float64
	OzoneProfileCm3            []float64
	UseStandardAtmosphere      bool

	UseSphericalGeometry bool
	EarthRadiusKm        float64

	// Geographic location for the (date,location) Calculate overload.
	LatitudeDeg      float64
	LongitudeDeg     float64
	SurfaceAltitudeKm float64
}

// Validate checks that the grid-defining options are internally
// consistent and within documented bounds.
func (c *Config) Validate() error {
	if len(c.WavelengthEdges) == 0 && c.NWavelengthBins <= 0 {
		return errs.New(errs.InvalidDimension, "model.Config.Validate", "need WavelengthEdges or NWavelengthBins")
	}
	if len(c.AltitudeEdges) == 0 && c.NAltitudeLayers <= 0 {
		return errs.New(errs.InvalidDimension, "model.Config.Validate", "need AltitudeEdges or NAltitudeLayers")
	}
	if c.SolarZenithAngleDeg < 0 || c.SolarZenithAngleDeg > 180 {
		return errs.New(errs.InvalidBounds, "model.Config.Validate", "solar zenith angle %g outside [0,180]", c.SolarZenithAngleDeg)
	}
	if c.SurfaceAlbedo < 0 || c.SurfaceAlbedo > 1 {
		return errs.New(errs.InvalidBounds, "model.Config.Validate", "surface albedo %g outside [0,1]", c.SurfaceAlbedo)
	}
	if c.EarthRadiusKm < 0 {
		return errs.New(errs.InvalidBounds, "model.Config.Validate", "earth radius %g must be >= 0", c.EarthRadiusKm)
	}
	return nil
}

// earthRadiusOrDefault returns EarthRadiusKm, or the mean Earth radius if
// unset.
func (c *Config) earthRadiusOrDefault() float64 {
	if c.EarthRadiusKm > 0 {
		return c.EarthRadiusKm
	}
	return 6371.0
}
