package model

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/extflux"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/photolysis"
	"github.com/tuvx-go/tuvx/profile"
	"github.com/tuvx-go/tuvx/radiationfield"
	"github.com/tuvx-go/tuvx/radiator"
	"github.com/tuvx-go/tuvx/solar"
	"github.com/tuvx-go/tuvx/solver"
	"github.com/tuvx-go/tuvx/sphericalgeometry"
	"github.com/tuvx-go/tuvx/stdatmos"
	"github.com/tuvx-go/tuvx/surfacealbedo"
)

const (
	wavelengthGridName = "wavelength"
	altitudeGridName   = "altitude"
	temperatureName    = "temperature"
	pressureName       = "pressure"
	airDensityName     = "air_density"
	ozoneName          = "ozone"

	wavelengthBatchSize = 16
)

// Model is the thin orchestrator of sec.4.10: it owns the grid/profile
// warehouses, a radiator collection, a photolysis reaction set, and a
// solver, and assembles one Output per Calculate call.
type Model struct {
	cfg *Config
	log *logrus.Entry

	grids     *grid.Warehouse
	profiles  *profile.Warehouse
	radiators *radiator.Warehouse
	photo     *photolysis.Calculator
	solve     solver.Solver

	extraterrestrialFlux extflux.Flux
}

// New constructs a Model from cfg: it builds the wavelength and altitude
// grids, fills temperature/pressure/air-density profiles (explicit values
// take priority; otherwise, if cfg.UseStandardAtmosphere, stdatmos fills
// them), and leaves radiator/reaction/extraterrestrial-flux registration
// to the caller. log may be nil, in which case a discarding entry is used.
func New(cfg *Config, log *logrus.Entry) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(discardWriter{})
		log = logrus.NewEntry(l)
	}

	m := &Model{
		cfg:       cfg,
		log:       log,
		grids:     grid.NewWarehouse(),
		profiles:  profile.NewWarehouse(),
		radiators: radiator.NewWarehouse(),
		photo:     photolysis.NewCalculator(),
		solve:     solver.New(),
	}

	wlGrid, err := m.buildWavelengthGrid()
	if err != nil {
		return nil, err
	}
	if _, err := m.grids.Add(wlGrid); err != nil {
		return nil, err
	}

	zGrid, err := m.buildAltitudeGrid()
	if err != nil {
		return nil, err
	}
	if _, err := m.grids.Add(zGrid); err != nil {
		return nil, err
	}

	if err := m.fillAtmosphereProfiles(zGrid); err != nil {
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"n_wavelengths": wlGrid.NCells(),
		"n_layers":      zGrid.NCells(),
	}).Debug("model initialised")
	return m, nil
}

func (m *Model) buildWavelengthGrid() (*grid.Grid, error) {
	if len(m.cfg.WavelengthEdges) > 0 {
		return grid.New(wavelengthGridName, "nm", m.cfg.WavelengthEdges)
	}
	return grid.EquallySpaced(wavelengthGridName, "nm", m.cfg.WavelengthMinNm, m.cfg.WavelengthMaxNm, m.cfg.NWavelengthBins)
}

func (m *Model) buildAltitudeGrid() (*grid.Grid, error) {
	if len(m.cfg.AltitudeEdges) > 0 {
		return grid.New(altitudeGridName, "km", m.cfg.AltitudeEdges)
	}
	return grid.EquallySpaced(altitudeGridName, "km", m.cfg.AltitudeMinKm, m.cfg.AltitudeMaxKm, m.cfg.NAltitudeLayers)
}

func (m *Model) fillAtmosphereProfiles(zGrid *grid.Grid) error {
	mid := zGrid.Midpoints()
	temps := m.cfg.TemperatureProfileK
	pressures := m.cfg.PressureProfileHPa
	densities := m.cfg.AirDensityProfileCm3
	if m.cfg.UseStandardAtmosphere {
		if temps == nil {
			temps = stdatmos.TemperatureProfile(mid)
		}
		if pressures == nil {
			pressures = stdatmos.PressureProfile(mid)
		}
		if densities == nil {
			densities = stdatmos.AirDensityProfile(mid)
		}
	}
	if temps != nil {
		p, err := profile.New(temperatureName, "K", zGrid, temps, 0)
		if err != nil {
			return err
		}
		if _, err := m.profiles.Add(p); err != nil {
			return err
		}
	}
	if pressures != nil {
		p, err := profile.New(pressureName, "hPa", zGrid, pressures, 0)
		if err != nil {
			return err
		}
		if _, err := m.profiles.Add(p); err != nil {
			return err
		}
	}
	if densities != nil {
		p, err := profile.New(airDensityName, "molecules/cm3", zGrid, densities, 0)
		if err != nil {
			return err
		}
		if _, err := m.profiles.Add(p); err != nil {
			return err
		}
	}
	if m.cfg.OzoneProfileCm3 != nil {
		p, err := profile.New(ozoneName, "molecules/cm3", zGrid, m.cfg.OzoneProfileCm3, 0)
		if err != nil {
			return err
		}
		if _, err := m.profiles.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// RegisterRadiator adds r to the model's radiator collection.
func (m *Model) RegisterRadiator(r radiator.Radiator) error {
	_, err := m.radiators.Add(r)
	return err
}

// RegisterReaction adds a photolysis reaction.
func (m *Model) RegisterReaction(r photolysis.Reaction) error {
	return m.photo.Register(r)
}

// SetExtraterrestrialFlux sets the top-of-atmosphere flux supplier used by
// Calculate.
func (m *Model) SetExtraterrestrialFlux(f extflux.Flux) {
	m.extraterrestrialFlux = f
}

// Grids exposes the grid warehouse for callers building custom radiators.
func (m *Model) Grids() *grid.Warehouse { return m.grids }

// Profiles exposes the profile warehouse for callers building custom
// radiators.
func (m *Model) Profiles() *profile.Warehouse { return m.profiles }

// Calculate runs one solve at the configured solar zenith angle.
func (m *Model) Calculate() (*Output, error) {
	return m.CalculateContext(context.Background())
}

// CalculateContext is Calculate with cancellation support: it checks
// ctx.Err() once, before the wavelength batches are launched, and returns
// an error if the context is already cancelled. Batches that have been
// launched run to completion.
func (m *Model) CalculateContext(ctx context.Context) (*Output, error) {
	wlGrid, err := m.grids.GetByName(wavelengthGridName, "nm")
	if err != nil {
		return nil, err
	}
	zGrid, err := m.grids.GetByName(altitudeGridName, "km")
	if err != nil {
		return nil, err
	}

	combined, err := m.radiators.UpdateAndCombine(m.grids, m.profiles)
	if err != nil {
		return nil, err
	}

	doy := m.cfg.DayOfYear
	distanceFactor := m.cfg.EarthSunDistanceFactor
	if distanceFactor <= 0 {
		if doy <= 0 {
			doy = 80
		}
		distanceFactor = solar.EarthSunDistanceFactor(doy)
	}

	var toa []float64
	if m.extraterrestrialFlux != nil {
		toa, err = m.extraterrestrialFlux.Calculate(wlGrid, distanceFactor)
		if err != nil {
			return nil, err
		}
	} else {
		toa = make([]float64, wlGrid.NCells())
	}

	var albedo []float64
	if m.cfg.SurfaceAlbedoValues != nil {
		sa, err := surfacealbedo.NewSpectral(m.cfg.SurfaceAlbedoWavelengthsNm, m.cfg.SurfaceAlbedoValues)
		if err != nil {
			return nil, err
		}
		albedo = sa.Calculate(wlGrid)
	} else {
		albedo = surfacealbedo.NewConstant(m.cfg.SurfaceAlbedo).Calculate(wlGrid)
	}

	var slantEnhancement []float64
	if m.cfg.UseSphericalGeometry && !combined.Empty() {
		geo := sphericalgeometry.New(m.cfg.earthRadiusOrDefault())
		result := geo.Calculate(zGrid, m.cfg.SolarZenithAngleDeg)
		slantEnhancement = result.EnhancementFactor
	}

	in := &solver.Input{
		State:                combined,
		SolarZenithAngleDeg:  m.cfg.SolarZenithAngleDeg,
		ExtraterrestrialFlux: toa,
		SurfaceAlbedo:        albedo,
		SlantEnhancement:     slantEnhancement,
	}

	field, err := m.solveConcurrently(ctx, in)
	if err != nil {
		return nil, err
	}

	var temps, airDensities []float64
	if p, err := m.profiles.GetByName(temperatureName, "K"); err == nil {
		temps = p.Midpoints()
	}
	if p, err := m.profiles.GetByName(airDensityName, "molecules/cm3"); err == nil {
		airDensities = p.Midpoints()
	}
	results, err := m.photo.Calculate(wlGrid, field, temps, airDensities)
	if err != nil {
		return nil, err
	}

	out := &Output{
		SolarZenithAngleDeg:    m.cfg.SolarZenithAngleDeg,
		DayOfYear:              doy,
		EarthSunDistanceFactor: distanceFactor,
		Daytime:                m.cfg.SolarZenithAngleDeg < 90,
		WavelengthGrid:         wlGrid,
		AltitudeGrid:           zGrid,
		Field:                  field,
		Photolysis:             results,
	}

	m.log.WithFields(logrus.Fields{
		"sza":      m.cfg.SolarZenithAngleDeg,
		"daytime":  out.Daytime,
		"reactions": len(results),
	}).Debug("calculate complete")

	return out, nil
}

// CalculateAt is the (date, location) convenience overload of sec.4.10: it
// derives the solar zenith angle, day of year, and Earth-Sun distance
// factor from the calendar date/hour and cfg.LatitudeDeg/LongitudeDeg, then
// runs Calculate.
func (m *Model) CalculateAt(year, month, day int, hourUTC float64) (*Output, error) {
	pos := solar.Calculate(year, month, day, hourUTC, m.cfg.LatitudeDeg, m.cfg.LongitudeDeg)
	m.cfg.SolarZenithAngleDeg = pos.ZenithAngleDeg
	m.cfg.DayOfYear = solar.DayOfYear(year, month, day)
	m.cfg.EarthSunDistanceFactor = solar.EarthSunDistanceFactor(m.cfg.DayOfYear)
	return m.Calculate()
}

// solveConcurrently partitions the solver's per-wavelength work into
// batches of wavelengthBatchSize and runs every batch in its own goroutine
// via errgroup, after a single ctx.Err() check made before any batch is
// launched.
// Batches write disjoint wavelength columns of field, so no further
// synchronisation is required to keep level-wise accumulation
// bit-reproducible (sec.5).
func (m *Model) solveConcurrently(ctx context.Context, in *solver.Input) (*radiationfield.Field, error) {
	de, ok := m.solve.(*solver.DeltaEddington)
	if !ok {
		return m.solve.Solve(in)
	}
	field, mu0, enhancement, ready, err := de.Prepare(in)
	if err != nil || !ready {
		return field, err
	}

	nWavelengths := in.State.NWavelengths
	var batches [][]int
	for start := 0; start < nWavelengths; start += wavelengthBatchSize {
		end := start + wavelengthBatchSize
		if end > nWavelengths {
			end = nWavelengths
		}
		batch := make([]int, end-start)
		for i := range batch {
			batch[i] = start + i
		}
		batches = append(batches, batch)
	}

	if err := ctx.Err(); err != nil {
		return field, errs.New(errs.InternalInvariant, "model.Model.CalculateContext", "cancelled before solving: %v", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			de.SolveWavelengths(in, field, mu0, enhancement, batch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return field, err
	}
	return field, nil
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
