package model

import (
	"fmt"

	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/photolysis"
	"github.com/tuvx-go/tuvx/radiationfield"
)

// Output carries the result of one Calculate call: the solar geometry
// used, the grids, the computed radiation field, and per-reaction
// photolysis rate profiles.
type Output struct {
	SolarZenithAngleDeg    float64
	DayOfYear              int
	EarthSunDistanceFactor float64
	Daytime                bool

	WavelengthGrid *grid.Grid
	AltitudeGrid   *grid.Grid

	Field       *radiationfield.Field
	Photolysis  []*photolysis.Result
}

// ActinicFlux returns direct+diffuse actinic flux at the given level.
func (o *Output) ActinicFlux(level int) []float64 {
	return o.Field.TotalActinicFlux(level)
}

// Irradiance returns direct, diffuse-down and diffuse-up irradiance at the
// given level.
func (o *Output) Irradiance(level int) (direct, diffuseDown, diffuseUp []float64) {
	n := o.Field.NWavelengths
	direct = make([]float64, n)
	diffuseDown = make([]float64, n)
	diffuseUp = make([]float64, n)
	for j := 0; j < n; j++ {
		direct[j] = o.Field.DirectIrradiance[level][j]
		diffuseDown[j] = o.Field.DiffuseDown[level][j]
		diffuseUp[j] = o.Field.DiffuseUp[level][j]
	}
	return
}

// J returns the rate coefficient profile for the named reaction, or nil if
// no reaction by that name was computed.
func (o *Output) J(reactionName string) []float64 {
	for _, r := range o.Photolysis {
		if r.Name == reactionName {
			return r.J
		}
	}
	return nil
}

// JAt returns J(level) for the named reaction, or NaN-free zero if the
// reaction or level is absent.
func (o *Output) JAt(reactionName string, level int) float64 {
	j := o.J(reactionName)
	if j == nil || level < 0 || level >= len(j) {
		return 0
	}
	return j[level]
}

// BandIntegratedActinicFlux integrates ActinicFlux(level) over
// [lambdaMinNm, lambdaMaxNm] using cell-width weights.
func (o *Output) BandIntegratedActinicFlux(level int, lambdaMinNm, lambdaMaxNm float64) float64 {
	flux := o.ActinicFlux(level)
	mid := o.WavelengthGrid.Midpoints()
	deltas := o.WavelengthGrid.Deltas()
	var total float64
	for j, wl := range mid {
		if wl < lambdaMinNm || wl > lambdaMaxNm {
			continue
		}
		d := deltas[j]
		if d < 0 {
			d = -d
		}
		total += flux[j] * d
	}
	return total
}

// UVBActinicFlux is a convenience for BandIntegratedActinicFlux over the
// UV-B band (280-315 nm).
func (o *Output) UVBActinicFlux(level int) float64 {
	return o.BandIntegratedActinicFlux(level, 280, 315)
}

// UVAActinicFlux is a convenience for BandIntegratedActinicFlux over the
// UV-A band (315-400 nm).
func (o *Output) UVAActinicFlux(level int) float64 {
	return o.BandIntegratedActinicFlux(level, 315, 400)
}

// MaxRate returns the largest surface-level J among every registered
// reaction and its name, or ("", 0) if none were computed.
func (o *Output) MaxRate() (name string, rate float64) {
	for _, r := range o.Photolysis {
		if len(r.J) == 0 {
			continue
		}
		if r.J[0] > rate {
			rate = r.J[0]
			name = r.Name
		}
	}
	return
}

// Summary returns a short human-readable description of this run.
func (o *Output) Summary() string {
	name, rate := o.MaxRate()
	return fmt.Sprintf("sza=%.2fdeg doy=%d d_factor=%.4f daytime=%v reactions=%d max_rate=%s(%.3e s^-1)",
		o.SolarZenithAngleDeg, o.DayOfYear, o.EarthSunDistanceFactor, o.Daytime, len(o.Photolysis), name, rate)
}
