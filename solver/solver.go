// Package solver implements the delta-Eddington two-stream radiative
// transfer solve: per-wavelength delta-M scaling, Beer-Lambert direct
// beam, Eddington-coefficient diffuse reflectance/transmittance, and the
// simplified single-scattering surface-coupling algorithm.
package solver

import (
	"math"

	"github.com/tuvx-go/tuvx/radiationfield"
	"github.com/tuvx-go/tuvx/radiator"
)

const (
	degenerateTauThreshold   = 1e-10
	degenerateOmegaThreshold = 1e-10
	denomFloor               = 1e-30
)

// Input collects everything a Solver needs for one Solve call.
type Input struct {
	State               *radiator.State
	SolarZenithAngleDeg  float64
	ExtraterrestrialFlux []float64 // F_TOA[n_wavelengths], photons/cm^2/s/nm
	SurfaceAlbedo        []float64 // alpha_surf[n_wavelengths]
	// SlantEnhancement, if non-nil, overrides the default 1/mu0 per-layer
	// enhancement with the spherical-geometry result.
	SlantEnhancement []float64
}

// Mu0 returns cos(chi), the cosine of the solar zenith angle.
func (in *Input) Mu0() float64 {
	return math.Cos(in.SolarZenithAngleDeg * math.Pi / 180)
}

// Solver is implemented by every concrete radiative-transfer solver.
type Solver interface {
	Name() string
	// CanHandle reports whether this solver supports the given solar
	// zenith angle (default: sza < 90).
	CanHandle(solarZenithAngleDeg float64) bool
	Solve(in *Input) (*radiationfield.Field, error)
}

// DeltaEddington is the delta-Eddington two-stream solver of sec.4.8.
type DeltaEddington struct{}

// New returns a DeltaEddington solver.
func New() *DeltaEddington { return &DeltaEddington{} }

func (s *DeltaEddington) Name() string { return "delta_eddington" }

func (s *DeltaEddington) CanHandle(solarZenithAngleDeg float64) bool {
	return solarZenithAngleDeg < 90
}

// Solve runs the full two-stream calculation. Night (mu0 <= 0) returns a
// zero-initialised field. Empty optical-property input returns an empty
// field rather than solving.
func (s *DeltaEddington) Solve(in *Input) (*radiationfield.Field, error) {
	field, mu0, enhancement, ready, err := s.prepare(in)
	if err != nil || !ready {
		return field, err
	}
	nWavelengths := in.State.NWavelengths
	all := make([]int, nWavelengths)
	for j := range all {
		all[j] = j
	}
	s.SolveWavelengths(in, field, mu0, enhancement, all)
	return field, nil
}

// prepare validates in.State and returns a zero-initialised output field
// plus the per-layer slant enhancement, ready=false meaning the caller
// should return field as-is (empty state or night) without calling
// SolveWavelengths.
func (s *DeltaEddington) prepare(in *Input) (field *radiationfield.Field, mu0 float64, enhancement []float64, ready bool, err error) {
	if in.State.Empty() {
		return radiationfield.New(0, 0), 0, nil, false, nil
	}
	nLayers := in.State.NLayers
	nWavelengths := in.State.NWavelengths
	nLevels := nLayers + 1
	field = radiationfield.New(nLevels, nWavelengths)

	mu0 = in.Mu0()
	if mu0 <= 0 {
		return field, mu0, nil, false, nil
	}

	enhancement = in.SlantEnhancement
	if enhancement == nil {
		e := 1 / mu0
		enhancement = make([]float64, nLayers)
		for i := range enhancement {
			enhancement[i] = e
		}
	}
	return field, mu0, enhancement, true, nil
}

// SolveWavelengths solves only the given wavelength indices into field,
// leaving every other column untouched. Each index writes a disjoint set
// of columns across field's five arrays, so callers may invoke this
// concurrently over disjoint index subsets without additional
// synchronisation (sec.5's wavelength-partition parallelism).
func (s *DeltaEddington) SolveWavelengths(in *Input, field *radiationfield.Field, mu0 float64, enhancement []float64, indices []int) {
	nLayers := in.State.NLayers
	for _, j := range indices {
		solveWavelength(in, field, j, nLayers, mu0, enhancement)
	}
}

// Prepare exposes prepare for callers (e.g. the model orchestrator) that
// need to partition SolveWavelengths calls across goroutines themselves.
func (s *DeltaEddington) Prepare(in *Input) (field *radiationfield.Field, mu0 float64, enhancement []float64, ready bool, err error) {
	return s.prepare(in)
}

func solveWavelength(in *Input, field *radiationfield.Field, j, nLayers int, mu0 float64, enhancement []float64) {
	tauTilde := make([]float64, nLayers)
	omegaTilde := make([]float64, nLayers)
	gTilde := make([]float64, nLayers)
	for i := 0; i < nLayers; i++ {
		tau := in.State.Tau[i][j]
		omega := in.State.Omega[i][j]
		g := in.State.G[i][j]
		f := g * g
		denomOmegaF := 1 - omega*f
		tt := tau * denomOmegaF
		var ot, gt float64
		if denomOmegaF != 0 {
			ot = omega * (1 - f) / denomOmegaF
		}
		if ot < 0 {
			ot = 0
		}
		if ot > 1 {
			ot = 1
		}
		if 1-f != 0 {
			gt = (g - f) / (1 - f)
		}
		if gt < -1 {
			gt = -1
		}
		if gt > 1 {
			gt = 1
		}
		tauTilde[i] = tt
		omegaTilde[i] = ot
		gTilde[i] = gt
	}

	// direct beam: cumulative slant optical depth from TOA downward
	tauCumulative := make([]float64, nLayers+1)
	tauCumulative[nLayers] = 0
	for i := nLayers - 1; i >= 0; i-- {
		tauCumulative[i] = tauCumulative[i+1] + tauTilde[i]*enhancement[i]
	}
	eDir := make([]float64, nLayers+1)
	eDir[nLayers] = in.ExtraterrestrialFlux[j] * mu0
	for lvl := nLayers - 1; lvl >= 0; lvl-- {
		eDir[lvl] = eDir[nLayers] * math.Exp(-tauCumulative[lvl]+tauCumulative[nLayers])
	}
	for lvl := 0; lvl <= nLayers; lvl++ {
		field.DirectIrradiance[lvl][j] = eDir[lvl]
		field.ActinicFluxDirect[lvl][j] = eDir[lvl] / mu0
	}

	r := make([]float64, nLayers)
	tr := make([]float64, nLayers)
	for i := 0; i < nLayers; i++ {
		tt, ot, gt := tauTilde[i], omegaTilde[i], gTilde[i]
		if tt <= degenerateTauThreshold || ot <= degenerateOmegaThreshold {
			r[i] = 0
			tr[i] = math.Exp(-tt / mu0)
			continue
		}
		gamma1 := (7 - ot*(4+3*gt)) / 4
		gamma2 := -(1 - ot*(4-3*gt)) / 4
		lambda := math.Sqrt(math.Max(gamma1*gamma1-gamma2*gamma2, 0))
		capGamma := gamma2 / (gamma1 + lambda)
		eMinus := math.Exp(-lambda * tt)
		denom := 1 - capGamma*capGamma*eMinus*eMinus
		if denom < denomFloor {
			denom = denomFloor
		}
		r[i] = capGamma * (1 - eMinus*eMinus) / denom
		tr[i] = (1 - capGamma*capGamma) * eMinus / denom
	}

	diffuseUp := make([]float64, nLayers+1)
	diffuseDown := make([]float64, nLayers+1)
	alpha := in.SurfaceAlbedo[j]

	diffuseUp[0] = alpha * eDir[0]
	for i := 0; i < nLayers; i++ {
		diffuseUp[i+1] = tr[i]*diffuseUp[i] + r[i]*diffuseDown[i+1]
	}
	for i := 0; i < nLayers; i++ {
		gt := gTilde[i]
		ot := omegaTilde[i]
		tt := tauTilde[i]
		directAvg := 0.5 * (eDir[i] + eDir[i+1]) / mu0
		scatterSource := ot * directAvg * tt
		diffuseDown[i] += 0.5 * scatterSource * (1 - gt)
		diffuseUp[i+1] += 0.5 * scatterSource * (1 + gt)
	}
	diffuseUp[0] = alpha * (eDir[0]/mu0 + diffuseDown[0])

	for lvl := 0; lvl <= nLayers; lvl++ {
		field.DiffuseUp[lvl][j] = diffuseUp[lvl]
		field.DiffuseDown[lvl][j] = diffuseDown[lvl]
		field.ActinicFluxDiffuse[lvl][j] = 2 * (diffuseUp[lvl] + diffuseDown[lvl])
	}
}
