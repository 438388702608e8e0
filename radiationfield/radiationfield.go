// Package radiationfield holds the level-resolved direct/diffuse
// irradiance and actinic flux output of the delta-Eddington solver.
package radiationfield

import "github.com/tuvx-go/tuvx/errs"

// Field is sized [n_levels][n_wavelengths], level 0 = surface, level
// n_layers = top of atmosphere.
type Field struct {
	NLevels         int
	NWavelengths    int
	DirectIrradiance [][]float64
	DiffuseUp        [][]float64
	DiffuseDown      [][]float64
	ActinicFluxDirect  [][]float64
	ActinicFluxDiffuse [][]float64
}

// New returns a zero-initialized Field of the given shape.
func New(nLevels, nWavelengths int) *Field {
	return &Field{
		NLevels:            nLevels,
		NWavelengths:       nWavelengths,
		DirectIrradiance:   make2D(nLevels, nWavelengths),
		DiffuseUp:          make2D(nLevels, nWavelengths),
		DiffuseDown:        make2D(nLevels, nWavelengths),
		ActinicFluxDirect:  make2D(nLevels, nWavelengths),
		ActinicFluxDiffuse: make2D(nLevels, nWavelengths),
	}
}

func make2D(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

// Empty reports whether the field has zero levels or zero wavelengths.
func (f *Field) Empty() bool {
	return f.NLevels == 0 || f.NWavelengths == 0
}

// TotalActinicFlux returns direct+diffuse actinic flux at the given level.
func (f *Field) TotalActinicFlux(level int) []float64 {
	out := make([]float64, f.NWavelengths)
	for j := 0; j < f.NWavelengths; j++ {
		out[j] = f.ActinicFluxDirect[level][j] + f.ActinicFluxDiffuse[level][j]
	}
	return out
}

// TotalDownwelling returns direct+diffuse-down irradiance at the given
// level.
func (f *Field) TotalDownwelling(level int) []float64 {
	out := make([]float64, f.NWavelengths)
	for j := 0; j < f.NWavelengths; j++ {
		out[j] = f.DirectIrradiance[level][j] + f.DiffuseDown[level][j]
	}
	return out
}

// SurfaceActinicFlux is a convenience for TotalActinicFlux(0).
func (f *Field) SurfaceActinicFlux() []float64 { return f.TotalActinicFlux(0) }

// SurfaceGlobalIrradiance returns direct+diffuse-down+diffuse-up at the
// surface level.
func (f *Field) SurfaceGlobalIrradiance() []float64 {
	out := make([]float64, f.NWavelengths)
	for j := 0; j < f.NWavelengths; j++ {
		out[j] = f.DirectIrradiance[0][j] + f.DiffuseDown[0][j] + f.DiffuseUp[0][j]
	}
	return out
}

// Scale multiplies every array by factor, in place.
func (f *Field) Scale(factor float64) {
	for _, arr := range [][][]float64{f.DirectIrradiance, f.DiffuseUp, f.DiffuseDown, f.ActinicFluxDirect, f.ActinicFluxDiffuse} {
		for i := range arr {
			for j := range arr[i] {
				arr[i][j] *= factor
			}
		}
	}
}

// Accumulate adds other into f in place (for time/angle integrations).
// Shape mismatch fails.
func (f *Field) Accumulate(other *Field) error {
	if f.NLevels != other.NLevels || f.NWavelengths != other.NWavelengths {
		return errs.New(errs.InvalidDimension, "radiationfield.Field.Accumulate",
			"shape [%d][%d] vs [%d][%d]", f.NLevels, f.NWavelengths, other.NLevels, other.NWavelengths)
	}
	pairs := [][2][][]float64{
		{f.DirectIrradiance, other.DirectIrradiance},
		{f.DiffuseUp, other.DiffuseUp},
		{f.DiffuseDown, other.DiffuseDown},
		{f.ActinicFluxDirect, other.ActinicFluxDirect},
		{f.ActinicFluxDiffuse, other.ActinicFluxDiffuse},
	}
	for _, p := range pairs {
		dst, src := p[0], p[1]
		for i := range dst {
			for j := range dst[i] {
				dst[i][j] += src[i][j]
			}
		}
	}
	return nil
}
