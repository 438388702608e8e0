// Package surfacealbedo supplies the solver's alpha_surf input: a constant
// (gray) or wavelength-dependent spectral surface reflectivity.
package surfacealbedo

import (
	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/interpolation"
)

// SurfaceAlbedo samples alpha(lambda) onto a wavelength grid's midpoints.
type SurfaceAlbedo struct {
	constant      bool
	constantValue float64
	wavelengthsNm []float64
	albedo        []float64
}

// NewConstant constructs a wavelength-independent (gray) albedo, clamped to
// [0,1].
func NewConstant(albedo float64) *SurfaceAlbedo {
	return &SurfaceAlbedo{constant: true, constantValue: clamp01(albedo)}
}

// NewSpectral constructs a wavelength-dependent albedo. Values outside the
// reference range are extrapolated using the nearest edge value, not zero.
func NewSpectral(wavelengthsNm, albedo []float64) (*SurfaceAlbedo, error) {
	if len(wavelengthsNm) != len(albedo) {
		return nil, errs.New(errs.InvalidDimension, "surfacealbedo.NewSpectral", "%d wavelengths, %d albedo values", len(wavelengthsNm), len(albedo))
	}
	if len(wavelengthsNm) < 2 {
		return nil, errs.New(errs.InvalidDimension, "surfacealbedo.NewSpectral", "need at least 2 reference points, got %d", len(wavelengthsNm))
	}
	clamped := make([]float64, len(albedo))
	for i, a := range albedo {
		clamped[i] = clamp01(a)
	}
	return &SurfaceAlbedo{wavelengthsNm: wavelengthsNm, albedo: clamped}, nil
}

// Calculate returns alpha(lambda) at wavelengthGrid's midpoints.
func (s *SurfaceAlbedo) Calculate(wavelengthGrid *grid.Grid) []float64 {
	n := wavelengthGrid.NCells()
	if s.constant {
		out := make([]float64, n)
		for i := range out {
			out[i] = s.constantValue
		}
		return out
	}
	target := wavelengthGrid.Midpoints()
	result := interpolation.Linear(target, s.wavelengthsNm, s.albedo)
	for i := range result {
		result[i] = clamp01(result[i])
	}
	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
