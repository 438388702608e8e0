// Package sphericalgeometry computes slant-path enhancement factors and air
// mass for a spherical-shell atmosphere, valid from overhead sun through
// twilight, plus the plane-parallel Kasten-Young air-mass alternative.
package sphericalgeometry

import (
	"math"

	"github.com/tuvx-go/tuvx/grid"
)

const degToRad = math.Pi / 180

// SlantPathResult carries per-layer geometry for a single solar zenith
// angle: the path enhancement factor, cumulative air mass from
// top-of-atmosphere down to the layer bottom, and a sunlit flag.
type SlantPathResult struct {
	EnhancementFactor []float64
	AirMass           []float64
	Sunlit            []bool
}

// Geometry computes slant-path factors on altitudeGrid (units "km") for a
// given Earth radius.
type Geometry struct {
	EarthRadiusKm float64
}

// New constructs a Geometry with the given Earth radius in km.
func New(earthRadiusKm float64) *Geometry {
	return &Geometry{EarthRadiusKm: earthRadiusKm}
}

// Calculate produces the SlantPathResult for solar zenith angle chiDeg on
// altitudeGrid.
func (geo *Geometry) Calculate(altitudeGrid *grid.Grid, chiDeg float64) *SlantPathResult {
	n := altitudeGrid.NCells()
	edges := altitudeGrid.Edges()
	chi := chiDeg * degToRad
	cosChi := math.Cos(chi)
	sinChi := math.Sin(chi)

	result := &SlantPathResult{
		EnhancementFactor: make([]float64, n),
		AirMass:           make([]float64, n),
		Sunlit:            make([]bool, n),
	}

	switch {
	case chiDeg < 85:
		e := 1 / math.Abs(cosChi)
		cumulative := 0.0
		for i := n - 1; i >= 0; i-- {
			thickness := math.Abs(edges[i+1] - edges[i])
			cumulative += e * thickness
			result.EnhancementFactor[i] = e
			result.AirMass[i] = cumulative
			result.Sunlit[i] = true
		}
	case chiDeg <= 90:
		cumulative := 0.0
		for i := n - 1; i >= 0; i-- {
			zLo, zHi := edges[i], edges[i+1]
			if zLo > zHi {
				zLo, zHi = zHi, zLo
			}
			rMid := geo.EarthRadiusKm + (zLo+zHi)/2
			e := geo.sphericalEnhancement(rMid, cosChi, sinChi)
			thickness := zHi - zLo
			cumulative += e * thickness
			result.EnhancementFactor[i] = e
			result.AirMass[i] = cumulative
			result.Sunlit[i] = true
		}
	default:
		screeningHeight := geo.EarthRadiusKm * (1/math.Abs(cosChi) - 1)
		zTop := edges[n]
		if edges[0] > zTop {
			zTop = edges[0]
		}
		if screeningHeight > zTop {
			screeningHeight = zTop
		}
		cumulative := 0.0
		for i := n - 1; i >= 0; i-- {
			zLo, zHi := edges[i], edges[i+1]
			if zLo > zHi {
				zLo, zHi = zHi, zLo
			}
			if zLo < screeningHeight {
				result.Sunlit[i] = false
				result.EnhancementFactor[i] = 0
				result.AirMass[i] = cumulative
				continue
			}
			rMid := geo.EarthRadiusKm + (zLo+zHi)/2
			var e float64
			if cosChi > 0.2 {
				e = geo.sphericalEnhancement(rMid, cosChi, sinChi)
			} else {
				e = geo.grazingEnhancement(rMid, chi)
			}
			thickness := zHi - zLo
			cumulative += e * thickness
			result.EnhancementFactor[i] = e
			result.AirMass[i] = cumulative
			result.Sunlit[i] = true
		}
	}
	return result
}

// sphericalEnhancement implements the 85-90 deg first-order correction,
// falling back to the full spherical formula near the horizon.
func (geo *Geometry) sphericalEnhancement(r, cosChi, sinChi float64) float64 {
	if cosChi > 0.2 {
		return (1 + ((r-geo.EarthRadiusKm)/geo.EarthRadiusKm)*sinChi*sinChi) / math.Abs(cosChi)
	}
	y := r / geo.EarthRadiusKm
	e := math.Sqrt(1 + (y*y-1)/(cosChi*cosChi))
	if e > 40 {
		e = 40
	}
	return e
}

// grazingEnhancement implements the below-horizon construction used for
// twilight layers whose geometry requires the effective grazing angle.
func (geo *Geometry) grazingEnhancement(r, chi float64) float64 {
	ratio := geo.EarthRadiusKm / r
	if ratio > 1 {
		ratio = 1
	}
	effective := chi - math.Acos(ratio)
	if effective <= 0 || effective >= math.Pi/2 {
		return 0
	}
	return 1 / math.Cos(effective)
}

// KastenYoung returns the plane-parallel air-mass alternative, valid for
// chiDeg < 75.
func KastenYoung(chiDeg float64) float64 {
	chi := chiDeg * degToRad
	return 1 / (math.Cos(chi) + 0.50572*math.Pow(96.07995-chiDeg, -1.6364))
}

// Chapman returns a closed-form overhead-air-mass approximation, valid for
// chi < 90 deg, useful when only a cheap scalar air mass is needed rather
// than the full per-layer SlantPathResult.
func Chapman(chiDeg, earthRadiusKm, scaleHeightKm float64) float64 {
	chi := chiDeg * degToRad
	x := earthRadiusKm / scaleHeightKm
	cosChi := math.Cos(chi)
	if cosChi <= 0 {
		return math.Inf(1)
	}
	// Chapman's approximation: ch(x,chi) ~ sqrt(pi*x/2) * exp(y^2) *
	// erfc(y) with y = sqrt(x/2)*cos(chi); it tends to sec(chi) away from
	// the horizon and to sqrt(pi*x/2) at chi = 90 deg. For large y the
	// product exp(y^2)*erfc(y) is taken from its asymptotic series to
	// avoid overflow.
	y := math.Sqrt(x/2) * cosChi
	var s float64
	if y < 20 {
		s = math.Exp(y*y) * math.Erfc(y)
	} else {
		s = (1 - 1/(2*y*y) + 3/(4*y*y*y*y)) / (y * math.Sqrt(math.Pi))
	}
	return math.Sqrt(math.Pi*x/2) * s
}
