// Package profile implements vertical fields held at grid midpoints, with
// edge reconstruction, scale-height extrapolation, and cached
// layer-integrated density/burden quantities.
package profile

import (
	"math"

	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
)

// Profile is a vertical field defined on a Grid, held at the grid's
// midpoints with n_cells+1 reconstructed edge values.
type Profile struct {
	name       string
	units      string
	g          *grid.Grid
	mid        []float64
	edge       []float64
	scaleHeight float64

	layerDensities []float64
	burden         []float64
	haveDerived    bool
}

// New validates and constructs a Profile on g. scaleHeight is used by
// ExtrapolateAbove; a value <= 0 disables extrapolation (At above the top
// edge then returns the top value unchanged).
func New(name, units string, g *grid.Grid, midpointValues []float64, scaleHeight float64) (*Profile, error) {
	if len(midpointValues) != g.NCells() {
		return nil, errs.New(errs.InvalidDimension, "profile.New", "%q|%s: %d values for %d-cell grid", name, units, len(midpointValues), g.NCells())
	}
	p := &Profile{
		name:        name,
		units:       units,
		g:           g,
		mid:         append([]float64(nil), midpointValues...),
		scaleHeight: scaleHeight,
	}
	p.edge = reconstructEdges(p.mid)
	return p, nil
}

// reconstructEdges linearly averages interior edges from adjacent
// midpoints and linearly extrapolates the two end edges.
func reconstructEdges(mid []float64) []float64 {
	n := len(mid)
	edge := make([]float64, n+1)
	if n == 1 {
		edge[0] = mid[0]
		edge[1] = mid[0]
		return edge
	}
	for i := 1; i < n; i++ {
		edge[i] = (mid[i-1] + mid[i]) / 2
	}
	edge[0] = 1.5*mid[0] - 0.5*mid[1]
	edge[n] = 1.5*mid[n-1] - 0.5*mid[n-2]
	return edge
}

// Name returns the profile's identity name.
func (p *Profile) Name() string { return p.name }

// Units returns the profile's identity units.
func (p *Profile) Units() string { return p.units }

// Key returns the warehouse lookup key "name|units".
func (p *Profile) Key() string { return p.name + "|" + p.units }

// Grid returns the grid this profile is defined on.
func (p *Profile) Grid() *grid.Grid { return p.g }

// Midpoints returns the n_cells midpoint values.
func (p *Profile) Midpoints() []float64 { return p.mid }

// Edges returns the n_cells+1 reconstructed edge values.
func (p *Profile) Edges() []float64 { return p.edge }

// ScaleHeight returns the extrapolation scale height.
func (p *Profile) ScaleHeight() float64 { return p.scaleHeight }

// computeDerived lazily fills layerDensities and burden.
func (p *Profile) computeDerived() {
	if p.haveDerived {
		return
	}
	deltas := p.g.Deltas()
	n := len(p.mid)
	p.layerDensities = make([]float64, n)
	for i := 0; i < n; i++ {
		p.layerDensities[i] = p.mid[i] * math.Abs(deltas[i])
	}
	p.burden = make([]float64, n+1)
	p.burden[n] = 0
	for i := n - 1; i >= 0; i-- {
		p.burden[i] = p.burden[i+1] + p.layerDensities[i]
	}
	p.haveDerived = true
}

// HasLayerDensities reports that layer-density/burden quantities are
// available (always true once computed; present for API parity with the
// reference implementation's lazy-cache check).
func (p *Profile) HasLayerDensities() bool {
	p.computeDerived()
	return true
}

// LayerDensities returns mid[i]*|delta[i]| for each layer, computing and
// caching it on first call.
func (p *Profile) LayerDensities() []float64 {
	p.computeDerived()
	return p.layerDensities
}

// Burden returns the overhead column burden at each level, with
// burden[n_cells] = 0 and burden[i] = burden[i+1] + layerDensity[i].
func (p *Profile) Burden() []float64 {
	p.computeDerived()
	return p.burden
}

// InvalidateDerivedQuantities clears the layer-density/burden cache,
// forcing recomputation on next access. Call this after mutating a
// profile's values in place.
func (p *Profile) InvalidateDerivedQuantities() {
	p.haveDerived = false
	p.layerDensities = nil
	p.burden = nil
}

// At returns the profile value at altitude/coordinate z, linearly
// interpolating within the grid's midpoint range and extrapolating above
// the top edge with exp(-(z-zTop)/scaleHeight) when scaleHeight > 0.
func (p *Profile) At(z float64) float64 {
	n := len(p.mid)
	gridEdges := p.g.Edges()
	top := gridEdges[n]
	bottom := gridEdges[0]
	ascending := top >= bottom
	if ascending && z > top || !ascending && z < top {
		return p.extrapolateAbove(z, top)
	}
	return linearAt(p.midpointsAsX(), p.mid, z)
}

func (p *Profile) extrapolateAbove(z, zTop float64) float64 {
	n := len(p.mid)
	topVal := p.mid[n-1]
	if p.scaleHeight <= 0 {
		return topVal
	}
	return topVal * math.Exp(-(z-zTop)/p.scaleHeight)
}

func (p *Profile) midpointsAsX() []float64 { return p.g.Midpoints() }

// linearAt is a minimal local clamp+lerp helper operating directly on
// (x,y) pairs sorted ascending or descending; used only by At, which
// handles above-top extrapolation itself.
func linearAt(x, y []float64, target float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return y[0]
	}
	ascending := x[1] > x[0]
	if ascending {
		if target <= x[0] {
			return y[0]
		}
		if target >= x[n-1] {
			return y[n-1]
		}
	} else {
		if target >= x[0] {
			return y[0]
		}
		if target <= x[n-1] {
			return y[n-1]
		}
	}
	for i := 0; i < n-1; i++ {
		lo, hi := x[i], x[i+1]
		inRange := (ascending && target >= lo && target <= hi) || (!ascending && target <= lo && target >= hi)
		if inRange {
			if hi == lo {
				return y[i]
			}
			t := (target - lo) / (hi - lo)
			return y[i] + t*(y[i+1]-y[i])
		}
	}
	return y[n-1]
}
