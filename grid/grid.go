// Package grid implements the 1-D discretization used throughout the
// radiative-transfer pipeline: wavelength and altitude grids share the same
// edge/midpoint/delta representation and cell-lookup semantics.
package grid

import (
	"math"
	"sort"

	"github.com/tuvx-go/tuvx/errs"
)

// Grid is a 1-D discretization with n_cells cells and n_cells+1 edges. It
// may be ascending or descending; FindCell handles both directions.
type Grid struct {
	name  string
	units string
	edges []float64
}

// New validates edges and constructs a Grid. Edges must have at least 2
// entries and be strictly monotonic (ascending or descending).
func New(name, units string, edges []float64) (*Grid, error) {
	if len(edges) < 2 {
		return nil, errs.New(errs.InvalidDimension, "grid.New", "%q|%s: need at least 2 edges, got %d", name, units, len(edges))
	}
	if err := checkMonotonic(edges); err != nil {
		return nil, errs.New(errs.InvalidBounds, "grid.New", "%q|%s: %v", name, units, err)
	}
	g := &Grid{name: name, units: units, edges: append([]float64(nil), edges...)}
	return g, nil
}

func checkMonotonic(edges []float64) error {
	ascending := edges[1] > edges[0]
	for i := 1; i < len(edges); i++ {
		if ascending && edges[i] <= edges[i-1] {
			return errNotMonotonic
		}
		if !ascending && edges[i] >= edges[i-1] {
			return errNotMonotonic
		}
	}
	return nil
}

type monotonicErr struct{}

func (monotonicErr) Error() string { return "edges must be strictly monotonic" }

var errNotMonotonic = monotonicErr{}

// EquallySpaced builds a Grid with n_cells equal-width cells between min and
// max (min may be greater than max for a descending grid).
func EquallySpaced(name, units string, min, max float64, nCells int) (*Grid, error) {
	if nCells < 1 {
		return nil, errs.New(errs.InvalidDimension, "grid.EquallySpaced", "%q|%s: n_cells must be >= 1, got %d", name, units, nCells)
	}
	edges := make([]float64, nCells+1)
	step := (max - min) / float64(nCells)
	for i := range edges {
		edges[i] = min + float64(i)*step
	}
	edges[nCells] = max
	return New(name, units, edges)
}

// LogarithmicallySpaced builds a Grid with n_cells log-spaced cells between
// min and max; both bounds must be strictly positive.
func LogarithmicallySpaced(name, units string, min, max float64, nCells int) (*Grid, error) {
	if min <= 0 || max <= 0 {
		return nil, errs.New(errs.InvalidBounds, "grid.LogarithmicallySpaced", "%q|%s: bounds must be positive, got min=%g max=%g", name, units, min, max)
	}
	if nCells < 1 {
		return nil, errs.New(errs.InvalidDimension, "grid.LogarithmicallySpaced", "%q|%s: n_cells must be >= 1, got %d", name, units, nCells)
	}
	edges := make([]float64, nCells+1)
	logMin, logMax := math.Log(min), math.Log(max)
	step := (logMax - logMin) / float64(nCells)
	for i := range edges {
		edges[i] = math.Exp(logMin + float64(i)*step)
	}
	edges[0] = min
	edges[nCells] = max
	return New(name, units, edges)
}

// Name returns the grid's identity name.
func (g *Grid) Name() string { return g.name }

// Units returns the grid's identity units.
func (g *Grid) Units() string { return g.units }

// Key returns the warehouse lookup key "name|units".
func (g *Grid) Key() string { return Key(g.name, g.units) }

// Key builds the warehouse lookup key for a given name/units pair.
func Key(name, units string) string { return name + "|" + units }

// NCells returns the number of cells.
func (g *Grid) NCells() int { return len(g.edges) - 1 }

// Edges returns the n_cells+1 edge values. The returned slice must not be
// mutated by callers.
func (g *Grid) Edges() []float64 { return g.edges }

// Midpoints returns the n_cells cell-center values.
func (g *Grid) Midpoints() []float64 {
	n := g.NCells()
	m := make([]float64, n)
	for i := 0; i < n; i++ {
		m[i] = (g.edges[i] + g.edges[i+1]) / 2
	}
	return m
}

// Deltas returns the n_cells signed cell widths edge[i+1]-edge[i].
func (g *Grid) Deltas() []float64 {
	n := g.NCells()
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = g.edges[i+1] - g.edges[i]
	}
	return d
}

// Ascending reports whether edges increase with index.
func (g *Grid) Ascending() bool {
	return g.edges[1] > g.edges[0]
}

// FindCell returns the index of the cell containing v, biased to the upper
// cell at an exact interior edge match, or ok=false if v lies outside the
// grid's range.
func (g *Grid) FindCell(v float64) (idx int, ok bool) {
	n := g.NCells()
	if g.Ascending() {
		if v < g.edges[0] || v > g.edges[n] {
			return 0, false
		}
		// sort.Search finds the first index i such that edges[i] > v,
		// i.e. the upper bound; cell (i-1) contains v, biased to the
		// later cell on an exact edge match.
		i := sort.Search(n+1, func(i int) bool { return g.edges[i] > v })
		if i == 0 {
			i = 1
		}
		if i > n {
			i = n
		}
		return i - 1, true
	}
	// descending
	if v > g.edges[0] || v < g.edges[n] {
		return 0, false
	}
	i := sort.Search(n+1, func(i int) bool { return g.edges[i] < v })
	if i == 0 {
		i = 1
	}
	if i > n {
		i = n
	}
	return i - 1, true
}
