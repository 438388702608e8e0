package grid

// MutableGrid wraps a Grid and allows edge replacement. SetEdges validates
// the new edges and adopts them at once; derived values (midpoints,
// deltas) are always recomputed from the current edges. Refresh only
// re-checks the current edges.
type MutableGrid struct {
	g *Grid
}

// NewMutable wraps an existing Grid for later edge updates.
func NewMutable(g *Grid) *MutableGrid {
	return &MutableGrid{g: g}
}

// Grid returns the current, immutable view.
func (m *MutableGrid) Grid() *Grid { return m.g }

// SetEdges validates a replacement edge set and, if it is valid, adopts it
// immediately; on error the current edges are kept.
func (m *MutableGrid) SetEdges(edges []float64) error {
	g, err := New(m.g.name, m.g.units, edges)
	if err != nil {
		return err
	}
	m.g = g
	return nil
}

// Refresh is a no-op validation pass retained for API symmetry with the
// reference implementation's explicit "commit" step; SetEdges already
// validates eagerly, but Refresh lets callers express the two-phase
// update/commit pattern when edges are built incrementally.
func (m *MutableGrid) Refresh() error {
	return checkMonotonic(m.g.edges)
}
