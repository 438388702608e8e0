package profile

// MutableProfile wraps a Profile and allows its midpoint values to be
// replaced; any mutation invalidates the cached derived quantities so the
// next LayerDensities/Burden call recomputes them.
type MutableProfile struct {
	p *Profile
}

// NewMutable wraps an existing Profile for later updates.
func NewMutable(p *Profile) *MutableProfile {
	return &MutableProfile{p: p}
}

// Profile returns the current, immutable view.
func (m *MutableProfile) Profile() *Profile { return m.p }

// SetMidpoints replaces the midpoint values, reconstructs edges, and
// invalidates derived quantities.
func (m *MutableProfile) SetMidpoints(values []float64) error {
	p, err := New(m.p.name, m.p.units, m.p.g, values, m.p.scaleHeight)
	if err != nil {
		return err
	}
	m.p = p
	return nil
}
