// Package radiator implements per-species optical-property generators
// (molecular absorber, Rayleigh scattering, aerosol) and the weighted
// mixing rule that combines them into a single RadiatorState.
package radiator

import "github.com/tuvx-go/tuvx/errs"

// State is a per-species optical property block of shape
// [n_layers][n_wavelengths] holding optical depth tau, single-scattering
// albedo omega, and asymmetry factor g.
type State struct {
	NLayers      int
	NWavelengths int
	Tau          [][]float64
	Omega        [][]float64
	G            [][]float64
}

// NewState returns a zero-initialized State of the given shape.
func NewState(nLayers, nWavelengths int) *State {
	s := &State{NLayers: nLayers, NWavelengths: nWavelengths}
	s.Tau = make2D(nLayers, nWavelengths)
	s.Omega = make2D(nLayers, nWavelengths)
	s.G = make2D(nLayers, nWavelengths)
	return s
}

func make2D(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

// Empty reports whether the state has zero layers or zero wavelengths.
func (s *State) Empty() bool {
	return s.NLayers == 0 || s.NWavelengths == 0
}

// Scale multiplies tau by factor uniformly, in place.
func (s *State) Scale(factor float64) {
	for i := range s.Tau {
		for j := range s.Tau[i] {
			s.Tau[i][j] *= factor
		}
	}
}

// TotalOpticalDepth returns the column-integrated optical depth at each
// wavelength, summed over layers.
func (s *State) TotalOpticalDepth() []float64 {
	total := make([]float64, s.NWavelengths)
	for i := 0; i < s.NLayers; i++ {
		for j := 0; j < s.NWavelengths; j++ {
			total[j] += s.Tau[i][j]
		}
	}
	return total
}

// Accumulate mixes other into s in place using the standard
// absorption-plus-scattering rules: tau adds; omega is the tau-weighted
// average; g is the scattering-optical-depth-weighted average.
// Accumulating into an empty (zero-shape) state adopts other's shape and
// values. Shape mismatch between two non-empty states is an error.
func (s *State) Accumulate(other *State) error {
	if s.Empty() {
		*s = *cloneState(other)
		return nil
	}
	if other.Empty() {
		return nil
	}
	if s.NLayers != other.NLayers || s.NWavelengths != other.NWavelengths {
		return errs.New(errs.InvalidDimension, "radiator.State.Accumulate",
			"shape [%d][%d] vs [%d][%d]", s.NLayers, s.NWavelengths, other.NLayers, other.NWavelengths)
	}
	for i := 0; i < s.NLayers; i++ {
		for j := 0; j < s.NWavelengths; j++ {
			tauA, tauB := s.Tau[i][j], other.Tau[i][j]
			omegaA, omegaB := s.Omega[i][j], other.Omega[i][j]
			gA, gB := s.G[i][j], other.G[i][j]

			tau := tauA + tauB
			var omega float64
			if tau != 0 {
				omega = (tauA*omegaA + tauB*omegaB) / tau
			}
			scatterA := tauA * omegaA
			scatterB := tauB * omegaB
			denom := scatterA + scatterB
			var g float64
			if denom != 0 {
				g = (scatterA*gA + scatterB*gB) / denom
			}
			s.Tau[i][j] = tau
			s.Omega[i][j] = omega
			s.G[i][j] = g
		}
	}
	return nil
}

func cloneState(s *State) *State {
	clone := NewState(s.NLayers, s.NWavelengths)
	for i := 0; i < s.NLayers; i++ {
		copy(clone.Tau[i], s.Tau[i])
		copy(clone.Omega[i], s.Omega[i])
		copy(clone.G[i], s.G[i])
	}
	return clone
}

// Combine returns a new State formed by accumulating b into a copy of a,
// leaving both inputs unmodified.
func Combine(a, b *State) (*State, error) {
	result := cloneState(a)
	if err := result.Accumulate(b); err != nil {
		return nil, err
	}
	return result, nil
}
