package radiator

import (
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/crosssection"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/profile"
)

func setupWarehouses(t *testing.T) (*grid.Warehouse, *profile.Warehouse) {
	t.Helper()
	gw := grid.NewWarehouse()
	wlGrid, _ := grid.EquallySpaced("wavelength", "nm", 300, 320, 2)
	zGrid, _ := grid.EquallySpaced("altitude", "km", 0, 10, 2)
	gw.Add(wlGrid)
	gw.Add(zGrid)

	pw := profile.NewWarehouse()
	density, _ := profile.New("density", "molecules/cm3", zGrid, []float64{1e18, 1e17}, 0)
	temperature, _ := profile.New("temperature", "K", zGrid, []float64{280, 220}, 0)
	pw.Add(density)
	pw.Add(temperature)
	return gw, pw
}

func TestFromCrossSectionOpticalDepth(t *testing.T) {
	gw, pw := setupWarehouses(t)
	cs, _ := crosssection.NewTabular("O3", []float64{300, 320}, []float64{1e-19, 1e-19})
	r := NewFromCrossSection("O3", cs, "wavelength", "altitude", "density", "temperature")
	state, err := r.UpdateState(gw, pw)
	if err != nil {
		t.Fatal(err)
	}
	want := 1e-19 * 1e18 * 5 * kmToCm
	if math.Abs(state.Tau[0][0]-want) > want*1e-9 {
		t.Errorf("tau[0][0] = %g, want %g", state.Tau[0][0], want)
	}
	for i := range state.Omega {
		for j := range state.Omega[i] {
			if state.Omega[i][j] != 0 || state.G[i][j] != 0 {
				t.Errorf("pure absorber must have omega=g=0, got omega=%g g=%g", state.Omega[i][j], state.G[i][j])
			}
		}
	}
}

func TestRayleighConservative(t *testing.T) {
	gw, pw := setupWarehouses(t)
	r := NewRayleigh("air", "wavelength", "altitude", "density")
	state, err := r.UpdateState(gw, pw)
	if err != nil {
		t.Fatal(err)
	}
	for i := range state.Omega {
		for j := range state.Omega[i] {
			if state.Omega[i][j] != 1 {
				t.Errorf("rayleigh omega = %g, want 1", state.Omega[i][j])
			}
			if state.Tau[i][j] <= 0 {
				t.Errorf("rayleigh tau = %g, want > 0", state.Tau[i][j])
			}
		}
	}
}

func TestAerosolColumnWeights(t *testing.T) {
	gw, _ := setupWarehouses(t)
	cfg := AerosolConfig{TauRef: 0.2, ReferenceWavelengthNm: 550, AngstromExponent: 1.0, ScaleHeightKm: 2.0, Omega: 0.9, G: 0.7}
	a := NewAerosol("aerosol", cfg, "wavelength", "altitude")
	state, err := a.UpdateState(gw, profile.NewWarehouse())
	if err != nil {
		t.Fatal(err)
	}
	// column sum of weights should equal 1 - exp(-zTop/H)
	var totalWeight float64
	for i := range state.Tau {
		totalWeight += state.Tau[i][0]
	}
	// cell 0 of the 300-320 nm, 2-cell wavelength grid has midpoint 305 nm
	tauSpec := cfg.TauRef * math.Pow(305.0/550.0, -1.0)
	wantTotal := tauSpec * (1 - math.Exp(-10.0/2.0))
	if math.Abs(totalWeight-wantTotal) > 1e-9 {
		t.Errorf("total column tau = %g, want %g", totalWeight, wantTotal)
	}
}

func TestCombinePermutationInvariance(t *testing.T) {
	a := NewState(1, 1)
	a.Tau[0][0], a.Omega[0][0], a.G[0][0] = 1.0, 0.5, 0.2
	b := NewState(1, 1)
	b.Tau[0][0], b.Omega[0][0], b.G[0][0] = 2.0, 0.8, -0.1

	ab, err := Combine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Combine(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ab.Tau[0][0]-ba.Tau[0][0]) > 1e-12 || math.Abs(ab.Omega[0][0]-ba.Omega[0][0]) > 1e-12 || math.Abs(ab.G[0][0]-ba.G[0][0]) > 1e-12 {
		t.Errorf("combination order should not matter: ab=%v ba=%v", ab, ba)
	}
	if ab.Tau[0][0] != 3.0 {
		t.Errorf("tau = %g, want 3.0 (exact add)", ab.Tau[0][0])
	}
}

func TestAccumulateIntoEmptyAdopts(t *testing.T) {
	empty := NewState(0, 0)
	other := NewState(1, 1)
	other.Tau[0][0] = 5
	if err := empty.Accumulate(other); err != nil {
		t.Fatal(err)
	}
	if empty.Tau[0][0] != 5 {
		t.Errorf("accumulate into empty should adopt other, got %g", empty.Tau[0][0])
	}
}

func TestAccumulateDimensionMismatch(t *testing.T) {
	a := NewState(1, 1)
	b := NewState(2, 1)
	if err := a.Accumulate(b); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}
