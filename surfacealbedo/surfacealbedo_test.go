package surfacealbedo

import (
	"testing"

	"github.com/tuvx-go/tuvx/grid"
)

func TestConstantAlbedo(t *testing.T) {
	s := NewConstant(0.3)
	g, _ := grid.EquallySpaced("wavelength", "nm", 280, 700, 5)
	result := s.Calculate(g)
	for i, v := range result {
		if v != 0.3 {
			t.Errorf("result[%d] = %g, want 0.3", i, v)
		}
	}
}

func TestConstantAlbedoClamped(t *testing.T) {
	s := NewConstant(1.5)
	if s.constantValue != 1 {
		t.Errorf("expected clamp to 1, got %g", s.constantValue)
	}
	s2 := NewConstant(-0.5)
	if s2.constantValue != 0 {
		t.Errorf("expected clamp to 0, got %g", s2.constantValue)
	}
}

func TestSpectralAlbedoExtrapolatesEdgeValue(t *testing.T) {
	s, err := NewSpectral([]float64{300, 400, 500}, []float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatal(err)
	}
	g, _ := grid.EquallySpaced("wavelength", "nm", 200, 600, 4)
	result := s.Calculate(g)
	mids := g.Midpoints()
	for i, wl := range mids {
		if wl < 300 && result[i] != 0.1 {
			t.Errorf("below-range cell %d (wl=%g) = %g, want edge value 0.1", i, wl, result[i])
		}
		if wl > 500 && result[i] != 0.3 {
			t.Errorf("above-range cell %d (wl=%g) = %g, want edge value 0.3", i, wl, result[i])
		}
	}
}

func TestSpectralAlbedoRejectsSizeMismatch(t *testing.T) {
	_, err := NewSpectral([]float64{300, 400}, []float64{0.1, 0.2, 0.3})
	if err == nil {
		t.Error("expected error on size mismatch")
	}
}
