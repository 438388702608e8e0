package quantumyield

import (
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/grid"
)

func TestConstantIgnoresArguments(t *testing.T) {
	qy := NewConstant("O3->O1D", 0.9)
	g, _ := grid.EquallySpaced("wavelength", "nm", 280, 320, 4)
	got, err := qy.Calculate(g, 200, 1e19)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range got {
		if v != 0.9 {
			t.Errorf("constant yield = %g, want 0.9", v)
		}
	}
}

func TestConstantClampsAtConstruction(t *testing.T) {
	qy := NewConstant("x", 1.5)
	if qy.value != 1 {
		t.Errorf("value = %g, want clamped to 1", qy.value)
	}
}

func TestTabularOutsideRangeIsZero(t *testing.T) {
	qy, err := NewTabular("O3->O1D", []float64{300, 320}, []float64{0.5, 0.9})
	if err != nil {
		t.Fatal(err)
	}
	g, _ := grid.EquallySpaced("wavelength", "nm", 250, 350, 4)
	got, err := qy.Calculate(g, 298, 1e19)
	if err != nil {
		t.Fatal(err)
	}
	mid := g.Midpoints()
	for i, wl := range mid {
		if wl < 300 || wl > 320 {
			if got[i] != 0 {
				t.Errorf("phi at wl=%g = %g, want 0", wl, got[i])
			}
		}
		if got[i] < 0 || got[i] > 1 {
			t.Errorf("phi at wl=%g = %g, out of [0,1]", wl, got[i])
		}
	}
}

func TestComplementaryYield(t *testing.T) {
	base := NewConstant("O3->O1D", 0.7)
	comp := NewComplementary("O3->O3P", base)
	g, _ := grid.EquallySpaced("wavelength", "nm", 280, 320, 3)
	got, err := comp.Calculate(g, 298, 1e19)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range got {
		if math.Abs(v-0.3) > 1e-12 {
			t.Errorf("complementary yield = %g, want 0.3", v)
		}
	}
}

func TestCalculateProfileDimensionMismatch(t *testing.T) {
	qy := NewConstant("x", 0.5)
	g, _ := grid.EquallySpaced("wavelength", "nm", 280, 320, 3)
	if _, err := qy.CalculateProfile(g, []float64{200, 250}, []float64{1e19}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}
