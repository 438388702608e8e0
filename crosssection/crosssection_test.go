package crosssection

import (
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/grid"
)

func TestTabularOutsideRangeIsZero(t *testing.T) {
	cs, err := NewTabular("O3", []float64{300, 310, 320}, []float64{1e-19, 2e-19, 1.5e-19})
	if err != nil {
		t.Fatal(err)
	}
	g, _ := grid.EquallySpaced("wavelength", "nm", 280, 330, 5)
	sigma, err := cs.Calculate(g, 298)
	if err != nil {
		t.Fatal(err)
	}
	mid := g.Midpoints()
	for i, wl := range mid {
		if wl < 300 || wl > 320 {
			if sigma[i] != 0 {
				t.Errorf("sigma[%d] at wl=%g = %g, want 0 (outside ref range)", i, wl, sigma[i])
			}
		}
	}
}

func TestTabularTemperatureBracketing(t *testing.T) {
	wl := []float64{300, 310}
	temps := []float64{200, 300}
	sigma := [][]float64{{1e-19, 1e-19}, {2e-19, 2e-19}}
	cs, err := NewTabularWithTemperature("X", wl, temps, sigma)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := grid.New("wavelength", "nm", []float64{300, 310, 320})

	// exact reference temperature equals the stored row
	got, _ := cs.Calculate(g, 200)
	if math.Abs(got[0]-1e-19) > 1e-25 {
		t.Errorf("at T=200, sigma[0] = %g, want 1e-19", got[0])
	}

	// below lowest reference temperature clamps to nearest row
	got, _ = cs.Calculate(g, 100)
	if math.Abs(got[0]-1e-19) > 1e-25 {
		t.Errorf("at T=100 (below range), sigma[0] = %g, want nearest row 1e-19", got[0])
	}

	// above highest reference temperature clamps to nearest row
	got, _ = cs.Calculate(g, 400)
	if math.Abs(got[0]-2e-19) > 1e-25 {
		t.Errorf("at T=400 (above range), sigma[0] = %g, want nearest row 2e-19", got[0])
	}

	// halfway between reference temperatures interpolates linearly
	got, _ = cs.Calculate(g, 250)
	want := 1.5e-19
	if math.Abs(got[0]-want) > 1e-25 {
		t.Errorf("at T=250, sigma[0] = %g, want %g", got[0], want)
	}
}

func TestCalculateProfile(t *testing.T) {
	cs, _ := NewTabular("O3", []float64{300, 310}, []float64{1e-19, 2e-19})
	g, _ := grid.New("wavelength", "nm", []float64{300, 310, 320})
	profile, err := cs.CalculateProfile(g, []float64{250, 260, 270})
	if err != nil {
		t.Fatal(err)
	}
	if len(profile) != 3 {
		t.Fatalf("len(profile) = %d, want 3", len(profile))
	}
}

func TestNonNegativeClamp(t *testing.T) {
	cs, _ := NewTabular("neg", []float64{300, 310}, []float64{-1e-19, 1e-19})
	g, _ := grid.New("wavelength", "nm", []float64{300, 305})
	got, _ := cs.Calculate(g, 298)
	for _, v := range got {
		if v < 0 {
			t.Errorf("sigma must be clamped >= 0, got %g", v)
		}
	}
}
