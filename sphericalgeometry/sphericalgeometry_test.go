package sphericalgeometry

import (
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/grid"
)

func TestPlaneParallelSecant(t *testing.T) {
	g, _ := grid.EquallySpaced("altitude", "km", 0, 10, 5)
	geo := New(6371)
	result := geo.Calculate(g, 60)
	want := 1 / math.Cos(60*degToRad)
	for i, e := range result.EnhancementFactor {
		if math.Abs(e-want) > 1e-9 {
			t.Errorf("enhancement[%d] = %g, want %g", i, e, want)
		}
		if !result.Sunlit[i] {
			t.Errorf("sunlit[%d] = false, want true", i)
		}
	}
}

func TestTwilightScreening(t *testing.T) {
	g, _ := grid.EquallySpaced("altitude", "km", 0, 100, 5)
	geo := New(6371)
	result := geo.Calculate(g, 105)
	screeningHeight := geo.EarthRadiusKm * (1/math.Abs(math.Cos(105*degToRad)) - 1)
	if screeningHeight <= 10 {
		t.Fatalf("test setup assumption violated: screening height %g <= 10", screeningHeight)
	}
	if result.Sunlit[0] {
		t.Error("sunlit[0] = true, want false at chi=105")
	}
	if result.EnhancementFactor[0] != 0 {
		t.Errorf("enhancement[0] = %g, want 0", result.EnhancementFactor[0])
	}
}

func TestKastenYoungOverheadSun(t *testing.T) {
	am := KastenYoung(0)
	if math.Abs(am-1) > 0.01 {
		t.Errorf("KastenYoung(0) = %g, want ~1", am)
	}
}

func TestAirMassMonotoneAtZenith(t *testing.T) {
	g, _ := grid.EquallySpaced("altitude", "km", 0, 50, 5)
	geo := New(6371)
	result := geo.Calculate(g, 0)
	for i := 1; i < len(result.AirMass); i++ {
		if result.AirMass[i] > result.AirMass[i-1] {
			t.Errorf("air mass should decrease toward TOA: [%d]=%g > [%d]=%g", i, result.AirMass[i], i-1, result.AirMass[i-1])
		}
	}
}
