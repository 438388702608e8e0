package photolysis

import (
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/crosssection"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/quantumyield"
	"github.com/tuvx-go/tuvx/radiationfield"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.EquallySpaced("wavelength", "nm", 280, 320, 4)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestJNonNegative(t *testing.T) {
	g := testGrid(t)
	sigma, err := crosssection.NewTabular("O3", []float64{280, 290, 300, 310, 320}, []float64{1e-19, 2e-19, 3e-19, 2e-19, 1e-19})
	if err != nil {
		t.Fatal(err)
	}
	phi := quantumyield.NewConstant("O1D", 0.5)

	calc := NewCalculator()
	if err := calc.Register(Reaction{Name: "O3+hv->O2+O1D", CrossSection: sigma, QuantumYield: phi}); err != nil {
		t.Fatal(err)
	}

	field := radiationfield.New(3, g.NCells())
	for lvl := range field.ActinicFluxDirect {
		for j := range field.ActinicFluxDirect[lvl] {
			field.ActinicFluxDirect[lvl][j] = 1e13
		}
	}

	results, err := calc.Calculate(g, field, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	for _, j := range results[0].J {
		if j < 0 || math.IsNaN(j) {
			t.Errorf("J = %g, want >= 0", j)
		}
		if j == 0 {
			t.Error("expected nonzero J with nonzero flux/sigma/phi")
		}
	}
}

func TestJLinearInFlux(t *testing.T) {
	g := testGrid(t)
	sigma, _ := crosssection.NewTabular("O3", []float64{280, 290, 300, 310, 320}, []float64{1e-19, 2e-19, 3e-19, 2e-19, 1e-19})
	phi := quantumyield.NewConstant("O1D", 0.5)
	calc := NewCalculator()
	calc.Register(Reaction{Name: "r1", CrossSection: sigma, QuantumYield: phi})

	field1 := radiationfield.New(2, g.NCells())
	field2 := radiationfield.New(2, g.NCells())
	for lvl := range field1.ActinicFluxDirect {
		for j := range field1.ActinicFluxDirect[lvl] {
			field1.ActinicFluxDirect[lvl][j] = 1e13
			field2.ActinicFluxDirect[lvl][j] = 2e13
		}
	}
	r1, err := calc.Calculate(g, field1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := calc.Calculate(g, field2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for lvl := range r1[0].J {
		want := r1[0].J[lvl] * 2
		got := r2[0].J[lvl]
		if math.Abs(got-want) > want*1e-9+1e-30 {
			t.Errorf("level %d: J = %g, want %g (2x linear scaling)", lvl, got, want)
		}
	}
}

func TestZeroCrossSectionGivesZeroJ(t *testing.T) {
	g := testGrid(t)
	sigma, _ := crosssection.NewTabular("null", []float64{280, 290, 300, 310, 320}, []float64{0, 0, 0, 0, 0})
	phi := quantumyield.NewConstant("y", 1.0)
	calc := NewCalculator()
	calc.Register(Reaction{Name: "r1", CrossSection: sigma, QuantumYield: phi})

	field := radiationfield.New(2, g.NCells())
	for lvl := range field.ActinicFluxDirect {
		for j := range field.ActinicFluxDirect[lvl] {
			field.ActinicFluxDirect[lvl][j] = 1e13
		}
	}
	results, err := calc.Calculate(g, field, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, j := range results[0].J {
		if j != 0 {
			t.Errorf("J = %g, want 0 with zero cross-section", j)
		}
	}
}

func TestDuplicateReactionRejected(t *testing.T) {
	sigma, _ := crosssection.NewTabular("O3", []float64{280, 320}, []float64{1e-19, 1e-19})
	phi := quantumyield.NewConstant("y", 1.0)
	calc := NewCalculator()
	if err := calc.Register(Reaction{Name: "r1", CrossSection: sigma, QuantumYield: phi}); err != nil {
		t.Fatal(err)
	}
	if err := calc.Register(Reaction{Name: "r1", CrossSection: sigma, QuantumYield: phi}); err == nil {
		t.Error("expected error registering duplicate reaction name")
	}
}
