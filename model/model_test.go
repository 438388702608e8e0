package model

import (
	"context"
	"math"
	"testing"

	"github.com/tuvx-go/tuvx/crosssection"
	"github.com/tuvx-go/tuvx/extflux"
	"github.com/tuvx-go/tuvx/photolysis"
	"github.com/tuvx-go/tuvx/quantumyield"
	"github.com/tuvx-go/tuvx/radiator"
)

func baseConfig() *Config {
	return &Config{
		WavelengthMinNm:       280,
		WavelengthMaxNm:       320,
		NWavelengthBins:       4,
		AltitudeMinKm:         0,
		AltitudeMaxKm:         50,
		NAltitudeLayers:       5,
		SolarZenithAngleDeg:   30,
		DayOfYear:             172,
		SurfaceAlbedo:         0.1,
		UseStandardAtmosphere: true,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := &Config{}
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error constructing Model from empty config")
	}
}

func TestCalculateProducesNonNegativeField(t *testing.T) {
	cfg := baseConfig()
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	flux, err := extflux.NewTabular([]float64{280, 300, 320}, []float64{1e13, 1e13, 1e13})
	if err != nil {
		t.Fatal(err)
	}
	m.SetExtraterrestrialFlux(flux)

	rayleigh := radiator.NewRayleigh("rayleigh", "wavelength", "altitude", "air_density")
	if err := m.RegisterRadiator(rayleigh); err != nil {
		t.Fatal(err)
	}

	out, err := m.Calculate()
	if err != nil {
		t.Fatal(err)
	}
	for lvl := 0; lvl < out.Field.NLevels; lvl++ {
		for _, v := range out.ActinicFlux(lvl) {
			if v < 0 || math.IsNaN(v) {
				t.Errorf("level %d has invalid actinic flux %g", lvl, v)
			}
		}
	}
}

func TestCalculateWithPhotolysisReaction(t *testing.T) {
	cfg := baseConfig()
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	flux, _ := extflux.NewTabular([]float64{280, 320}, []float64{1e13, 1e13})
	m.SetExtraterrestrialFlux(flux)

	rayleigh := radiator.NewRayleigh("rayleigh", "wavelength", "altitude", "air_density")
	if err := m.RegisterRadiator(rayleigh); err != nil {
		t.Fatal(err)
	}

	sigma, _ := crosssection.NewTabular("O3", []float64{280, 320}, []float64{1e-19, 1e-19})
	phi := quantumyield.NewConstant("O1D", 0.3)
	if err := m.RegisterReaction(photolysis.Reaction{Name: "r1", CrossSection: sigma, QuantumYield: phi}); err != nil {
		t.Fatal(err)
	}

	out, err := m.Calculate()
	if err != nil {
		t.Fatal(err)
	}
	j := out.J("r1")
	if j == nil {
		t.Fatal("expected J('r1') to be present")
	}
	for _, v := range j {
		if v < 0 {
			t.Errorf("J = %g, want >= 0", v)
		}
	}
}

func TestCalculateContextCancellation(t *testing.T) {
	cfg := baseConfig()
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	rayleigh := radiator.NewRayleigh("rayleigh", "wavelength", "altitude", "air_density")
	m.RegisterRadiator(rayleigh)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.CalculateContext(ctx); err == nil {
		t.Error("expected error from pre-cancelled context")
	}
}

func TestOutputSummaryNonEmpty(t *testing.T) {
	cfg := baseConfig()
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	rayleigh := radiator.NewRayleigh("rayleigh", "wavelength", "altitude", "air_density")
	m.RegisterRadiator(rayleigh)
	out, err := m.Calculate()
	if err != nil {
		t.Fatal(err)
	}
	if out.Summary() == "" {
		t.Error("expected non-empty summary")
	}
}
