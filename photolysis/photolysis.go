// Package photolysis integrates a radiation field against per-reaction
// cross-section and quantum-yield pairs to produce level-resolved
// photolysis rate coefficients J(z).
package photolysis

import (
	"math"

	"github.com/tuvx-go/tuvx/crosssection"
	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/quantumyield"
	"github.com/tuvx-go/tuvx/radiationfield"
)

// fallbackTemperatureK is used at every level when no temperature profile
// is supplied, per sec.4.9.
const fallbackTemperatureK = 298.0

// Reaction names one photolysis channel: a cross-section and a quantum
// yield evaluated together on the same wavelength grid.
type Reaction struct {
	Name          string
	CrossSection  crosssection.CrossSection
	QuantumYield  quantumyield.QuantumYield
}

// Result is one reaction's level-resolved rate coefficient, in s^-1.
type Result struct {
	Name string
	J    []float64 // sized n_levels
}

// Calculator integrates RadiationField output into photolysis rates for a
// registered set of reactions.
type Calculator struct {
	reactions []Reaction
}

// NewCalculator returns an empty Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Register adds a reaction; duplicate names are rejected.
func (c *Calculator) Register(r Reaction) error {
	for _, existing := range c.reactions {
		if existing.Name == r.Name {
			return errs.New(errs.MissingEntity, "photolysis.Calculator.Register", "duplicate reaction %q", r.Name)
		}
	}
	c.reactions = append(c.reactions, r)
	return nil
}

// Reactions returns every registered reaction in insertion order.
func (c *Calculator) Reactions() []Reaction { return c.reactions }

// Calculate evaluates J(z) for every registered reaction against field on
// wavelengthGrid. temperatureProfileK and nAirProfile are indexed by layer
// (n_layers = n_levels-1); both may be nil, in which case 298 K and zero
// air density are used throughout. Level i evaluates sigma/phi with layer
// i's midpoint temperature and air density; the top level (i = n_layers),
// which has no layer of its own, reuses the topmost layer's values.
func (c *Calculator) Calculate(wavelengthGrid *grid.Grid, field *radiationfield.Field, temperatureProfileK, nAirProfile []float64) ([]*Result, error) {
	nLevels := field.NLevels
	nLayers := nLevels - 1
	if nLayers < 0 {
		nLayers = 0
	}

	temps := temperatureProfileK
	if temps == nil && nLayers > 0 {
		temps = make([]float64, nLayers)
		for i := range temps {
			temps[i] = fallbackTemperatureK
		}
	}
	airDensities := nAirProfile
	if airDensities == nil && nLayers > 0 {
		airDensities = make([]float64, nLayers)
	}
	if len(temps) != nLayers || len(airDensities) != nLayers {
		return nil, errs.New(errs.InvalidDimension, "photolysis.Calculator.Calculate",
			"%d layers but %d temperatures and %d air densities", nLayers, len(temps), len(airDensities))
	}

	deltaLambda := wavelengthGrid.Deltas()
	for i := range deltaLambda {
		deltaLambda[i] = math.Abs(deltaLambda[i])
	}

	results := make([]*Result, len(c.reactions))
	for ri, reaction := range c.reactions {
		J := make([]float64, nLevels)
		for level := 0; level < nLevels; level++ {
			layer := level
			if layer >= nLayers {
				layer = nLayers - 1
			}
			var T, nAir float64
			if nLayers > 0 {
				T = temps[layer]
				nAir = airDensities[layer]
			} else {
				T = fallbackTemperatureK
			}

			sigma, err := reaction.CrossSection.Calculate(wavelengthGrid, T)
			if err != nil {
				return nil, err
			}
			phi, err := reaction.QuantumYield.Calculate(wavelengthGrid, T, nAir)
			if err != nil {
				return nil, err
			}

			actinic := field.TotalActinicFlux(level)
			var sum float64
			for j := 0; j < len(sigma) && j < len(phi) && j < len(actinic) && j < len(deltaLambda); j++ {
				sum += actinic[j] * sigma[j] * phi[j] * deltaLambda[j]
			}
			J[level] = sum
		}
		results[ri] = &Result{Name: reaction.Name, J: J}
	}
	return results, nil
}
