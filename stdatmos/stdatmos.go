// Package stdatmos provides a US Standard Atmosphere 1976 approximation of
// temperature, pressure, and air density as a function of altitude, for
// callers who want to run a model without supplying their own profiles.
package stdatmos

import "math"

const boltzmann = 1.380649e-23 // J/K

// Temperature returns T(z) [K] for altitude z [km].
func Temperature(altitudeKm float64) float64 {
	switch {
	case altitudeKm < 11:
		return 288.15 - 6.5*altitudeKm
	case altitudeKm < 20:
		return 216.65
	case altitudeKm < 32:
		return 216.65 + 1.0*(altitudeKm-20)
	case altitudeKm < 47:
		return 228.65 + 2.8*(altitudeKm-32)
	case altitudeKm < 51:
		return 270.65
	case altitudeKm < 71:
		return 270.65 - 2.8*(altitudeKm-51)
	default:
		return 214.65 - 2.0*(altitudeKm-71)
	}
}

// Pressure returns P(z) [hPa] for altitude z [km].
func Pressure(altitudeKm float64) float64 {
	switch {
	case altitudeKm < 11:
		T := Temperature(altitudeKm)
		return 1013.25 * math.Pow(T/288.15, 5.2559)
	case altitudeKm < 20:
		const p11 = 226.32
		return p11 * math.Exp(-0.1577*(altitudeKm-11))
	case altitudeKm < 32:
		const p20 = 54.75
		T := Temperature(altitudeKm)
		return p20 * math.Pow(T/216.65, -34.163)
	case altitudeKm < 47:
		const p32 = 8.68
		T := Temperature(altitudeKm)
		return p32 * math.Pow(T/228.65, -12.201)
	default:
		const p47 = 1.11
		return p47 * math.Exp(-0.15*(altitudeKm-47))
	}
}

// AirDensity returns n [molecules/cm^3] from temperature [K] and pressure
// [hPa].
func AirDensity(temperatureK, pressureHPa float64) float64 {
	pPa := pressureHPa * 100
	nPerM3 := pPa / (boltzmann * temperatureK)
	return nPerM3 * 1e-6
}

// TemperatureProfile generates T(z) for every midpoint.
func TemperatureProfile(altitudeMidpointsKm []float64) []float64 {
	out := make([]float64, len(altitudeMidpointsKm))
	for i, z := range altitudeMidpointsKm {
		out[i] = Temperature(z)
	}
	return out
}

// PressureProfile generates P(z) for every midpoint.
func PressureProfile(altitudeMidpointsKm []float64) []float64 {
	out := make([]float64, len(altitudeMidpointsKm))
	for i, z := range altitudeMidpointsKm {
		out[i] = Pressure(z)
	}
	return out
}

// AirDensityProfile generates n(z) for every midpoint.
func AirDensityProfile(altitudeMidpointsKm []float64) []float64 {
	out := make([]float64, len(altitudeMidpointsKm))
	for i, z := range altitudeMidpointsKm {
		T := Temperature(z)
		P := Pressure(z)
		out[i] = AirDensity(T, P)
	}
	return out
}
