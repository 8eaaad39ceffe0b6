// Package gas holds the calorically perfect ideal-gas relations the engine
// stages are built from. Every function is a closed-form mapping; callers
// validate their inputs.
package gas

import (
	"math"

	"github.com/ja7ad/jetcycle/pkg/util"
)

// Properties describes a calorically perfect gas.
// Units:
//   - Gamma: dimensionless ratio of specific heats cp/cv
//   - R: J/(kg*K), specific gas constant
//   - Cp: J/(kg*K), specific heat at constant pressure
type Properties struct {
	Gamma float64
	R     float64
	Cp    float64
}

// Air is dry air at ambient conditions.
var Air = Properties{Gamma: 1.4, R: 287.05, Cp: 1005}

// CombustionProducts is the hot-section gas downstream of the burner.
var CombustionProducts = Properties{Gamma: 1.333, R: 287.05, Cp: 1150}

// Exponent returns gamma/(gamma-1), the isentropic P-T exponent.
func Exponent(gamma float64) float64 {
	return gamma / (gamma - 1)
}

// SpeedOfSound returns a = sqrt(gamma*R*T) in m/s.
func SpeedOfSound(gamma, r, t float64) float64 {
	return math.Sqrt(gamma * r * t)
}

// Density returns rho = P/(R*T) in kg/m^3.
func Density(p, r, t float64) float64 {
	return p / (r * t)
}

// StagnationTemperature returns T + V^2/(2*cp).
func StagnationTemperature(t, v, cp float64) float64 {
	return t + v*v/(2*cp)
}

// IsentropicPressure returns p * (t2/t1)^(gamma/(gamma-1)).
func IsentropicPressure(p, t2, t1, gamma float64) float64 {
	return p * util.Pow(t2/t1, Exponent(gamma))
}

// TemperatureRatio returns T0/T = 1 + (gamma-1)/2 * M^2.
func TemperatureRatio(mach, gamma float64) float64 {
	return 1 + (gamma-1)/2*mach*mach
}

// PressureRatio returns P0/P = (T0/T)^(gamma/(gamma-1)).
func PressureRatio(mach, gamma float64) float64 {
	return util.Pow(TemperatureRatio(mach, gamma), Exponent(gamma))
}

// AreaRatio returns A/A* for isentropic flow at the given Mach number.
// The bracket is written as (2 + (gamma-1)M^2)/(gamma+1) so that M = 1 yields exactly 1.
func AreaRatio(mach, gamma float64) float64 {
	base := (2 + (gamma-1)*mach*mach) / (gamma + 1)
	return (1 / mach) * math.Pow(base, (gamma+1)/(2*(gamma-1)))
}
