package types

import "fmt"

// Pascal is a pressure in Pa.
type Pascal float64

// Humanized returns a human-readable string with automatic unit (Pa, kPa, MPa, GPa).
func (p Pascal) Humanized() string {
	return scaled(float64(p), "Pa")
}

// KPa returns the pressure in kilopascals.
func (p Pascal) KPa() float64 { return float64(p) / 1e3 }

// Bar returns the pressure in bar.
func (p Pascal) Bar() float64 { return float64(p) / 1e5 }

// Watt is a power or energy flow in W.
type Watt float64

// Humanized returns a human-readable string with automatic unit (W, kW, MW, GW).
func (w Watt) Humanized() string {
	return scaled(float64(w), "W")
}

// MW returns the power in megawatts.
func (w Watt) MW() float64 { return float64(w) / 1e6 }

// Newton is a force in N.
type Newton float64

// Humanized returns a human-readable string with automatic unit (N, kN, MN, GN).
func (n Newton) Humanized() string {
	return scaled(float64(n), "N")
}

// KN returns the force in kilonewtons.
func (n Newton) KN() float64 { return float64(n) / 1e3 }

// scaled picks an SI prefix by magnitude; sign is kept.
func scaled(v float64, unit string) string {
	a := v
	if a < 0 {
		a = -a
	}
	switch {
	case a >= 1e9:
		return fmt.Sprintf("%.2f G%s", v/1e9, unit)
	case a >= 1e6:
		return fmt.Sprintf("%.2f M%s", v/1e6, unit)
	case a >= 1e3:
		return fmt.Sprintf("%.2f k%s", v/1e3, unit)
	default:
		return fmt.Sprintf("%.2f %s", v, unit)
	}
}
