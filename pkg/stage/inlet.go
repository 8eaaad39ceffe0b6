package stage

import (
	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/types"
)

// InletConfig holds the free-stream conditions and diffuser coefficients.
// Units:
//   - StaticPressure: Pa (P1)
//   - StaticTemperature: K (T1)
//   - Velocity, ExitVelocity: m/s (V1 free stream, V2 diffuser exit)
//   - AdiabaticEfficiency: eta_i in (0,1]
//   - PressureRecovery: eta_p in (0,1]
//   - MassFlow: kg/s
type InletConfig struct {
	StaticPressure      float64
	StaticTemperature   float64
	Velocity            float64
	ExitVelocity        float64
	Gas                 gas.Properties
	AdiabaticEfficiency float64
	PressureRecovery    float64
	MassFlow            float64
}

// InletResult is the diffuser evaluation.
type InletResult struct {
	IdealStagnationTemperature  float64 // T0, K
	IdealStagnationPressure     float64 // P1*(T0/T1)^(g/(g-1)), Pa
	RealStagnationTemperature   float64 // T0_real, K
	RealStagnationPressure      float64 // P0_real, Pa
	RecoveredStagnationPressure float64 // eta_p*P0_real, Pa
	StagnationEnthalpy          float64 // J/kg
	EnergyFlow                  float64 // W

	ExitStaticTemperature          float64 // T2, K
	ExitIdealStagnationTemperature float64 // T2 + V2^2/(2cp), K
	ExitStaticPressure             float64 // P2, Pa
	// OutletIdealStagnationPressure is P0_actual*(T0_outlet/T2)^(g/(g-1)), Pa.
	// PressureLostPct is measured against IdealStagnationPressure, not this value.
	OutletIdealStagnationPressure float64

	InletMach    float64
	ExitMach     float64
	InletDensity float64 // kg/m^3
	ExitDensity  float64 // kg/m^3
	AreaRatio    float64 // A1/A2

	PressureLostPct float64

	Exit State
}

// Inlet evaluates the diffuser from free-stream static conditions.
func Inlet(cfg InletConfig) (InletResult, error) {
	if err := cfg.validate(); err != nil {
		return InletResult{}, err
	}

	g, r, cp := cfg.Gas.Gamma, cfg.Gas.R, cfg.Gas.Cp
	p1, t1 := cfg.StaticPressure, cfg.StaticTemperature
	v1, v2 := cfg.Velocity, cfg.ExitVelocity

	t0 := gas.StagnationTemperature(t1, v1, cp)
	t0Real := t1 + cfg.AdiabaticEfficiency*(t0-t1)
	p0Real := gas.IsentropicPressure(p1, t0Real, t1, g)
	p0Ideal := gas.IsentropicPressure(p1, t0, t1, g)
	p0Actual := cfg.PressureRecovery * p0Real
	h0 := cp * t0Real

	t2 := t1 + (v1*v1-v2*v2)/(2*cp)
	if t2 <= 0 {
		return InletResult{}, domainErr(StationInlet, "T2", t2, "exit velocity leaves no static temperature")
	}
	t0Exit := gas.StagnationTemperature(t2, v2, cp)
	p2 := gas.IsentropicPressure(p0Actual, t2, t0Exit, g)
	p0Outlet := gas.IsentropicPressure(p0Actual, t0Exit, t2, g)

	m1 := v1 / gas.SpeedOfSound(g, r, t1)
	m2 := v2 / gas.SpeedOfSound(g, r, t2)

	rho1 := gas.Density(p1, r, t1)
	rho2 := gas.Density(p2, r, t2)

	exit := NewState(StationInlet, p0Actual, t0Real, h0, cfg.MassFlow)
	return InletResult{
		IdealStagnationTemperature:     t0,
		IdealStagnationPressure:        p0Ideal,
		RealStagnationTemperature:      t0Real,
		RealStagnationPressure:         p0Real,
		RecoveredStagnationPressure:    p0Actual,
		StagnationEnthalpy:             h0,
		EnergyFlow:                     exit.EnergyFlow,
		ExitStaticTemperature:          t2,
		ExitIdealStagnationTemperature: t0Exit,
		ExitStaticPressure:             p2,
		OutletIdealStagnationPressure:  p0Outlet,
		InletMach:                      m1,
		ExitMach:                       m2,
		InletDensity:                   rho1,
		ExitDensity:                    rho2,
		// continuity: rho1*V1*A1 = rho2*V2*A2
		AreaRatio:       (v2 / v1) * (rho2 / rho1),
		PressureLostPct: (p0Ideal - p0Actual) / p0Ideal * 100,
		Exit:            exit,
	}, nil
}

func (cfg InletConfig) validate() error {
	// A negative velocity is a negative Mach number, which is a domain error
	// rather than a range error.
	if cfg.Velocity < 0 {
		return domainErr(StationInlet, "V1", cfg.Velocity, "negative Mach number")
	}
	if cfg.ExitVelocity < 0 {
		return domainErr(StationInlet, "V2", cfg.ExitVelocity, "negative Mach number")
	}

	c := check{stage: StationInlet}
	c.positive("P1", cfg.StaticPressure)
	c.positive("T1", cfg.StaticTemperature)
	c.positive("V1", cfg.Velocity)
	c.positive("V2", cfg.ExitVelocity)
	c.gamma("gamma", cfg.Gas.Gamma)
	c.positive("R", cfg.Gas.R)
	c.positive("cp", cfg.Gas.Cp)
	c.efficiency("eta_i", cfg.AdiabaticEfficiency)
	c.efficiency("eta_p", cfg.PressureRecovery)
	c.positive("mass_flow", cfg.MassFlow)
	return c.err
}

// Quantities lists the inlet outputs in report order.
func (r InletResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Ideal Stagnation Temperature (T0)", r.IdealStagnationTemperature, "K", 2),
		types.Q("Ideal Stagnation Pressure (P0)", r.IdealStagnationPressure, "Pa", 2),
		types.Q("Real Stagnation Temperature (T0_real)", r.RealStagnationTemperature, "K", 2),
		types.Q("Real Stagnation Pressure at Station 1 (P0_real)", r.RealStagnationPressure, "Pa", 2),
		types.Q("Real Stagnation Pressure after Efficiency (P0_real_after_eta_p)", r.RecoveredStagnationPressure, "Pa", 2),
		types.Q("Stagnation Enthalpy (h0_real)", r.StagnationEnthalpy, "J/kg", 2),
		types.Q("Energy Flow (energy_flow)", r.EnergyFlow, "W", 2),
		types.Q("Static Temperature at Outlet (T2)", r.ExitStaticTemperature, "K", 2),
		types.Q("Ideal Stagnation Temperature at Outlet (T0_outlet)", r.ExitIdealStagnationTemperature, "K", 2),
		types.Q("Static Pressure at Outlet (P2)", r.ExitStaticPressure, "Pa", 2),
		types.Q("Ideal Stagnation Pressure at Outlet (P0_outlet)", r.OutletIdealStagnationPressure, "Pa", 2),
		types.Q("Mach Number at Inlet (M1)", r.InletMach, "", 2),
		types.Q("Mach Number at Outlet (M2)", r.ExitMach, "", 2),
		types.Q("Density at Inlet (rho1)", r.InletDensity, "kg/m^3", 2),
		types.Q("Density at Outlet (rho2)", r.ExitDensity, "kg/m^3", 2),
		types.Q("Area Ratio (A1/A2)", r.AreaRatio, "", 2),
		types.Q("Pressure Lost due to Inefficiencies", r.PressureLostPct, "%", 2),
	}
}
