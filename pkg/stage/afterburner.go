package stage

import "github.com/ja7ad/jetcycle/pkg/types"

// DefaultAfterburnerPressureLoss is the reference stagnation pressure fraction
// lost across the afterburner.
const DefaultAfterburnerPressureLoss = 0.05

// AfterburnerConfig holds the reheat design point.
// Units:
//   - ExitTemperature: T06, K
//   - Cp: J/(kg*K)
//   - LHV: J/kg
//   - PressureLoss: fraction of P05 lost, [0,1)
type AfterburnerConfig struct {
	ExitTemperature float64
	Cp              float64
	LHV             float64
	PressureLoss    float64
}

// AfterburnerResult is the reheat evaluation.
type AfterburnerResult struct {
	FuelAirRatio    float64 // f_ab
	FuelMassFlow    float64 // kg/s
	TotalMassFlow   float64 // kg/s
	ExitTemperature float64 // K
	ExitEnthalpy    float64 // J/kg
	EnergyFlow      float64 // W
	ExitPressure    float64 // Pa
	EnergyAdded     float64 // exit minus inlet energy flow, W

	Exit State
}

// Afterburner reheats the turbine exit flow to cfg.ExitTemperature.
func Afterburner(in State, cfg AfterburnerConfig) (AfterburnerResult, error) {
	if err := in.Validate(StationAfterburner); err != nil {
		return AfterburnerResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return AfterburnerResult{}, err
	}

	cp, t06 := cfg.Cp, cfg.ExitTemperature
	denom := cfg.LHV - cp*t06
	if denom <= 0 {
		return AfterburnerResult{}, domainErr(StationAfterburner, "LHV-cp*T06", denom, "unrealizable fuel-air energy balance")
	}
	if t06 < in.T0 {
		return AfterburnerResult{}, domainErr(StationAfterburner, "T06", t06, "below turbine exit temperature")
	}

	fab := cp * (t06 - in.T0) / denom
	mf := fab * in.MassFlow
	mNew := in.MassFlow + mf
	h06 := cp * t06

	p06 := in.P0 * (1 - cfg.PressureLoss)

	exit := NewState(StationAfterburner, p06, t06, h06, mNew)
	return AfterburnerResult{
		FuelAirRatio:    fab,
		FuelMassFlow:    mf,
		TotalMassFlow:   mNew,
		ExitTemperature: t06,
		ExitEnthalpy:    h06,
		EnergyFlow:      exit.EnergyFlow,
		ExitPressure:    p06,
		EnergyAdded:     exit.EnergyFlow - in.EnergyFlow,
		Exit:            exit,
	}, nil
}

func (cfg AfterburnerConfig) validate() error {
	c := check{stage: StationAfterburner}
	c.positive("T06", cfg.ExitTemperature)
	c.positive("cp", cfg.Cp)
	c.positive("LHV", cfg.LHV)
	c.fraction("loss_fraction", cfg.PressureLoss)
	return c.err
}

// Quantities lists the afterburner outputs in report order.
func (r AfterburnerResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Fuel-to-air ratio in afterburner", r.FuelAirRatio, "", 4),
		types.Q("Fuel mass flow rate in afterburner", r.FuelMassFlow, "kg/s", 4),
		types.Q("New total mass flow rate after afterburner", r.TotalMassFlow, "kg/s", 4),
		types.Q("Specific enthalpy at afterburner exit", r.ExitEnthalpy, "J/kg", 4),
		types.Q("Energy flow at afterburner exit", r.EnergyFlow, "W", 4),
		types.Q("Pressure at afterburner exit", r.ExitPressure, "Pa", 4),
		types.Q("Energy added in afterburner", r.EnergyAdded, "W", 4),
	}
}
