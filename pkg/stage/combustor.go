package stage

import "github.com/ja7ad/jetcycle/pkg/types"

// CombustorConfig holds the burner design point.
// Units:
//   - FuelAirRatio: f, kg fuel per kg air, >= 0
//   - Efficiency: n_b in (0,1]
//   - LHV: J/kg, fuel lower heating value
//   - Cp: J/(kg*K)
//   - PressureLossRatio: fraction of P03 lost, [0,1)
//   - StoichiometricRatio: f_stoich, > 0
type CombustorConfig struct {
	FuelAirRatio        float64
	Efficiency          float64
	LHV                 float64
	Cp                  float64
	PressureLossRatio   float64
	StoichiometricRatio float64
}

// CombustorResult is the burner evaluation.
type CombustorResult struct {
	FuelAirRatio     float64
	ExitTemperature  float64
	ExitEnthalpy     float64
	ExitPressure     float64
	FuelMassFlow     float64
	TotalMassFlow    float64
	EnergyFlow       float64
	EquivalenceRatio float64
	HeatAdded        float64
	TemperatureRise  float64
	EnthalpyRise     float64

	Exit State
}

// Combustor adds fuel to the compressor exit flow.
func Combustor(in State, cfg CombustorConfig) (CombustorResult, error) {
	if err := in.Validate(StationCombustor); err != nil {
		return CombustorResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return CombustorResult{}, err
	}
	return combust(in, cfg), nil
}

// CombustorSweep evaluates the combustor once per fuel-air ratio.
// Points are independent; the output keeps the input order.
func CombustorSweep(in State, cfg CombustorConfig, fs []float64) ([]CombustorResult, error) {
	if err := in.Validate(StationCombustor); err != nil {
		return nil, err
	}
	out := make([]CombustorResult, len(fs))
	for i, f := range fs {
		cfg.FuelAirRatio = f
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		out[i] = combust(in, cfg)
	}
	return out, nil
}

func combust(in State, cfg CombustorConfig) CombustorResult {
	f, cp := cfg.FuelAirRatio, cfg.Cp
	t03 := in.T0

	t04 := t03 + cfg.Efficiency*f*cfg.LHV/cp
	h04 := cp * t04
	p04 := in.P0 * (1 - cfg.PressureLossRatio)
	mf := in.MassFlow * f
	mTotal := in.MassFlow * (1 + f)

	exit := NewState(StationCombustor, p04, t04, h04, mTotal)
	return CombustorResult{
		FuelAirRatio:     f,
		ExitTemperature:  t04,
		ExitEnthalpy:     h04,
		ExitPressure:     p04,
		FuelMassFlow:     mf,
		TotalMassFlow:    mTotal,
		EnergyFlow:       exit.EnergyFlow,
		EquivalenceRatio: f / cfg.StoichiometricRatio,
		HeatAdded:        cfg.LHV * mf,
		TemperatureRise:  t04 - t03,
		EnthalpyRise:     cp * (t04 - t03),
		Exit:             exit,
	}
}

func (cfg CombustorConfig) validate() error {
	c := check{stage: StationCombustor}
	c.nonNegative("f", cfg.FuelAirRatio)
	c.efficiency("n_b", cfg.Efficiency)
	c.positive("LHV", cfg.LHV)
	c.positive("cp", cfg.Cp)
	c.fraction("p_loss_ratio", cfg.PressureLossRatio)
	c.positive("f_stoich", cfg.StoichiometricRatio)
	return c.err
}

// Quantities lists the combustor outputs in report order.
func (r CombustorResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Stagnation temperature at combustor exit", r.ExitTemperature, "K", 2),
		types.Q("Exit enthalpy at combustor exit", r.ExitEnthalpy, "J/kg", 2),
		types.Q("Stagnation pressure at combustor exit", r.ExitPressure, "Pa", 2),
		types.Q("Fuel mass flow rate", r.FuelMassFlow, "kg/s", 2),
		types.Q("Total mass flow rate", r.TotalMassFlow, "kg/s", 2),
		types.Q("Energy flow at combustor exit", r.EnergyFlow, "W", 2),
		types.Q("Equivalence ratio", r.EquivalenceRatio, "", 2),
		types.Q("Heat added in combustor", r.HeatAdded, "W", 2),
		types.Q("Temperature rise in combustor", r.TemperatureRise, "K", 2),
		types.Q("Enthalpy rise in combustor", r.EnthalpyRise, "J/kg", 2),
	}
}
