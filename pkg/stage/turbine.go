package stage

import (
	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/types"
)

// TurbineConfig holds the turbine design point.
// Gas.Gamma and Gas.Cp are used; Gas.R is ignored.
type TurbineConfig struct {
	CompressorWork       float64 // W, power the turbine must deliver to the compressor
	MechanicalEfficiency float64 // n_mech in (0,1]
	IsentropicEfficiency float64 // n_turbine in (0,1]
	Gas                  gas.Properties
}

// TurbineResult is the turbine evaluation.
type TurbineResult struct {
	WorkRequired         float64 // W_c/n_mech, W
	IdealExitTemperature float64 // T05', K
	ExitTemperature      float64 // T05, K
	ExitPressure         float64 // P05, Pa
	ExitEnthalpy         float64 // h05, J/kg
	EnergyFlow           float64 // W
	IrreversibleLoss     float64 // cp*(T05-T05')*m, W
	CompressorWork       float64 // W

	Exit State
}

// EnergyBudget partitions turbine energy for reporting.
// The three terms are not an exact conservation law.
type EnergyBudget struct {
	CompressorWork   float64 `json:"compressor_work_w"`
	IrreversibleLoss float64 `json:"irreversible_loss_w"`
	ExitEnergyFlow   float64 `json:"exit_energy_flow_w"`
}

// Turbine extracts the compressor work from the combustor exit flow.
func Turbine(in State, cfg TurbineConfig) (TurbineResult, error) {
	if err := in.Validate(StationTurbine); err != nil {
		return TurbineResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return TurbineResult{}, err
	}

	g, cp := cfg.Gas.Gamma, cfg.Gas.Cp
	t04, m := in.T0, in.MassFlow

	t05Ideal := t04 - cfg.CompressorWork/(cp*m)
	if t05Ideal <= 0 {
		return TurbineResult{}, domainErr(StationTurbine, "T05'", t05Ideal, "compressor work exceeds flow enthalpy")
	}
	// only the fraction n_turbine of the ideal drop is realised
	t05 := t04 - cfg.IsentropicEfficiency*(t04-t05Ideal)
	p05 := gas.IsentropicPressure(in.P0, t05Ideal, t04, g)
	h05 := cp * t05

	exit := NewState(StationTurbine, p05, t05, h05, m)
	return TurbineResult{
		WorkRequired:         cfg.CompressorWork / cfg.MechanicalEfficiency,
		IdealExitTemperature: t05Ideal,
		ExitTemperature:      t05,
		ExitPressure:         p05,
		ExitEnthalpy:         h05,
		EnergyFlow:           exit.EnergyFlow,
		IrreversibleLoss:     cp * (t05 - t05Ideal) * m,
		CompressorWork:       cfg.CompressorWork,
		Exit:                 exit,
	}, nil
}

// EnergyBudget returns the compressor work, irreversible loss and exit energy flow.
func (r TurbineResult) EnergyBudget() EnergyBudget {
	return EnergyBudget{
		CompressorWork:   r.CompressorWork,
		IrreversibleLoss: r.IrreversibleLoss,
		ExitEnergyFlow:   r.EnergyFlow,
	}
}

func (cfg TurbineConfig) validate() error {
	c := check{stage: StationTurbine}
	c.nonNegative("W_compressor", cfg.CompressorWork)
	c.efficiency("n_mech", cfg.MechanicalEfficiency)
	c.efficiency("n_turbine", cfg.IsentropicEfficiency)
	c.gamma("gamma", cfg.Gas.Gamma)
	c.positive("cp", cfg.Gas.Cp)
	return c.err
}

// Quantities lists the turbine outputs in report order.
func (r TurbineResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Turbine work required", r.WorkRequired, "W", 2),
		types.Q("T05' (ideal exit temperature)", r.IdealExitTemperature, "K", 2),
		types.Q("T05 (stagnation temperature at turbine exit)", r.ExitTemperature, "K", 2),
		types.Q("P05 (stagnation pressure at turbine exit)", r.ExitPressure, "Pa", 2),
		types.Q("h05 (stagnation enthalpy at turbine exit)", r.ExitEnthalpy, "J/kg", 2),
		types.Q("Exit energy flow", r.EnergyFlow, "W", 2),
		types.Q("Irreversible loss", r.IrreversibleLoss, "W", 2),
	}
}
