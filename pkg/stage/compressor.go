package stage

import (
	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/types"
	"github.com/ja7ad/jetcycle/pkg/util"
)

// CompressorConfig holds the compressor design point.
// Gas.Gamma and Gas.Cp are used; Gas.R is ignored.
type CompressorConfig struct {
	PressureRatio float64 // rp = P02/P01, >= 1
	Efficiency    float64 // eta_c in (0,1]
	Gas           gas.Properties
}

// CompressorResult is the compressor evaluation.
type CompressorResult struct {
	InletPressure        float64 // P01, Pa
	InletTemperature     float64 // T01, K
	ExitPressure         float64 // P02, Pa
	ExitTemperature      float64 // T02, K
	IdealExitTemperature float64 // T02s, K
	ExitEnthalpy         float64 // h02, J/kg
	EnergyFlow           float64 // W
	Work                 float64 // shaft power m*cp*(T02-T01), W

	Exit State
}

// SensitivityPoint is one compressor exit temperature at a given efficiency.
type SensitivityPoint struct {
	Efficiency      float64 `json:"efficiency"`
	ExitTemperature float64 `json:"exit_temperature_k"`
}

// CompressorExitTemperature returns T02 = T01 + (T01/eta)*((P02/P01)^((g-1)/g) - 1).
// The efficiency divides the ideal rise, so T02 falls as eta rises.
func CompressorExitTemperature(t01, p01, p02, eta, gamma float64) float64 {
	return t01 + t01/eta*(util.Pow(p02/p01, (gamma-1)/gamma)-1)
}

// Compressor raises the inlet stagnation state by the configured pressure ratio.
func Compressor(in State, cfg CompressorConfig) (CompressorResult, error) {
	if err := in.Validate(StationCompressor); err != nil {
		return CompressorResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return CompressorResult{}, err
	}

	g, cp := cfg.Gas.Gamma, cfg.Gas.Cp
	p01, t01 := in.P0, in.T0

	p02 := p01 * cfg.PressureRatio
	t02 := CompressorExitTemperature(t01, p01, p02, cfg.Efficiency, g)
	h02 := cp * t02

	exit := NewState(StationCompressor, p02, t02, h02, in.MassFlow)
	return CompressorResult{
		InletPressure:        p01,
		InletTemperature:     t01,
		ExitPressure:         p02,
		ExitTemperature:      t02,
		IdealExitTemperature: t01 * util.Pow(cfg.PressureRatio, (g-1)/g),
		ExitEnthalpy:         h02,
		EnergyFlow:           exit.EnergyFlow,
		Work:                 in.MassFlow * cp * (t02 - t01),
		Exit:                 exit,
	}, nil
}

// CompressorSensitivity recomputes T02 for each efficiency with P01 and P02 held
// at the configured pressure ratio. cfg.Efficiency is ignored.
func CompressorSensitivity(in State, cfg CompressorConfig, etas []float64) ([]SensitivityPoint, error) {
	if err := in.Validate(StationCompressor); err != nil {
		return nil, err
	}
	cfg.Efficiency = 1
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p02 := in.P0 * cfg.PressureRatio
	out := make([]SensitivityPoint, len(etas))
	for i, eta := range etas {
		c := check{stage: StationCompressor}
		c.efficiency("eta_c", eta)
		if c.err != nil {
			return nil, c.err
		}
		out[i] = SensitivityPoint{
			Efficiency:      eta,
			ExitTemperature: CompressorExitTemperature(in.T0, in.P0, p02, eta, cfg.Gas.Gamma),
		}
	}
	return out, nil
}

func (cfg CompressorConfig) validate() error {
	c := check{stage: StationCompressor}
	c.atLeast("rp", cfg.PressureRatio, 1)
	c.efficiency("eta_c", cfg.Efficiency)
	c.gamma("gamma", cfg.Gas.Gamma)
	c.positive("cp", cfg.Gas.Cp)
	return c.err
}

// Quantities lists the compressor outputs in report order.
func (r CompressorResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Stagnation pressure at compressor exit", r.ExitPressure, "Pa", 2),
		types.Q("Stagnation temperature at compressor exit", r.ExitTemperature, "K", 2),
		types.Q("Isentropic temperature at compressor exit", r.IdealExitTemperature, "K", 2),
		types.Q("Stagnation enthalpy at compressor exit", r.ExitEnthalpy, "J/kg", 2),
		types.Q("Energy flow through the compressor", r.EnergyFlow, "W", 2),
		types.Q("Compressor shaft power", r.Work, "W", 2),
	}
}
