package engine

import (
	"fmt"

	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/stage"
)

// WorkBasis selects the power the turbine must deliver to the compressor.
type WorkBasis int

const (
	// WorkShaft charges the turbine with m*cp*(T02-T01).
	WorkShaft WorkBasis = iota
	// WorkExitEnergy charges the turbine with the compressor exit energy flow m*h02.
	WorkExitEnergy
)

func (w WorkBasis) String() string {
	switch w {
	case WorkShaft:
		return "shaft"
	case WorkExitEnergy:
		return "exit-energy"
	default:
		return fmt.Sprintf("WorkBasis(%d)", int(w))
	}
}

// ParseWorkBasis maps "shaft" or "exit-energy" to a WorkBasis. Empty selects WorkShaft.
func ParseWorkBasis(s string) (WorkBasis, error) {
	switch s {
	case "", "shaft":
		return WorkShaft, nil
	case "exit-energy":
		return WorkExitEnergy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkBasis, s)
	}
}

// Config is the full design point.
//
// Turbine.CompressorWork, Nozzle.ReferenceMassFlow and Nozzle.FlightVelocity
// are derived from the upstream stages during Run; values set here are
// overwritten. The ram-drag velocity is Inlet.Velocity unless Static is set.
type Config struct {
	Inlet       stage.InletConfig
	Compressor  stage.CompressorConfig
	Combustor   stage.CombustorConfig
	Turbine     stage.TurbineConfig
	Afterburner stage.AfterburnerConfig
	Nozzle      stage.NozzleConfig

	WorkBasis WorkBasis
	// Dry skips the afterburner and feeds the turbine exit to the nozzle.
	Dry bool
	// Static evaluates thrust on a test stand: no ram drag is charged
	// even though the inlet still sees Inlet.Velocity.
	Static bool
}

// DefaultConfig returns the reference design point: a 115 kg/s turbojet at
// 237 m/s through sea-level air, pressure ratio 30, reheated to 2400 K and
// expanded to Mach 2, with thrust taken on a static stand.
func DefaultConfig() *Config {
	return &Config{
		Inlet: stage.InletConfig{
			StaticPressure:      101325, // Pa
			StaticTemperature:   288.15, // K
			Velocity:            237,    // m/s
			ExitVelocity:        40,     // m/s
			Gas:                 gas.Air,
			AdiabaticEfficiency: 0.96,
			PressureRecovery:    0.99,
			MassFlow:            115, // kg/s
		},
		Compressor: stage.CompressorConfig{
			PressureRatio: 30,
			Efficiency:    0.88,
			Gas:           gas.Air,
		},
		Combustor: stage.CombustorConfig{
			FuelAirRatio:        0.02,
			Efficiency:          0.98,
			LHV:                 43e6, // J/kg, Jet-A
			Cp:                  1150,
			PressureLossRatio:   0.06,
			StoichiometricRatio: 0.067, // Jet-A
		},
		Turbine: stage.TurbineConfig{
			MechanicalEfficiency: 0.98,
			IsentropicEfficiency: 0.98,
			Gas:                  gas.CombustionProducts,
		},
		Afterburner: stage.AfterburnerConfig{
			ExitTemperature: 2400, // K
			Cp:              1150,
			LHV:             43e6,
			PressureLoss:    stage.DefaultAfterburnerPressureLoss,
		},
		Nozzle: stage.NozzleConfig{
			ExitMach:        2.0,
			Gas:             gas.Properties{Gamma: 1.3333, R: 287.05, Cp: 1150},
			AmbientPressure: 101325, // Pa
		},
		WorkBasis: WorkShaft,
		Static:    true,
	}
}

// Performance is the whole-engine summary.
type Performance struct {
	Thrust         float64 `json:"thrust_n"`
	AirMassFlow    float64 `json:"air_mass_flow_kg_s"`
	FuelFlow       float64 `json:"fuel_flow_kg_s"`
	SpecificThrust float64 `json:"specific_thrust_n_s_per_kg"`
	TSFC           float64 `json:"tsfc_kg_per_n_s"`
}

// Result holds every stage evaluation of one Run.
// Afterburner is nil for a dry cycle.
type Result struct {
	Inlet       stage.InletResult        `json:"inlet"`
	Compressor  stage.CompressorResult   `json:"compressor"`
	Combustor   stage.CombustorResult    `json:"combustor"`
	Turbine     stage.TurbineResult      `json:"turbine"`
	Afterburner *stage.AfterburnerResult `json:"afterburner,omitempty"`
	Nozzle      stage.NozzleResult       `json:"nozzle"`
	Performance Performance              `json:"performance"`
}

// States returns the exit State of each evaluated stage in flow order.
func (r *Result) States() []stage.State {
	out := []stage.State{
		r.Inlet.Exit,
		r.Compressor.Exit,
		r.Combustor.Exit,
		r.Turbine.Exit,
	}
	if r.Afterburner != nil {
		out = append(out, r.Afterburner.Exit)
	}
	return append(out, r.Nozzle.Exit)
}
