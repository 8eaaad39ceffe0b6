package stage

import (
	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/types"
)

// NozzleConfig holds the exhaust design point.
// Gas.Gamma and Gas.R are used; Gas.Cp is ignored.
// Units:
//   - ExitMach: M_e, > 0
//   - AmbientPressure: Pa
//   - FlightVelocity: u0, m/s
//   - ReferenceMassFlow: kg/s charged with ram drag m*u0
type NozzleConfig struct {
	ExitMach          float64
	Gas               gas.Properties
	AmbientPressure   float64
	FlightVelocity    float64
	ReferenceMassFlow float64
}

// NozzleResult is the exhaust evaluation.
type NozzleResult struct {
	AreaRatio       float64 // A_e/A*
	ExitTemperature float64 // K
	ExitPressure    float64 // Pa
	ExitDensity     float64 // kg/m^3
	ExitVelocity    float64 // m/s
	ExitArea        float64 // m^2
	ThroatArea      float64 // m^2
	MomentumThrust  float64 // N
	PressureThrust  float64 // N
	Thrust          float64 // N

	Exit State
}

// Nozzle expands the flow isentropically to cfg.ExitMach and computes thrust.
func Nozzle(in State, cfg NozzleConfig) (NozzleResult, error) {
	if err := in.Validate(StationNozzle); err != nil {
		return NozzleResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return NozzleResult{}, err
	}

	g, r, me := cfg.Gas.Gamma, cfg.Gas.R, cfg.ExitMach
	mdot := in.MassFlow

	areaRatio := gas.AreaRatio(me, g)
	te := in.T0 / gas.TemperatureRatio(me, g)
	pe := in.P0 / gas.PressureRatio(me, g)
	rhoe := gas.Density(pe, r, te)
	ve := me * gas.SpeedOfSound(g, r, te)
	ae := mdot / (rhoe * ve)

	momentum := mdot*ve - cfg.ReferenceMassFlow*cfg.FlightVelocity
	pressure := (pe - cfg.AmbientPressure) * ae

	// stagnation conditions carry through an isentropic nozzle
	exit := NewState(StationNozzle, in.P0, in.T0, in.H0, mdot)
	return NozzleResult{
		AreaRatio:       areaRatio,
		ExitTemperature: te,
		ExitPressure:    pe,
		ExitDensity:     rhoe,
		ExitVelocity:    ve,
		ExitArea:        ae,
		ThroatArea:      ae / areaRatio,
		MomentumThrust:  momentum,
		PressureThrust:  pressure,
		Thrust:          momentum + pressure,
		Exit:            exit,
	}, nil
}

func (cfg NozzleConfig) validate() error {
	c := check{stage: StationNozzle}
	c.positive("M_e", cfg.ExitMach)
	c.gamma("gamma", cfg.Gas.Gamma)
	c.positive("R", cfg.Gas.R)
	c.positive("P_ambient", cfg.AmbientPressure)
	c.nonNegative("u0", cfg.FlightVelocity)
	c.nonNegative("m_total", cfg.ReferenceMassFlow)
	return c.err
}

// Quantities lists the nozzle outputs in report order.
func (r NozzleResult) Quantities() []types.Quantity {
	return []types.Quantity{
		types.Q("Area Ratio", r.AreaRatio, "", 2),
		types.Q("Exit Temperature", r.ExitTemperature, "K", 2),
		types.Q("Exit Pressure", r.ExitPressure, "Pa", 2),
		types.Q("Exit Density", r.ExitDensity, "kg/m^3", 2),
		types.Q("Exit Velocity", r.ExitVelocity, "m/s", 2),
		types.Q("Nozzle Exit Area", r.ExitArea, "m^2", 2),
		types.Q("Nozzle Throat Area", r.ThroatArea, "m^2", 2),
		types.Q("Momentum Thrust", r.MomentumThrust, "N", 2),
		types.Q("Pressure Thrust", r.PressureThrust, "N", 2),
		types.Q("Thrust", r.Thrust, "N", 2),
	}
}
