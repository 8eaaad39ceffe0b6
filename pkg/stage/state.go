package stage

import "github.com/ja7ad/jetcycle/pkg/util"

// Station names the engine location a State describes.
type Station string

const (
	StationInlet       Station = "inlet"
	StationCompressor  Station = "compressor"
	StationCombustor   Station = "combustor"
	StationTurbine     Station = "turbine"
	StationAfterburner Station = "afterburner"
	StationNozzle      Station = "nozzle"
)

// Stations lists every station in flow order.
var Stations = []Station{
	StationInlet,
	StationCompressor,
	StationCombustor,
	StationTurbine,
	StationAfterburner,
	StationNozzle,
}

// State is the stagnation condition at a station exit.
// It is passed by value; stages never modify their input.
type State struct {
	Station    Station `json:"station"`
	P0         float64 `json:"p0_pa"`          // Pa
	T0         float64 `json:"t0_k"`           // K
	H0         float64 `json:"h0_j_per_kg"`    // J/kg
	MassFlow   float64 `json:"mass_flow_kg_s"` // kg/s
	EnergyFlow float64 `json:"energy_flow_w"`  // W
}

// NewState builds a State whose energy flow is massFlow*h0.
func NewState(st Station, p0, t0, h0, massFlow float64) State {
	return State{
		Station:    st,
		P0:         p0,
		T0:         t0,
		H0:         h0,
		MassFlow:   massFlow,
		EnergyFlow: massFlow * h0,
	}
}

// Validate checks that pressure, temperature and mass flow are positive and finite.
// The error is attributed to the consuming stage.
func (s State) Validate(consumer Station) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"P0", s.P0},
		{"T0", s.T0},
		{"mass_flow", s.MassFlow},
	} {
		if !util.Finite(f.v) || f.v <= 0 {
			return &Error{
				Stage:  consumer,
				Param:  string(s.Station) + "." + f.name,
				Value:  f.v,
				Reason: "must be positive and finite",
				Err:    ErrInvalidState,
			}
		}
	}
	return nil
}
