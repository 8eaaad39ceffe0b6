package engine

import (
	"fmt"
	"io"

	"github.com/ja7ad/jetcycle/pkg/stage"
	"github.com/ja7ad/jetcycle/pkg/util"
	"github.com/sirupsen/logrus"
)

// Engine evaluates one design point through all stages.
type Engine struct {
	cfg *Config
	log logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger stage evaluations are reported to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an engine for cfg. A nil cfg selects DefaultConfig; otherwise
// cfg is copied as given. Out-of-range values (an efficiency of 1.2, say) are
// neither clamped nor replaced; Run reports them.
func New(cfg *Config, opts ...Option) *Engine {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	e := &Engine{cfg: DefaultConfig(), log: quiet}
	if cfg != nil {
		c := *cfg
		e.cfg = &c
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns a copy of the effective design point.
func (e *Engine) Config() Config {
	return *e.cfg
}

// Run evaluates the cycle once. Each stage consumes the previous stage's exit
// State; the first failing stage aborts the run.
func (e *Engine) Run() (*Result, error) {
	cfg := e.cfg
	res := &Result{}
	var err error

	if res.Inlet, err = stage.Inlet(cfg.Inlet); err != nil {
		return nil, fmt.Errorf("evaluate cycle: %w", err)
	}
	e.logStage(res.Inlet.Exit)

	if res.Compressor, err = stage.Compressor(res.Inlet.Exit, cfg.Compressor); err != nil {
		return nil, fmt.Errorf("evaluate cycle: %w", err)
	}
	e.logStage(res.Compressor.Exit)

	if res.Combustor, err = stage.Combustor(res.Compressor.Exit, cfg.Combustor); err != nil {
		return nil, fmt.Errorf("evaluate cycle: %w", err)
	}
	e.logStage(res.Combustor.Exit)

	tcfg := cfg.Turbine
	tcfg.CompressorWork = e.compressorWork(res.Compressor)
	if res.Turbine, err = stage.Turbine(res.Combustor.Exit, tcfg); err != nil {
		return nil, fmt.Errorf("evaluate cycle: %w", err)
	}
	e.logStage(res.Turbine.Exit)

	last := res.Turbine.Exit
	fuel := res.Combustor.FuelMassFlow
	if !cfg.Dry {
		ab, err := stage.Afterburner(last, cfg.Afterburner)
		if err != nil {
			return nil, fmt.Errorf("evaluate cycle: %w", err)
		}
		e.logStage(ab.Exit)
		res.Afterburner = &ab
		last = ab.Exit
		fuel += ab.FuelMassFlow
	}

	ncfg := cfg.Nozzle
	ncfg.ReferenceMassFlow = res.Inlet.Exit.MassFlow
	ncfg.FlightVelocity = e.flightVelocity()
	if res.Nozzle, err = stage.Nozzle(last, ncfg); err != nil {
		return nil, fmt.Errorf("evaluate cycle: %w", err)
	}
	e.logStage(res.Nozzle.Exit)

	air := res.Inlet.Exit.MassFlow
	res.Performance = Performance{
		Thrust:         res.Nozzle.Thrust,
		AirMassFlow:    air,
		FuelFlow:       fuel,
		SpecificThrust: res.Nozzle.Thrust / air,
		TSFC:           util.SafeDiv(fuel, res.Nozzle.Thrust),
	}

	e.log.WithFields(logrus.Fields{
		"thrust_n":   res.Performance.Thrust,
		"fuel_kg_s":  fuel,
		"work_basis": cfg.WorkBasis.String(),
		"dry":        cfg.Dry,
		"static":     cfg.Static,
	}).Debug("cycle evaluated")

	return res, nil
}

func (e *Engine) compressorWork(c stage.CompressorResult) float64 {
	if e.cfg.WorkBasis == WorkExitEnergy {
		return c.EnergyFlow
	}
	return c.Work
}

// flightVelocity is the free-stream speed charged as ram drag: the inlet
// velocity, or zero for a static test stand.
func (e *Engine) flightVelocity() float64 {
	if e.cfg.Static {
		return 0
	}
	return e.cfg.Inlet.Velocity
}

func (e *Engine) logStage(s stage.State) {
	e.log.WithFields(logrus.Fields{
		"station":        s.Station,
		"p0_pa":          s.P0,
		"t0_k":           s.T0,
		"mass_flow_kg_s": s.MassFlow,
		"energy_flow_w":  s.EnergyFlow,
	}).Debug("stage evaluated")
}
