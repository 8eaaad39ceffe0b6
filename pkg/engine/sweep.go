package engine

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Param names a design-point scalar that Sweep can vary.
type Param string

const (
	ParamFuelAirRatio           Param = "combustor.fuel_air_ratio"
	ParamCompressorEfficiency   Param = "compressor.efficiency"
	ParamPressureRatio          Param = "compressor.pressure_ratio"
	ParamAfterburnerTemperature Param = "afterburner.exit_temperature"
	ParamExitMach               Param = "nozzle.exit_mach"
)

var setters = map[Param]func(*Config, float64){
	ParamFuelAirRatio:           func(c *Config, v float64) { c.Combustor.FuelAirRatio = v },
	ParamCompressorEfficiency:   func(c *Config, v float64) { c.Compressor.Efficiency = v },
	ParamPressureRatio:          func(c *Config, v float64) { c.Compressor.PressureRatio = v },
	ParamAfterburnerTemperature: func(c *Config, v float64) { c.Afterburner.ExitTemperature = v },
	ParamExitMach:               func(c *Config, v float64) { c.Nozzle.ExitMach = v },
}

// Params lists the sweepable parameters in name order.
func Params() []Param {
	out := make([]Param, 0, len(setters))
	for p := range setters {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// ParseParam validates a parameter name.
func ParseParam(s string) (Param, error) {
	p := Param(s)
	if _, ok := setters[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownParam, s)
	}
	return p, nil
}

// SweepPoint is the cycle evaluated at one parameter value.
type SweepPoint struct {
	Value  float64
	Result *Result
}

// Sweep runs the cycle once per value with p replaced by that value.
// Points are evaluated concurrently and returned in input order. The first
// failing point cancels the rest and its error is returned.
func (e *Engine) Sweep(ctx context.Context, p Param, values []float64) ([]SweepPoint, error) {
	set, ok := setters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, p)
	}

	out := make([]SweepPoint, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := *e.cfg
			set(&cfg, v)

			res, err := (&Engine{cfg: &cfg, log: e.log}).Run()
			if err != nil {
				return fmt.Errorf("sweep %s=%g: %w", p, v, err)
			}
			out[i] = SweepPoint{Value: v, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
