package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlet_DesignPoint(t *testing.T) {
	res, err := Inlet(designInlet())
	require.NoError(t, err)

	// T0 = 288.15 + 237^2/(2*1005)
	assert.InDelta(t, 288.15+237.0*237.0/2010.0, res.IdealStagnationTemperature, 1e-9)
	assert.InDelta(t, 316.09, res.IdealStagnationTemperature, 0.01)
	assert.InDelta(t, 314.98, res.RealStagnationTemperature, 0.01)
	assert.InDelta(t, 138365.34, res.RealStagnationPressure, 0.5)
	assert.InDelta(t, 136981.68, res.RecoveredStagnationPressure, 0.05)
	assert.InDelta(t, 140091.58, res.IdealStagnationPressure, 0.5)
	assert.InDelta(t, 316551.87, res.StagnationEnthalpy, 0.05)
	assert.InDelta(t, 36403465.05, res.EnergyFlow, 5)

	assert.InDelta(t, 315.30, res.ExitStaticTemperature, 0.01)
	assert.InDelta(t, res.IdealStagnationTemperature, res.ExitIdealStagnationTemperature, 1e-9)
	assert.InDelta(t, 135778.12, res.ExitStaticPressure, 0.5)
	assert.InDelta(t, 138195.92, res.OutletIdealStagnationPressure, 0.5)
	assert.Greater(t, res.OutletIdealStagnationPressure, res.RecoveredStagnationPressure)
	assert.Less(t, res.OutletIdealStagnationPressure, res.IdealStagnationPressure)

	assert.InDelta(t, 0.6965, res.InletMach, 1e-4)
	assert.InDelta(t, 0.1124, res.ExitMach, 1e-4)
	assert.InDelta(t, 1.2250, res.InletDensity, 1e-4)
	assert.InDelta(t, 1.5002, res.ExitDensity, 1e-4)
	assert.InDelta(t, 0.2067, res.AreaRatio, 1e-4)
	assert.InDelta(t, 2.2199, res.PressureLostPct, 1e-3)

	assert.Equal(t, StationInlet, res.Exit.Station)
	assert.Equal(t, res.RecoveredStagnationPressure, res.Exit.P0)
	assert.Equal(t, res.RealStagnationTemperature, res.Exit.T0)
	assert.Equal(t, 115.0, res.Exit.MassFlow)
	assertEnergyConsistent(t, res.Exit)

	for _, q := range res.Quantities() {
		t.Log(q.String())
	}
}

func TestInlet_StagnationAtLeastStatic(t *testing.T) {
	for _, v1 := range []float64{1, 50, 150, 237, 300} {
		for _, eta := range []float64{0.5, 0.9, 0.96, 1} {
			cfg := designInlet()
			cfg.Velocity = v1
			cfg.ExitVelocity = v1 / 2
			cfg.AdiabaticEfficiency = eta

			res, err := Inlet(cfg)
			require.NoError(t, err, "V1=%v eta=%v", v1, eta)
			assert.GreaterOrEqual(t, res.IdealStagnationTemperature, cfg.StaticTemperature)
			assert.GreaterOrEqual(t, res.RealStagnationTemperature, cfg.StaticTemperature)
			assert.GreaterOrEqual(t, res.RealStagnationPressure, cfg.StaticPressure)
			assert.LessOrEqual(t, res.RealStagnationTemperature, res.IdealStagnationTemperature)
			assert.GreaterOrEqual(t, res.PressureLostPct, 0.0)
		}
	}
}

func TestInlet_NegativeVelocityIsDomainError(t *testing.T) {
	cfg := designInlet()
	cfg.Velocity = -237
	se := requireStageErr(t, mustInletErr(t, cfg), ErrDomain, StationInlet)
	assert.Equal(t, "V1", se.Param)

	cfg = designInlet()
	cfg.ExitVelocity = -1
	se = requireStageErr(t, mustInletErr(t, cfg), ErrDomain, StationInlet)
	assert.Equal(t, "V2", se.Param)
}

func TestInlet_ExitVelocityTooLarge(t *testing.T) {
	cfg := designInlet()
	cfg.ExitVelocity = 1000
	se := requireStageErr(t, mustInletErr(t, cfg), ErrDomain, StationInlet)
	assert.Equal(t, "T2", se.Param)
	assert.Less(t, se.Value, 0.0)
}

func TestInlet_ParameterRange(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*InletConfig)
		param string
	}{
		{"zero velocity", func(c *InletConfig) { c.Velocity = 0 }, "V1"},
		{"zero pressure", func(c *InletConfig) { c.StaticPressure = 0 }, "P1"},
		{"negative temperature", func(c *InletConfig) { c.StaticTemperature = -10 }, "T1"},
		{"gamma one", func(c *InletConfig) { c.Gas.Gamma = 1 }, "gamma"},
		{"eta_i zero", func(c *InletConfig) { c.AdiabaticEfficiency = 0 }, "eta_i"},
		{"eta_i above one", func(c *InletConfig) { c.AdiabaticEfficiency = 1.01 }, "eta_i"},
		{"eta_p above one", func(c *InletConfig) { c.PressureRecovery = 1.2 }, "eta_p"},
		{"no mass flow", func(c *InletConfig) { c.MassFlow = 0 }, "mass_flow"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := designInlet()
			tc.mut(&cfg)
			se := requireStageErr(t, mustInletErr(t, cfg), ErrParameterRange, StationInlet)
			assert.Equal(t, tc.param, se.Param)
		})
	}
}

func mustInletErr(t *testing.T, cfg InletConfig) error {
	t.Helper()
	_, err := Inlet(cfg)
	require.Error(t, err)
	return err
}
