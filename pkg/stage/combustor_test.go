package stage

import (
	"testing"

	"github.com/ja7ad/jetcycle/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combustorInlet() State {
	return NewState(StationCompressor, 4109450.40, 902.93, 907440.43, 115)
}

func TestCombustor_DesignPoint(t *testing.T) {
	res, err := Combustor(combustorInlet(), designCombustor())
	require.NoError(t, err)

	assert.InDelta(t, 1635.80, res.ExitTemperature, 0.01)
	assert.InDelta(t, 1150*res.ExitTemperature, res.ExitEnthalpy, 1e-9)
	assert.InDelta(t, 3862883.38, res.ExitPressure, 0.01)
	assert.InDelta(t, 2.3, res.FuelMassFlow, 1e-12)
	assert.InDelta(t, 117.3, res.TotalMassFlow, 1e-12)
	assert.InDelta(t, 0.02/0.067, res.EquivalenceRatio, 1e-12)
	assert.InDelta(t, 98.9e6, res.HeatAdded, 1e-3)
	assert.InDelta(t, res.ExitTemperature-902.93, res.TemperatureRise, 1e-9)
	assert.InDelta(t, 1150*res.TemperatureRise, res.EnthalpyRise, 1e-6)

	// pressure loss and mass addition
	assert.Less(t, res.Exit.P0, combustorInlet().P0)
	assert.InDelta(t, combustorInlet().MassFlow*(1+0.02), res.Exit.MassFlow, 1e-12)
	assertEnergyConsistent(t, res.Exit)

	for _, q := range res.Quantities() {
		t.Log(q.String())
	}
}

func TestCombustorSweep_StrictlyIncreasing(t *testing.T) {
	fs := util.Linspace(0.01, 0.04, 100)
	pts, err := CombustorSweep(combustorInlet(), designCombustor(), fs)
	require.NoError(t, err)
	require.Len(t, pts, len(fs))

	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		assert.Greater(t, cur.ExitTemperature, prev.ExitTemperature, "T04 at i=%d", i)
		assert.Greater(t, cur.EnergyFlow, prev.EnergyFlow, "energy flow at i=%d", i)
		assert.Greater(t, cur.EquivalenceRatio, prev.EquivalenceRatio, "phi at i=%d", i)
		assert.Greater(t, cur.TemperatureRise, prev.TemperatureRise, "dT at i=%d", i)
		assert.Greater(t, cur.HeatAdded, prev.HeatAdded, "q at i=%d", i)
		// pressure is independent of f
		assert.Equal(t, prev.ExitPressure, cur.ExitPressure)
	}

	t.Logf("# f      T04(K)    E04(MW)   phi    dT(K)")
	for _, i := range []int{0, 33, 66, 99} {
		p := pts[i]
		t.Logf("%.4f %9.2f %9.3f %6.3f %8.2f", p.FuelAirRatio, p.ExitTemperature, p.EnergyFlow/1e6, p.EquivalenceRatio, p.TemperatureRise)
	}
}

func TestCombustorSweep_OrderInsensitive(t *testing.T) {
	fwd, err := CombustorSweep(combustorInlet(), designCombustor(), []float64{0.01, 0.02, 0.03})
	require.NoError(t, err)
	rev, err := CombustorSweep(combustorInlet(), designCombustor(), []float64{0.03, 0.02, 0.01})
	require.NoError(t, err)

	for i := range fwd {
		assert.Equal(t, fwd[i], rev[len(rev)-1-i])
	}
}

func TestCombustor_ZeroFuelHoldsTemperature(t *testing.T) {
	cfg := designCombustor()
	cfg.FuelAirRatio = 0
	res, err := Combustor(combustorInlet(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 902.93, res.ExitTemperature)
	assert.Equal(t, 115.0, res.TotalMassFlow)
	assert.Equal(t, 0.0, res.EquivalenceRatio)
}

func TestCombustor_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*CombustorConfig)
	}{
		{"negative f", func(c *CombustorConfig) { c.FuelAirRatio = -0.01 }},
		{"efficiency above one", func(c *CombustorConfig) { c.Efficiency = 1.2 }},
		{"full pressure loss", func(c *CombustorConfig) { c.PressureLossRatio = 1 }},
		{"no stoichiometric ratio", func(c *CombustorConfig) { c.StoichiometricRatio = 0 }},
		{"no LHV", func(c *CombustorConfig) { c.LHV = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := designCombustor()
			tc.mut(&cfg)
			_, err := Combustor(combustorInlet(), cfg)
			requireStageErr(t, err, ErrParameterRange, StationCombustor)
		})
	}

	_, err := CombustorSweep(combustorInlet(), designCombustor(), []float64{0.01, -1})
	requireStageErr(t, err, ErrParameterRange, StationCombustor)
}
