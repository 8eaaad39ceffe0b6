package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ja7ad/jetcycle/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, cfg *engine.Config) *Report {
	t.Helper()
	e := engine.New(cfg)
	res, err := e.Run()
	require.NoError(t, err)
	return New(res, e.Config())
}

// variant returns the default design point with edit applied.
func variant(edit func(*engine.Config)) *engine.Config {
	cfg := engine.DefaultConfig()
	edit(cfg)
	return cfg
}

func countQuantities(r *Report) int {
	n := len(r.Summary)
	for _, s := range r.Sections {
		n += len(s.Quantities)
	}
	return n
}

func TestNew(t *testing.T) {
	r := build(t, nil)

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "shaft", r.WorkBasis)
	assert.False(t, r.Dry)
	require.Len(t, r.Sections, 6)
	assert.Len(t, r.States, 6)
	assert.Equal(t, "Afterburner", r.Sections[4].Title)
	assert.NotEqual(t, r.ID, build(t, nil).ID)
	assert.InDelta(t, 67.95e6, r.Budget.CompressorWork, 5e3)
	assert.Positive(t, r.Budget.IrreversibleLoss)
	assert.Equal(t, r.States[3].EnergyFlow, r.Budget.ExitEnergyFlow)

	dry := build(t, variant(func(c *engine.Config) { c.Dry = true }))
	assert.True(t, dry.Dry)
	require.Len(t, dry.Sections, 5)
	for _, s := range dry.Sections {
		assert.NotEqual(t, "Afterburner", s.Title)
	}
}

func TestWriteText(t *testing.T) {
	r := build(t, nil)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# run "+r.ID))
	for _, title := range []string{"Inlet", "Compressor", "Combustor", "Turbine", "Afterburner", "Nozzle"} {
		assert.Contains(t, out, "\n"+title+" Outputs:\n")
	}
	assert.Contains(t, out, "Stagnation temperature at combustor exit: 1635.79 K\n")
	assert.Contains(t, out, "Net thrust: 1828")
	assert.Contains(t, out, "Air mass flow: 115.00 kg/s\n")

	lines := 0
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, ": ") && !strings.HasPrefix(l, "#") {
			lines++
		}
	}
	assert.Equal(t, countQuantities(r), lines)
}

func TestWriteTable(t *testing.T) {
	r := build(t, nil)
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, r))
	out := buf.String()

	assert.Contains(t, out, r.ID)
	assert.Contains(t, out, "STATION")
	for _, st := range []string{"inlet", "compressor", "combustor", "turbine", "afterburner", "nozzle"} {
		assert.Contains(t, out, st)
	}
	assert.Contains(t, out, "Performance")
	assert.Contains(t, out, "Turbine energy budget")
	assert.Contains(t, out, "Compressor work")
	assert.Contains(t, out, "67.95")
	assert.Contains(t, out, "thrust 182.80 kN")
	assert.Regexp(t, `peak P0 \d+\.\d{2} bar`, out)
	t.Log("\n" + out)
}

func TestWriteCSV(t *testing.T) {
	r := build(t, nil)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, countQuantities(r)+1)
	assert.Equal(t, []string{"run_id", "station", "label", "value", "unit"}, recs[0])
	for _, rec := range recs[1:] {
		assert.Equal(t, r.ID, rec[0])
	}
	last := recs[len(recs)-1]
	assert.Equal(t, "performance", last[1])
	assert.Equal(t, "g/(kN*s)", last[4])
}

func TestWriteJSON(t *testing.T) {
	r := build(t, variant(func(c *engine.Config) { c.WorkBasis = engine.WorkExitEnergy }))
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var got struct {
		ID        string `json:"run_id"`
		WorkBasis string `json:"work_basis"`
		States    []struct {
			Station string  `json:"station"`
			P0      float64 `json:"p0_pa"`
		} `json:"states"`
		Sections []Section `json:"sections"`
		Budget   struct {
			CompressorWork float64 `json:"compressor_work_w"`
			ExitEnergyFlow float64 `json:"exit_energy_flow_w"`
		} `json:"turbine_energy_budget"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "exit-energy", got.WorkBasis)
	require.Len(t, got.States, 6)
	assert.Equal(t, "inlet", got.States[0].Station)
	require.Len(t, got.Sections, 6)
	assert.Equal(t, r.Sections[3].Quantities[0].Value, got.Sections[3].Quantities[0].Value)
	assert.Equal(t, r.Budget.CompressorWork, got.Budget.CompressorWork)
	assert.Equal(t, r.Budget.ExitEnergyFlow, got.Budget.ExitEnergyFlow)
}

func TestWriteHTML(t *testing.T) {
	r := build(t, variant(func(c *engine.Config) { c.Dry = true }))
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, r.ID)
	assert.Contains(t, out, "Dry")
	assert.Contains(t, out, "<h2>Nozzle</h2>")
	assert.NotContains(t, out, "<h2>Afterburner</h2>")
	assert.Contains(t, out, "kPa")
	assert.Contains(t, out, "<h2>Turbine energy budget</h2>")
	assert.Contains(t, out, "<td>67.95</td>")
}

func TestSweepWriters(t *testing.T) {
	points, err := engine.New(nil).Sweep(context.Background(), engine.ParamExitMach, []float64{1.5, 2, 2.5})
	require.NoError(t, err)
	s := NewSweep(engine.ParamExitMach, points)

	var buf bytes.Buffer
	require.NoError(t, WriteSweepCSV(&buf, s))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "nozzle.exit_mach", recs[0][1])
	assert.Len(t, recs[0], 2+len(sweepHeader))
	assert.Equal(t, []string{"1.5", "2", "2.5"}, []string{recs[1][1], recs[2][1], recs[3][1]})

	buf.Reset()
	require.NoError(t, WriteSweepTable(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "Sweep of nozzle.exit_mach")
	assert.Contains(t, out, "3 points")
	assert.Contains(t, out, "thrust increasing")
	assert.Contains(t, out, "THRUST (kN)")
}

func TestSweep_ThrustTrend(t *testing.T) {
	at := func(thrusts ...float64) *Sweep {
		s := &Sweep{}
		for _, f := range thrusts {
			res := &engine.Result{Performance: engine.Performance{Thrust: f}}
			s.Points = append(s.Points, engine.SweepPoint{Result: res})
		}
		return s
	}
	assert.Equal(t, "single point", at(1).thrustTrend())
	assert.Equal(t, "increasing", at(1, 2, 3).thrustTrend())
	assert.Equal(t, "decreasing", at(3, 2, 1).thrustTrend())
	assert.Equal(t, "not monotonic", at(1, 3, 2).thrustTrend())
}
