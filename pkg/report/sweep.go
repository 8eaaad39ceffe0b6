package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/ja7ad/jetcycle/pkg/engine"
	"github.com/ja7ad/jetcycle/pkg/types"
	"github.com/ja7ad/jetcycle/pkg/util"
)

// Sweep is a parameter sweep ready for output.
type Sweep struct {
	ID     string
	Param  engine.Param
	Points []engine.SweepPoint
}

// NewSweep wraps sweep points with a fresh run id.
func NewSweep(p engine.Param, points []engine.SweepPoint) *Sweep {
	return &Sweep{ID: uuid.NewString(), Param: p, Points: points}
}

var sweepHeader = []string{
	"t04_k", "t05_k", "t_exit_k", "v_exit_m_s", "thrust_n", "fuel_kg_s", "tsfc_g_per_kn_s", "specific_thrust_n_s_per_kg",
}

func sweepRow(p engine.SweepPoint) []float64 {
	r := p.Result
	return []float64{
		r.Combustor.ExitTemperature,
		r.Turbine.ExitTemperature,
		r.Nozzle.ExitTemperature,
		r.Nozzle.ExitVelocity,
		r.Performance.Thrust,
		r.Performance.FuelFlow,
		r.Performance.TSFC * 1e6,
		r.Performance.SpecificThrust,
	}
}

// WriteSweepCSV writes one row per point, in sweep order.
func WriteSweepCSV(w io.Writer, s *Sweep) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(append([]string{"run_id", string(s.Param)}, sweepHeader...))
	for _, p := range s.Points {
		rec := []string{s.ID, util.FmtFloat(p.Value)}
		for _, v := range sweepRow(p) {
			rec = append(rec, util.FmtFloat(v))
		}
		_ = cw.Write(rec)
	}
	cw.Flush()
	return cw.Error()
}

// WriteSweepTable writes the sweep as an aligned table.
func WriteSweepTable(w io.Writer, s *Sweep) error {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Sweep of %s", s.Param)))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("run %s  |  %d points  |  thrust %s", s.ID, len(s.Points), s.thrustTrend())))
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\tT04 (K)\tT05 (K)\tT_exit (K)\tV_exit (m/s)\tTHRUST (kN)\tFUEL (kg/s)\tTSFC (g/(kN*s))\n", s.Param)
	fmt.Fprintln(tw, "-----\t-------\t-------\t----------\t------------\t-----------\t-----------\t---------------")
	for _, p := range s.Points {
		v := sweepRow(p)
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%.4f\t%.3f\n",
			util.FmtFloat(p.Value), v[0], v[1], v[2], v[3], types.Newton(v[4]).KN(), v[5], v[6])
	}
	return tw.Flush()
}

// thrustTrend reports how thrust moves along the sweep.
func (s *Sweep) thrustTrend() string {
	up := make([]float64, len(s.Points))
	down := make([]float64, len(s.Points))
	for i, p := range s.Points {
		up[i] = p.Result.Performance.Thrust
		down[i] = -up[i]
	}
	switch {
	case len(up) < 2:
		return "single point"
	case util.Increasing(up):
		return "increasing"
	case util.Increasing(down):
		return "decreasing"
	default:
		return "not monotonic"
	}
}
