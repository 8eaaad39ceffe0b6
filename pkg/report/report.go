// Package report renders engine results for the console and for files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/ja7ad/jetcycle/pkg/engine"
	"github.com/ja7ad/jetcycle/pkg/stage"
	"github.com/ja7ad/jetcycle/pkg/types"
	"github.com/ja7ad/jetcycle/pkg/util"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#39BAE6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7680"))
)

// Section is one stage's quantities.
type Section struct {
	Station    stage.Station    `json:"station"`
	Title      string           `json:"title"`
	Quantities []types.Quantity `json:"quantities"`
}

// Report is one evaluated design point ready for output.
type Report struct {
	ID        string             `json:"run_id"`
	Created   time.Time          `json:"created"`
	WorkBasis string             `json:"work_basis"`
	Dry       bool               `json:"dry"`
	States    []stage.State      `json:"states"`
	Sections  []Section          `json:"sections"`
	Summary   []types.Quantity   `json:"performance"`
	Budget    stage.EnergyBudget `json:"turbine_energy_budget"`

	perf engine.Performance
}

// New builds a report with a fresh run id.
func New(res *engine.Result, cfg engine.Config) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Created:   time.Now(),
		WorkBasis: cfg.WorkBasis.String(),
		Dry:       res.Afterburner == nil,
		States:    res.States(),
		Budget:    res.Turbine.EnergyBudget(),
		perf:      res.Performance,
	}

	r.Sections = []Section{
		{stage.StationInlet, "Inlet", res.Inlet.Quantities()},
		{stage.StationCompressor, "Compressor", res.Compressor.Quantities()},
		{stage.StationCombustor, "Combustor", res.Combustor.Quantities()},
		{stage.StationTurbine, "Turbine", res.Turbine.Quantities()},
	}
	if res.Afterburner != nil {
		r.Sections = append(r.Sections, Section{stage.StationAfterburner, "Afterburner", res.Afterburner.Quantities()})
	}
	r.Sections = append(r.Sections, Section{stage.StationNozzle, "Nozzle", res.Nozzle.Quantities()})
	r.Summary = performance(res.Performance)
	return r
}

func performance(p engine.Performance) []types.Quantity {
	return []types.Quantity{
		types.Q("Net thrust", p.Thrust, "N", 2),
		types.Q("Air mass flow", p.AirMassFlow, "kg/s", 2),
		types.Q("Total fuel flow", p.FuelFlow, "kg/s", 4),
		types.Q("Specific thrust", p.SpecificThrust, "N*s/kg", 2),
		// kg/(N*s) to g/(kN*s)
		types.Q("Thrust specific fuel consumption", p.TSFC*1e6, "g/(kN*s)", 3),
	}
}

// WriteText writes one "<label>: <value> <unit>" line per quantity, grouped by stage.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# run %s (work basis: %s)\n", r.ID, r.WorkBasis)
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n%s Outputs:\n", s.Title)
		for _, q := range s.Quantities {
			b.WriteString(q.String())
			b.WriteByte('\n')
		}
	}
	b.WriteString("\nPerformance:\n")
	for _, q := range r.Summary {
		b.WriteString(q.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTable writes the report as aligned tables with styled headings.
func WriteTable(w io.Writer, r *Report) error {
	fmt.Fprintln(w, headingStyle.Render("Jet engine cycle"))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("run %s  |  work basis %s  |  %s",
		r.ID, r.WorkBasis, r.Created.Format("2006-01-02 15:04:05"))))
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "STATION\tP0\tT0 (K)\tMASS FLOW (kg/s)\tENERGY FLOW")
	fmt.Fprintln(tw, "-------\t--\t------\t----------------\t-----------")
	for _, s := range r.States {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.3f\t%s\n", s.Station,
			types.Pascal(s.P0).Humanized(), s.T0, s.MassFlow, types.Watt(s.EnergyFlow).Humanized())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range r.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render(s.Title))
		if err := writeQuantities(w, s.Quantities); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Performance"))
	if err := writeQuantities(w, r.Summary); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Turbine energy budget"))
	tw = newTable(w)
	fmt.Fprintf(tw, "  Compressor work\t%.2f\tMW\n", types.Watt(r.Budget.CompressorWork).MW())
	fmt.Fprintf(tw, "  Irreversible loss\t%.2f\tMW\n", types.Watt(r.Budget.IrreversibleLoss).MW())
	fmt.Fprintf(tw, "  Exit energy flow\t%.2f\tMW\n", types.Watt(r.Budget.ExitEnergyFlow).MW())
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nthrust %.2f kN, fuel %.4f kg/s, peak P0 %.2f bar\n",
		types.Newton(r.perf.Thrust).KN(), r.perf.FuelFlow, types.Pascal(r.peakPressure()).Bar())
	return err
}

// peakPressure is the highest station stagnation pressure.
func (r *Report) peakPressure() float64 {
	var peak float64
	for _, s := range r.States {
		peak = max(peak, s.P0)
	}
	return peak
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeQuantities(w io.Writer, qs []types.Quantity) error {
	tw := newTable(w)
	for _, q := range qs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", q.Label, q.Formatted(), q.Unit)
	}
	return tw.Flush()
}

// WriteCSV writes one row per quantity: run_id, station, label, value, unit.
// Values keep full precision.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"run_id", "station", "label", "value", "unit"})
	for _, s := range r.Sections {
		for _, q := range s.Quantities {
			_ = cw.Write([]string{r.ID, string(s.Station), q.Label, util.FmtFloat(q.Value), q.Unit})
		}
	}
	for _, q := range r.Summary {
		_ = cw.Write([]string{r.ID, "performance", q.Label, util.FmtFloat(q.Value), q.Unit})
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
