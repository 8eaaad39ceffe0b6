package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ja7ad/jetcycle/pkg/types"
)

var funcs = template.FuncMap{
	"pascal": func(v float64) string { return types.Pascal(v).Humanized() },
	"watt":   func(v float64) string { return types.Watt(v).Humanized() },
	"kpa":    func(v float64) string { return fmt.Sprintf("%.2f", types.Pascal(v).KPa()) },
	"mw":     func(v float64) string { return fmt.Sprintf("%.2f", types.Watt(v).MW()) },
}

// WriteHTML writes a standalone HTML page with the station table and every stage section.
func WriteHTML(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Funcs(funcs).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Jet Engine Cycle Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:16px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.badge{display:inline-block;background:#eef;border:1px solid #ccd;padding:2px 6px;border-radius:6px;margin-right:6px;}
</style>

<h1>Jet Engine Cycle Report</h1>

<p class="small">
<span class="badge">run {{.ID}}</span>
Work basis: {{.WorkBasis}} &nbsp;|&nbsp;
{{if .Dry}}Dry{{else}}Reheated{{end}} &nbsp;|&nbsp;
{{.Created.Format "2006-01-02 15:04:05"}}
</p>

<h2>Performance</h2>
<ul>
{{range .Summary}}
<li>{{.Label}}: {{.Formatted}} {{.Unit}}</li>
{{end}}
</ul>

<h2>Stations</h2>
<table>
<thead>
<tr><th>station</th><th>P0</th><th>P0 (kPa)</th><th>T0 (K)</th><th>mass flow (kg/s)</th><th>energy flow</th></tr>
</thead>
<tbody>
{{range .States}}
<tr>
<td>{{.Station}}</td>
<td>{{pascal .P0}}</td>
<td>{{kpa .P0}}</td>
<td>{{printf "%.2f" .T0}}</td>
<td>{{printf "%.3f" .MassFlow}}</td>
<td>{{watt .EnergyFlow}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Turbine energy budget</h2>
<table>
<thead>
<tr><th>term</th><th>power</th><th>MW</th></tr>
</thead>
<tbody>
<tr><td>Compressor work</td><td>{{watt .Budget.CompressorWork}}</td><td>{{mw .Budget.CompressorWork}}</td></tr>
<tr><td>Irreversible loss</td><td>{{watt .Budget.IrreversibleLoss}}</td><td>{{mw .Budget.IrreversibleLoss}}</td></tr>
<tr><td>Exit energy flow</td><td>{{watt .Budget.ExitEnergyFlow}}</td><td>{{mw .Budget.ExitEnergyFlow}}</td></tr>
</tbody>
</table>

{{range .Sections}}
<h2>{{.Title}}</h2>
<table>
<tbody>
{{range .Quantities}}
<tr><td>{{.Label}}</td><td>{{.Formatted}}</td><td>{{.Unit}}</td></tr>
{{end}}
</tbody>
</table>
{{end}}
</html>`))
