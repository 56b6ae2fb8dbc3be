package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/yourorg/liftpro/internal/engine"
)

// Metadata son los encabezados del informe que el usuario rellena en el
// formulario. Se incluyen tal cual en el PDF, sin lógica propia.
type Metadata struct {
	Title     string    `json:"title"`
	Project   string    `json:"project"`
	JobNumber string    `json:"job_number"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
}

type templateData struct {
	Meta         Metadata
	Date         string
	Metrics      engine.TrafficMetrics
	Occupancy    engine.Occupancy
	Variant      engine.FormulaVariant
	Zone         engine.ZoneConfig
	BuildingType engine.BuildingType
	HCTarget     float64
	MeetsTarget  bool
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 11pt; margin: 40px; }
  h1 { font-size: 15pt; text-align: center; }
  h2 { font-size: 12pt; border-bottom: 1px solid #333; padding-bottom: 4px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 18px; }
  td, th { border: 1px solid #555; padding: 6px 10px; text-align: left; }
  .ok { color: #1db954; font-weight: bold; }
  .short { color: #c0392b; font-weight: bold; }
</style>
</head>
<body>
  <h1>{{.Meta.Title}}</h1>
  <table>
    <tr><td>Project: {{.Meta.Project}}</td><td>Job No: {{.Meta.JobNumber}}</td></tr>
    <tr><td>Created By: {{.Meta.Author}}</td><td>Date: {{.Date}}</td></tr>
  </table>

  <h2>TECHNICAL SUMMARY</h2>
  <table>
    <tr><th>Round Trip Time</th><td>{{printf "%.2f" .Metrics.RTT}} s</td></tr>
    <tr><th>Interval</th><td>{{printf "%.2f" .Metrics.Interval}} s</td></tr>
    <tr><th>Avg Waiting Time</th><td>{{printf "%.2f" .Metrics.AWT}} s</td></tr>
    <tr><th>Handling Capacity</th><td>{{printf "%.2f" .Metrics.HCPercent}} % ({{printf "%.2f" .Metrics.HCPersons}} persons / 5 min)</td></tr>
  </table>

  <h2>MODEL FIGURES</h2>
  <table>
    <tr><th>Probable stops (S)</th><td>{{printf "%.2f" .Occupancy.ExpectedStops}}</td></tr>
    <tr><th>Highest reversal floor (H)</th><td>{{printf "%.2f" .Occupancy.HighestReversal}}</td></tr>
    <tr><th>Formula variant</th><td>{{.Variant}}</td></tr>
    <tr><th>Zone</th><td>{{.Zone.Type}} (start floor {{.Zone.StartFloor}} of {{.Zone.TotalFloors}})</td></tr>
  </table>

  {{if .BuildingType}}
  <h2>BENCHMARK</h2>
  <table>
    <tr><th>Building type</th><td>{{.BuildingType}}</td></tr>
    <tr><th>Target HC</th><td>{{printf "%.1f" .HCTarget}} %</td></tr>
    <tr><th>Verdict</th><td>{{if .MeetsTarget}}<span class="ok">MEETS TARGET</span>{{else}}<span class="short">BELOW TARGET</span>{{end}}</td></tr>
  </table>
  {{end}}
</body>
</html>`))

// BuildHTML renderiza el informe como HTML listo para imprimir a PDF.
func BuildHTML(meta Metadata, result engine.AnalysisResult, buildingType engine.BuildingType) (string, error) {
	date := meta.Date
	if date.IsZero() {
		date = time.Now()
	}

	data := templateData{
		Meta:         meta,
		Date:         date.Format("2006-01-02"),
		Metrics:      result.Metrics,
		Occupancy:    result.Occupancy,
		Variant:      result.Variant,
		Zone:         result.Zone,
		BuildingType: buildingType,
	}
	if buildingType != "" {
		data.HCTarget = engine.HCTarget(buildingType)
		data.MeetsTarget = result.Metrics.HCPercent >= data.HCTarget
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
