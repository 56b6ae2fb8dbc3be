package models

import (
	"github.com/yourorg/liftpro/internal/engine"
	"github.com/yourorg/liftpro/internal/report"
)

// AnalysisAPIRequest is the body of POST /api/analysis: the engine's input
// contract plus the building type used for the benchmark comparison.
type AnalysisAPIRequest struct {
	engine.AnalysisRequest
	BuildingType engine.BuildingType `json:"building_type,omitempty"`
}

// BenchmarkResult compares the computed handling capacity against the
// target quoted for the building type.
type BenchmarkResult struct {
	BuildingType    engine.BuildingType `json:"building_type"`
	TargetHCPercent float64             `json:"target_hc_percent"`
	MeetsTarget     bool                `json:"meets_target"`
}

// AnalysisResponse is the presentation-layer view of a result. RTT and
// Interval are public; AWT, handling capacity and the benchmark verdict
// are pro-only and omitted for free accounts.
type AnalysisResponse struct {
	RTT      float64 `json:"rtt_s"`
	Interval float64 `json:"interval_s"`

	AWT       *float64 `json:"awt_s,omitempty"`
	HCPercent *float64 `json:"hc_percent,omitempty"`
	HCPersons *float64 `json:"hc_persons,omitempty"`

	Occupancy engine.Occupancy      `json:"occupancy"`
	Zone      engine.ZoneConfig     `json:"zone"`
	Variant   engine.FormulaVariant `json:"formula_variant"`

	Benchmark *BenchmarkResult `json:"benchmark,omitempty"`

	ProLocked bool   `json:"pro_locked,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

// ProUpgradeNotice is shown in place of the gated metrics.
const ProUpgradeNotice = "AWT, handling capacity and PDF export require a pro subscription"

// NewAnalysisResponse applies the access gate to an engine result.
func NewAnalysisResponse(result engine.AnalysisResult, buildingType engine.BuildingType, pro bool) AnalysisResponse {
	resp := AnalysisResponse{
		RTT:       result.Metrics.RTT,
		Interval:  result.Metrics.Interval,
		Occupancy: result.Occupancy,
		Zone:      result.Zone,
		Variant:   result.Variant,
	}

	if !pro {
		resp.ProLocked = true
		resp.Notice = ProUpgradeNotice
		return resp
	}

	awt := result.Metrics.AWT
	hcPercent := result.Metrics.HCPercent
	hcPersons := result.Metrics.HCPersons
	resp.AWT = &awt
	resp.HCPercent = &hcPercent
	resp.HCPersons = &hcPersons

	if buildingType != "" {
		target := engine.HCTarget(buildingType)
		resp.Benchmark = &BenchmarkResult{
			BuildingType:    buildingType,
			TargetHCPercent: target,
			MeetsTarget:     hcPercent >= target,
		}
	}
	return resp
}

// ReportAPIRequest is the body of POST /api/reports: the analysis to run
// plus the report header metadata echoed into the PDF.
type ReportAPIRequest struct {
	Analysis     engine.AnalysisRequest `json:"analysis"`
	BuildingType engine.BuildingType    `json:"building_type,omitempty"`
	Meta         report.Metadata        `json:"meta"`
}

// ReportCreatedResponse points the client at the rendered document.
type ReportCreatedResponse struct {
	ReportID string `json:"report_id"`
	Filename string `json:"filename"`
	SizeKB   int    `json:"size_kb"`
}

// FormDefaults seeds the interactive form.
type FormDefaults struct {
	RatedSpeed    float64            `json:"rated_speed_ms"`
	FloorHeight   float64            `json:"floor_height_m"`
	WaitingFactor float64            `json:"waiting_factor"`
	LoadFactor    float64            `json:"load_factor"`
	Doors         engine.DoorTimings `json:"doors"`
	ZoningOffered bool               `json:"zoning_offered"`
	SkyLobbyFloor int                `json:"sky_lobby_floor,omitempty"`
}
