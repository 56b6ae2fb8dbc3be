package engine

import (
	"errors"
	"testing"

	"github.com/yourorg/liftpro/internal/validation"
)

func referenceRequest() AnalysisRequest {
	return AnalysisRequest{
		Fleet: FleetConfig{NumElevators: 2, RatedSpeed: 1.6, CarCapacity: 20},
		Doors: DoorTimings{Open: 4.5, Close: 4.5, Dwell: 3.0, Load: 0.5, Unload: 1.3},
		Zone:  ZoneConfig{TotalFloors: 12},

		TargetPopulation: 400,
		ServedFloors:     12,
		Variant:          VariantLegacy,
	}
}

func TestAnalyzeReferenceCase(t *testing.T) {
	result, err := Analyze(referenceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The occupancy figures must match the uniform closed forms.
	closed := UniformOccupancy(12, 400)
	if !almostEqual(result.Occupancy.ExpectedStops, closed.ExpectedStops, 1e-9) {
		t.Errorf("S = %.6f, expected %.6f", result.Occupancy.ExpectedStops, closed.ExpectedStops)
	}
	if !almostEqual(result.Occupancy.HighestReversal, closed.HighestReversal, 1e-9) {
		t.Errorf("H = %.6f, expected %.6f", result.Occupancy.HighestReversal, closed.HighestReversal)
	}

	// And the headline metrics must follow from the legacy formula.
	rtt := 2*closed.HighestReversal*(3.5/1.6) +
		(closed.ExpectedStops+1)*(4.5+4.5+3.0+0.5+1.3) +
		2*400*0.5
	interval := rtt / 2

	if result.Metrics.RTT != Round2(rtt) {
		t.Errorf("RTT = %.2f, expected %.2f", result.Metrics.RTT, Round2(rtt))
	}
	if result.Metrics.Interval != Round2(interval) {
		t.Errorf("Interval = %.2f, expected %.2f", result.Metrics.Interval, Round2(interval))
	}
	if result.Metrics.AWT != Round2(interval*DefaultWaitingFactor) {
		t.Errorf("AWT = %.2f, expected %.2f", result.Metrics.AWT, Round2(interval*DefaultWaitingFactor))
	}
	hcPersons := 20.0 * 2 * HandlingWindowSeconds / interval
	if result.Metrics.HCPersons != Round2(hcPersons) {
		t.Errorf("HC_persons = %.2f, expected %.2f", result.Metrics.HCPersons, Round2(hcPersons))
	}
	if result.Metrics.HCPercent != Round2(hcPersons/400*100) {
		t.Errorf("HC%% = %.2f, expected %.2f", result.Metrics.HCPercent, Round2(hcPersons/400*100))
	}
}

func TestAnalyzePerFloorMatchesBulk(t *testing.T) {
	bulk := referenceRequest()
	bulk.TargetPopulation = 360

	perFloor := referenceRequest()
	perFloor.TargetPopulation = 0
	perFloor.ServedFloors = 0
	perFloor.FloorPopulation = make([]float64, 12)
	for i := range perFloor.FloorPopulation {
		perFloor.FloorPopulation[i] = 30
	}

	a, err := Analyze(bulk)
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	b, err := Analyze(perFloor)
	if err != nil {
		t.Fatalf("per-floor: %v", err)
	}
	if a.Metrics != b.Metrics {
		t.Errorf("entry modes diverge: bulk %+v, per-floor %+v", a.Metrics, b.Metrics)
	}
}

func TestAnalyzeDegenerateInputs(t *testing.T) {
	cases := map[string]func(*AnalysisRequest){
		"zero population": func(r *AnalysisRequest) { r.TargetPopulation = 0 },
		"zero floors":     func(r *AnalysisRequest) { r.ServedFloors = 0 },
		"zero speed":      func(r *AnalysisRequest) { r.Fleet.RatedSpeed = 0 },
		"negative speed":  func(r *AnalysisRequest) { r.Fleet.RatedSpeed = -1 },
	}

	for name, mutate := range cases {
		req := referenceRequest()
		mutate(&req)

		result, err := Analyze(req)
		if err != nil {
			t.Errorf("%s: degenerate input must not error, got %v", name, err)
			continue
		}
		if !result.Metrics.IsZero() {
			t.Errorf("%s: expected all-zero metrics, got %+v", name, result.Metrics)
		}
	}
}

func TestAnalyzeConfigurationErrors(t *testing.T) {
	cases := map[string]func(*AnalysisRequest){
		"zero elevators":        func(r *AnalysisRequest) { r.Fleet.NumElevators = 0 },
		"negative door time":    func(r *AnalysisRequest) { r.Doors.Dwell = -1 },
		"negative acceleration": func(r *AnalysisRequest) { r.Fleet.Acceleration = -0.5 },
		"negative jerk":         func(r *AnalysisRequest) { r.Fleet.Jerk = -1 },
		"waiting factor low":    func(r *AnalysisRequest) { r.WaitingFactor = 0.3 },
		"waiting factor high":   func(r *AnalysisRequest) { r.WaitingFactor = 0.95 },
		"negative floor weight": func(r *AnalysisRequest) { r.FloorPopulation = []float64{30, -5, 30} },
		"zero capacity":         func(r *AnalysisRequest) { r.Fleet.CarCapacity = 0 },
		"negative floor height": func(r *AnalysisRequest) { r.FloorHeight = -3.5 },
	}

	for name, mutate := range cases {
		req := referenceRequest()
		mutate(&req)

		var perr *validation.ParameterError
		if _, err := Analyze(req); !errors.As(err, &perr) {
			t.Errorf("%s: expected parameter error, got %v", name, err)
		}
	}
}

func TestAnalyzeZoningGate(t *testing.T) {
	req := referenceRequest()
	req.Zone = ZoneConfig{TotalFloors: 12, StartFloor: 7, Type: ZoneHigh}

	result, err := Analyze(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Zone.Type != ZoneSingle || result.Zone.StartFloor != 1 {
		t.Errorf("zoning gate not applied: %+v", result.Zone)
	}
}

func TestAnalyzeHighZoneAddsExpressJump(t *testing.T) {
	single := referenceRequest()
	single.Zone = ZoneConfig{TotalFloors: 40}

	high := referenceRequest()
	high.Zone = ZoneConfig{TotalFloors: 40, Type: ZoneHigh}

	a, err := Analyze(single)
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	b, err := Analyze(high)
	if err != nil {
		t.Fatalf("high: %v", err)
	}
	if b.Metrics.RTT <= a.Metrics.RTT {
		t.Errorf("high zone RTT %.2f should exceed single zone RTT %.2f", b.Metrics.RTT, a.Metrics.RTT)
	}
}

func TestAnalyzeKinematicVariant(t *testing.T) {
	req := referenceRequest()
	req.Variant = VariantKinematic
	req.Fleet.Acceleration = 1.0
	req.TransferTime = 1.0

	result, err := Analyze(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Metrics.IsZero() {
		t.Fatal("expected non-zero metrics")
	}
	if result.Variant != VariantKinematic {
		t.Errorf("expected kinematic variant echoed, got %s", result.Variant)
	}
}

func TestAnalyzeJerkIsAcceptedButUnused(t *testing.T) {
	base := referenceRequest()
	withJerk := referenceRequest()
	withJerk.Fleet.Jerk = 1.2

	a, err := Analyze(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Analyze(withJerk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Metrics != b.Metrics {
		t.Errorf("jerk is documented as reserved and must not change results: %+v vs %+v", a.Metrics, b.Metrics)
	}
}
