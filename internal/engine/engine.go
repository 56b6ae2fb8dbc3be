// Package engine implements the lift traffic analysis core: the
// probabilistic occupancy model, the kinematic travel-time model, the
// zoning policy and their composition into round-trip time and the derived
// headline metrics (interval, average waiting time, handling capacity).
//
// The engine is pure and stateless: one fully populated request in, one
// immutable record out, no I/O and no cross-call state. It is safe to call
// concurrently without coordination.
package engine

import "github.com/yourorg/liftpro/internal/validation"

// FleetConfig describes the elevator group under study.
type FleetConfig struct {
	NumElevators int     `json:"num_elevators"`
	RatedSpeed   float64 `json:"rated_speed_ms"`
	CarCapacity  float64 `json:"car_capacity_persons"`
	Acceleration float64 `json:"acceleration_ms2,omitempty"`

	// Jerk is accepted for forward compatibility with jerk-limited profiles.
	// The current travel-time formula does not use it; a configured value is
	// validated but has no effect on the results.
	Jerk float64 `json:"jerk_ms3,omitempty"`
}

// AnalysisRequest is the full input contract of the engine. Population can
// be given per floor (FloorPopulation) or in the simplified bulk mode
// (TargetPopulation + ServedFloors, spread uniformly).
type AnalysisRequest struct {
	Fleet FleetConfig `json:"fleet"`
	Doors DoorTimings `json:"doors"`
	Zone  ZoneConfig  `json:"zone"`

	FloorPopulation  []float64 `json:"floor_population,omitempty"`
	TargetPopulation float64   `json:"target_population,omitempty"`
	ServedFloors     int       `json:"served_floors,omitempty"`

	Variant FormulaVariant  `json:"formula_variant,omitempty"` // default legacy
	Express ExpressStrategy `json:"express_strategy,omitempty"`

	FloorHeight  float64 `json:"floor_height_m,omitempty"`            // default 3.5
	TransferTime float64 `json:"passenger_transfer_time_s,omitempty"` // kinematic variant

	WaitingFactor float64 `json:"waiting_factor,omitempty"` // default 0.7
	LoadFactor    float64 `json:"load_factor,omitempty"`    // default 1.0
}

// AnalysisResult bundles the output record with the intermediate figures
// the presentation and reporting layers echo back.
type AnalysisResult struct {
	Metrics   TrafficMetrics `json:"metrics"`
	Occupancy Occupancy      `json:"occupancy"`
	Zone      ZoneConfig     `json:"zone"`
	Variant   FormulaVariant `json:"formula_variant"`
}

func (r AnalysisRequest) withDefaults() AnalysisRequest {
	if r.Variant == "" {
		r.Variant = VariantLegacy
	}
	if r.FloorHeight == 0 {
		r.FloorHeight = DefaultFloorHeight
	}
	if r.WaitingFactor == 0 {
		r.WaitingFactor = DefaultWaitingFactor
	}
	if r.LoadFactor == 0 {
		r.LoadFactor = DefaultLoadFactor
	}
	if r.Express == "" {
		if r.Variant == VariantKinematic {
			r.Express = ExpressZoneDistance
		} else {
			r.Express = ExpressLegacyFraction
		}
	}
	return r
}

// validate covers the configuration-class errors: caller bugs that must
// fail loudly instead of silently producing zero or infinite metrics.
// Degenerate engineering inputs (zero population, zero floors, zero speed)
// are NOT errors; Analyze resolves them to the zero sentinel.
func (r AnalysisRequest) validate() error {
	checks := []error{
		validation.AtLeastInt(r.Fleet.NumElevators, 1, "num_elevators"),
		validation.Positive(r.Fleet.CarCapacity, "car_capacity"),
		validation.Finite(r.Fleet.RatedSpeed, "rated_speed"),
		validation.NonNegative(r.Fleet.Acceleration, "acceleration"),
		validation.NonNegative(r.Fleet.Jerk, "jerk"),
		validation.Positive(r.FloorHeight, "floor_height"),
		validation.NonNegative(r.Doors.Open, "door_open"),
		validation.NonNegative(r.Doors.Close, "door_close"),
		validation.NonNegative(r.Doors.Dwell, "door_dwell"),
		validation.NonNegative(r.Doors.Load, "load_time"),
		validation.NonNegative(r.Doors.Unload, "unload_time"),
		validation.NonNegative(r.TransferTime, "passenger_transfer_time"),
		validation.InRange(r.WaitingFactor, MinWaitingFactor, MaxWaitingFactor, "waiting_factor"),
		validation.InRange(r.LoadFactor, 0.1, 1.0, "load_factor"),
		validation.AtLeastInt(r.Zone.TotalFloors, 1, "total_floors"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	for _, w := range r.FloorPopulation {
		if err := validation.NonNegative(w, "floor_population"); err != nil {
			return err
		}
	}
	return nil
}

// Analyze runs the full pipeline: population resolution, occupancy model,
// zoning, round trip, derived metrics. Configuration errors return a
// *validation.ParameterError; degenerate inputs return the zero sentinel
// with a nil error.
func Analyze(req AnalysisRequest) (AnalysisResult, error) {
	req = req.withDefaults()
	if err := req.validate(); err != nil {
		return AnalysisResult{}, err
	}

	weights, population := req.resolvePopulation()
	target := req.TargetPopulation
	if target <= 0 {
		target = population
	}
	zone := req.Zone.Normalize()

	result := AnalysisResult{Zone: zone, Variant: req.Variant}
	if population <= 0 || len(weights) == 0 || req.Fleet.RatedSpeed <= 0 {
		return result, nil
	}

	occ := ComputeOccupancy(weights, population)
	result.Occupancy = occ

	mode := ConstantSpeed
	if req.Variant == VariantKinematic && req.Fleet.Acceleration > 0 {
		mode = Kinematic
	}

	rtt, err := RoundTrip(req.Variant, RoundTripParams{
		Occupancy:    occ,
		Population:   population,
		Floors:       len(weights),
		FloorHeight:  req.FloorHeight,
		Speed:        req.Fleet.RatedSpeed,
		Accel:        req.Fleet.Acceleration,
		Mode:         mode,
		Doors:        req.Doors,
		Zone:         zone,
		Express:      req.Express,
		TransferTime: req.TransferTime,
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	metrics, err := DeriveMetrics(rtt, MetricsConfig{
		NumElevators:     req.Fleet.NumElevators,
		CarCapacity:      req.Fleet.CarCapacity,
		WaitingFactor:    req.WaitingFactor,
		LoadFactor:       req.LoadFactor,
		TargetPopulation: target,
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	result.Metrics = metrics
	return result, nil
}

// resolvePopulation returns the per-floor profile and the passenger total,
// honoring the two entry modes.
func (r AnalysisRequest) resolvePopulation() ([]float64, float64) {
	if len(r.FloorPopulation) > 0 {
		total := 0.0
		for _, w := range r.FloorPopulation {
			if w > 0 {
				total += w
			}
		}
		return r.FloorPopulation, total
	}
	return UniformWeights(r.ServedFloors, r.TargetPopulation), r.TargetPopulation
}
