package engine

import (
	"math"

	"github.com/yourorg/liftpro/internal/validation"
)

// ============================================================================
// METRICS CALCULATOR
// ============================================================================
// Derives the headline figures from a round-trip time. All internal math
// runs at full float64 precision; rounding to 2 decimals happens exactly
// once, here at the presentation boundary.

const (
	// DefaultFloorHeight is the standard floor-to-floor pitch in meters.
	DefaultFloorHeight = 3.5

	// Waiting factor: industry rule of thumb for AWT as a fraction of the
	// dispatch interval. Values outside the documented band are rejected.
	DefaultWaitingFactor = 0.7
	MinWaitingFactor     = 0.6
	MaxWaitingFactor     = 0.8

	// Load factors: 1.0 counts the full rated car capacity, 0.8 reflects
	// the common 80% practical loading policy.
	DefaultLoadFactor   = 1.0
	PracticalLoadFactor = 0.8

	// HandlingWindowSeconds is the 5-minute peak window HC is quoted over.
	HandlingWindowSeconds = 300
)

// MetricsConfig parametrizes the derivation from RTT to headline metrics.
type MetricsConfig struct {
	NumElevators     int
	CarCapacity      float64
	WaitingFactor    float64 // AWT = Interval × WaitingFactor
	LoadFactor       float64 // effective capacity = CarCapacity × LoadFactor
	TargetPopulation float64 // denominator for HC_percent
}

// TrafficMetrics is the immutable output record, rounded for presentation.
type TrafficMetrics struct {
	RTT       float64 `json:"rtt_s"`
	Interval  float64 `json:"interval_s"`
	AWT       float64 `json:"awt_s"`
	HCPercent float64 `json:"hc_percent"`
	HCPersons float64 `json:"hc_persons"`
}

// IsZero reports whether the record is the degenerate-input sentinel.
func (m TrafficMetrics) IsZero() bool {
	return m == TrafficMetrics{}
}

// DeriveMetrics turns a round-trip time into the output record.
//
// A fleet size below 1 is a caller bug and fails with a parameter error;
// a non-positive RTT is the degenerate case and yields the zero sentinel.
func DeriveMetrics(rtt float64, cfg MetricsConfig) (TrafficMetrics, error) {
	if err := validation.AtLeastInt(cfg.NumElevators, 1, "num_elevators"); err != nil {
		return TrafficMetrics{}, err
	}
	if cfg.WaitingFactor == 0 {
		cfg.WaitingFactor = DefaultWaitingFactor
	}
	if err := validation.InRange(cfg.WaitingFactor, MinWaitingFactor, MaxWaitingFactor, "waiting_factor"); err != nil {
		return TrafficMetrics{}, err
	}
	if cfg.LoadFactor == 0 {
		cfg.LoadFactor = DefaultLoadFactor
	}
	if err := validation.InRange(cfg.LoadFactor, 0.1, 1.0, "load_factor"); err != nil {
		return TrafficMetrics{}, err
	}

	if rtt <= 0 {
		return TrafficMetrics{}, nil
	}

	interval := rtt / float64(cfg.NumElevators)
	awt := interval * cfg.WaitingFactor

	effectiveCapacity := cfg.CarCapacity * cfg.LoadFactor
	hcPersons := effectiveCapacity * float64(cfg.NumElevators) * HandlingWindowSeconds / interval

	hcPercent := 0.0
	if cfg.TargetPopulation > 0 {
		hcPercent = hcPersons / cfg.TargetPopulation * 100
	}

	return TrafficMetrics{
		RTT:       Round2(rtt),
		Interval:  Round2(interval),
		AWT:       Round2(awt),
		HCPercent: Round2(hcPercent),
		HCPersons: Round2(hcPersons),
	}, nil
}

// Round2 rounds to 2 decimal places for presentation.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
