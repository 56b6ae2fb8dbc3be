package engine

// ============================================================================
// ROUND TRIP CALCULATOR
// ============================================================================
// Composes the occupancy model, the travel-time model, the zoning policy
// and the door timings into a round-trip time. Two formula variants exist
// in the field and both are kept as named strategies; they fold boarding
// and alighting time differently, so merging them would silently change
// published results.

// FormulaVariant selects the round-trip formula.
type FormulaVariant string

const (
	// VariantLegacy: constant floor height, constant speed, door cycle
	// including load/unload, per-passenger loading time counted twice.
	VariantLegacy FormulaVariant = "legacy"
	// VariantKinematic: real floor height, optional acceleration-limited
	// travel, bare door cycle, a single passenger transfer time counted
	// twice.
	VariantKinematic FormulaVariant = "kinematic"
)

// DoorTimings holds the mechanical door durations in seconds.
type DoorTimings struct {
	Open   float64 `json:"door_open_s"`
	Close  float64 `json:"door_close_s"`
	Dwell  float64 `json:"door_dwell_s"`
	Load   float64 `json:"load_s,omitempty"`
	Unload float64 `json:"unload_s,omitempty"`
}

// Cycle is the bare door cycle: open + close + dwell.
func (d DoorTimings) Cycle() float64 {
	return d.Open + d.Close + d.Dwell
}

// CycleWithTransfer is the legacy door cycle, which folds the per-stop
// load and unload allowances into the cycle itself.
func (d DoorTimings) CycleWithTransfer() float64 {
	return d.Cycle() + d.Load + d.Unload
}

// RoundTripParams carries everything a round-trip formula needs. The
// occupancy figures are computed by the caller so the same profile can be
// reused across variants.
type RoundTripParams struct {
	Occupancy    Occupancy
	Population   float64
	Floors       int
	FloorHeight  float64
	Speed        float64
	Accel        float64
	Mode         TravelMode
	Doors        DoorTimings
	Zone         ZoneConfig
	Express      ExpressStrategy
	TransferTime float64 // per passenger, per direction (kinematic variant)
}

func (p RoundTripParams) degenerate() bool {
	return p.Occupancy.ExpectedStops <= 0 || p.Population <= 0 || p.Floors <= 0 || p.Speed <= 0
}

// RoundTrip dispatches to the selected formula variant. Degenerate inputs
// yield RTT = 0 without error; downstream metrics then collapse to zero.
func RoundTrip(variant FormulaVariant, p RoundTripParams) (float64, error) {
	switch variant {
	case VariantKinematic:
		return KinematicRoundTrip(p)
	default:
		return LegacyRoundTrip(p)
	}
}

// LegacyRoundTrip implements the constant-speed formula:
//
//	RTT = 2·H·(h/v) + (S+1)·door_cycle + 2·P·t_load + 2·express
//
// with door_cycle = open + close + dwell + load + unload.
func LegacyRoundTrip(p RoundTripParams) (float64, error) {
	if p.degenerate() {
		return 0, nil
	}

	express, err := ExpressJumpTime(p.Zone, p.Express, p.FloorHeight, p.Speed, p.Accel, ConstantSpeed)
	if err != nil {
		return 0, err
	}

	s, h := p.Occupancy.ExpectedStops, p.Occupancy.HighestReversal
	rtt := 2*h*(p.FloorHeight/p.Speed) +
		(s+1)*p.Doors.CycleWithTransfer() +
		2*p.Population*p.Doors.Load +
		2*express
	return rtt, nil
}

// KinematicRoundTrip implements the acceleration-aware formula:
//
//	RTT = travel(2·(H - zone_start)·h) + (S+1)·door_cycle + 2·P·t_transfer + 2·express
//
// with door_cycle = open + close + dwell; boarding and alighting live in
// the transfer term instead of the cycle.
func KinematicRoundTrip(p RoundTripParams) (float64, error) {
	if p.degenerate() {
		return 0, nil
	}

	zone := p.Zone.Normalize()
	distance := 2 * (p.Occupancy.HighestReversal - float64(zone.StartFloor)) * p.FloorHeight
	if distance < 0 {
		distance = 0
	}

	travel, err := OneWayTravelTime(distance, p.Speed, p.Accel, p.Mode)
	if err != nil {
		return 0, err
	}
	express, err := ExpressJumpTime(zone, p.Express, p.FloorHeight, p.Speed, p.Accel, p.Mode)
	if err != nil {
		return 0, err
	}

	s := p.Occupancy.ExpectedStops
	rtt := travel +
		(s+1)*p.Doors.Cycle() +
		2*p.Population*p.TransferTime +
		2*express
	return rtt, nil
}
