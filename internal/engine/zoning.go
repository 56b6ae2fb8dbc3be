package engine

// ============================================================================
// ZONING POLICY
// ============================================================================
// Vertical zoning splits a tall building into a low-rise and a high-rise
// zone served from a sky lobby. Zoning is only offered from MinZonedFloors
// stories up; below that the building is always a single zone.

// MinZonedFloors is the minimum building height (in stories) at which
// low/high zoning becomes selectable.
const MinZonedFloors = 35

// ZoneType identifies which slice of the building a fleet serves.
type ZoneType string

const (
	ZoneSingle ZoneType = "single"
	ZoneLow    ZoneType = "low"
	ZoneHigh   ZoneType = "high"
)

// ExpressStrategy selects how the high-zone express jump is priced.
type ExpressStrategy string

const (
	// ExpressLegacyFraction prices the jump as half the building height at a
	// constant floor-to-floor height, run at rated speed.
	ExpressLegacyFraction ExpressStrategy = "legacy_fraction"
	// ExpressZoneDistance prices the jump as the real ground-to-sky-lobby
	// distance under the configured travel mode.
	ExpressZoneDistance ExpressStrategy = "zone_distance"
)

// ZoneConfig describes the zone a fleet is being sized for.
type ZoneConfig struct {
	TotalFloors int      `json:"total_floors"`
	StartFloor  int      `json:"zone_start_floor,omitempty"`
	Type        ZoneType `json:"zone_type,omitempty"`
}

// DefaultSkyLobby returns the default start floor of a high zone: roughly
// half of the building plus one.
func DefaultSkyLobby(totalFloors int) int {
	return totalFloors/2 + 1
}

// Normalize applies the zoning gate and defaults. Buildings under
// MinZonedFloors stories collapse to a single zone from floor 1, an empty
// zone type means single, and a high zone without an explicit sky lobby
// gets the default one.
func (z ZoneConfig) Normalize() ZoneConfig {
	if z.Type == "" {
		z.Type = ZoneSingle
	}
	if z.TotalFloors < MinZonedFloors {
		z.Type = ZoneSingle
	}
	switch z.Type {
	case ZoneHigh:
		if z.StartFloor < 2 {
			z.StartFloor = DefaultSkyLobby(z.TotalFloors)
		}
	default:
		z.StartFloor = 1
	}
	return z
}

// ExpressJumpTime returns the one-way time of the non-stop run bypassing
// the low zone. Zero for single and low zones. The round-trip formulas add
// it twice, once per direction.
func ExpressJumpTime(z ZoneConfig, strategy ExpressStrategy, floorHeight, speed, accel float64, mode TravelMode) (float64, error) {
	z = z.Normalize()
	if z.Type != ZoneHigh {
		return 0, nil
	}

	switch strategy {
	case ExpressZoneDistance:
		distance := float64(z.StartFloor-1) * floorHeight
		return OneWayTravelTime(distance, speed, accel, mode)
	default:
		// Legacy: the jump skips half the building height at the standard
		// floor pitch, with no acceleration modelling.
		if speed <= 0 {
			return 0, nil
		}
		height := float64(z.TotalFloors) / 2 * floorHeight
		return height / speed, nil
	}
}
