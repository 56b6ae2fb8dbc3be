package engine

// ============================================================================
// HANDLING CAPACITY BENCHMARKS
// ============================================================================
// Target 5-minute handling capacities (% of population) per building type,
// as quoted in sizing guides. Pure lookup with an explicit default for
// unrecognized types.

// BuildingType enumerates the building classes offered by the form.
type BuildingType string

const (
	BuildingOfficePrestige BuildingType = "office_prestige"
	BuildingOfficeStandard BuildingType = "office_standard"
	BuildingResidential    BuildingType = "residential"
	BuildingHotel          BuildingType = "hotel"
	BuildingHospital       BuildingType = "hospital"
)

// DefaultHCTarget applies when the building type is unknown.
const DefaultHCTarget = 12.0

var hcTargets = map[BuildingType]float64{
	BuildingOfficePrestige: 15.0,
	BuildingOfficeStandard: 12.0,
	BuildingResidential:    7.5,
	BuildingHotel:          12.0,
	BuildingHospital:       10.0,
}

// HCTarget returns the benchmark handling-capacity percentage for a
// building type, or DefaultHCTarget for unrecognized types.
func HCTarget(bt BuildingType) float64 {
	if target, ok := hcTargets[bt]; ok {
		return target
	}
	return DefaultHCTarget
}

// HCTargets returns a copy of the full benchmark table.
func HCTargets() map[BuildingType]float64 {
	out := make(map[BuildingType]float64, len(hcTargets))
	for bt, target := range hcTargets {
		out[bt] = target
	}
	return out
}

// DefaultRatedSpeed suggests a rated speed for the form: 1.6 m/s for
// low-rise buildings, 3.5 m/s from 20 stories up.
func DefaultRatedSpeed(totalFloors int) float64 {
	if totalFloors < 20 {
		return 1.6
	}
	return 3.5
}
