package engine

import "testing"

func TestHCTargetLookup(t *testing.T) {
	if got := HCTarget(BuildingOfficePrestige); got != 15.0 {
		t.Errorf("prestige office target = %.1f, expected 15.0", got)
	}
	if got := HCTarget(BuildingResidential); got != 7.5 {
		t.Errorf("residential target = %.1f, expected 7.5", got)
	}
}

func TestHCTargetDefault(t *testing.T) {
	if got := HCTarget("warehouse"); got != DefaultHCTarget {
		t.Errorf("unknown type should use default %.1f, got %.1f", DefaultHCTarget, got)
	}
	if got := HCTarget(""); got != DefaultHCTarget {
		t.Errorf("empty type should use default %.1f, got %.1f", DefaultHCTarget, got)
	}
}

func TestHCTargetsReturnsCopy(t *testing.T) {
	table := HCTargets()
	table[BuildingHotel] = 99

	if HCTarget(BuildingHotel) == 99 {
		t.Error("mutating the returned table must not affect the lookup")
	}
}

func TestDefaultRatedSpeed(t *testing.T) {
	if got := DefaultRatedSpeed(12); got != 1.6 {
		t.Errorf("expected 1.6 m/s under 20 floors, got %.1f", got)
	}
	if got := DefaultRatedSpeed(20); got != 3.5 {
		t.Errorf("expected 3.5 m/s at 20 floors, got %.1f", got)
	}
}
