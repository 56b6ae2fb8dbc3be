package engine

import "testing"

func TestZoningGateUnderThreshold(t *testing.T) {
	// Buildings under 35 floors always collapse to a single zone.
	z := ZoneConfig{TotalFloors: 12, StartFloor: 7, Type: ZoneHigh}.Normalize()

	if z.Type != ZoneSingle {
		t.Errorf("expected single zone for 12-floor building, got %s", z.Type)
	}
	if z.StartFloor != 1 {
		t.Errorf("expected start floor 1, got %d", z.StartFloor)
	}
}

func TestDefaultSkyLobby(t *testing.T) {
	if got := DefaultSkyLobby(40); got != 21 {
		t.Errorf("expected sky lobby at 21 for 40 floors, got %d", got)
	}
	if got := DefaultSkyLobby(35); got != 18 {
		t.Errorf("expected sky lobby at 18 for 35 floors, got %d", got)
	}
}

func TestHighZoneDefaultsStartFloor(t *testing.T) {
	z := ZoneConfig{TotalFloors: 40, Type: ZoneHigh}.Normalize()

	if z.Type != ZoneHigh {
		t.Fatalf("expected high zone to survive normalization, got %s", z.Type)
	}
	if z.StartFloor != DefaultSkyLobby(40) {
		t.Errorf("expected default sky lobby %d, got %d", DefaultSkyLobby(40), z.StartFloor)
	}
}

func TestLowZoneStartsAtGround(t *testing.T) {
	z := ZoneConfig{TotalFloors: 40, StartFloor: 9, Type: ZoneLow}.Normalize()

	if z.StartFloor != 1 {
		t.Errorf("low zone must start at floor 1, got %d", z.StartFloor)
	}
}

func TestExpressJumpLegacyFraction(t *testing.T) {
	z := ZoneConfig{TotalFloors: 40, Type: ZoneHigh}
	// Half the building at 3.5 m pitch: (40/2 * 3.5) / 2.0 = 35s.
	got, err := ExpressJumpTime(z, ExpressLegacyFraction, 3.5, 2.0, 0, ConstantSpeed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 35, 1e-12) {
		t.Errorf("expected 35s legacy express jump, got %.6f", got)
	}
}

func TestExpressJumpZoneDistance(t *testing.T) {
	z := ZoneConfig{TotalFloors: 40, StartFloor: 21, Type: ZoneHigh}
	// 20 floors at 3.5 m = 70 m at 3.5 m/s constant = 20s.
	got, err := ExpressJumpTime(z, ExpressZoneDistance, 3.5, 3.5, 0, ConstantSpeed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 20, 1e-12) {
		t.Errorf("expected 20s zone-distance express jump, got %.6f", got)
	}
}

func TestExpressJumpZoneDistanceKinematic(t *testing.T) {
	z := ZoneConfig{TotalFloors: 40, StartFloor: 21, Type: ZoneHigh}
	// 70 m, v=3.5, a=1.0: d_acc = 6.125, trapezoidal: 7 + 57.75/3.5 = 23.5s.
	got, err := ExpressJumpTime(z, ExpressZoneDistance, 3.5, 3.5, 1.0, Kinematic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 23.5, 1e-9) {
		t.Errorf("expected 23.5s kinematic express jump, got %.6f", got)
	}
}

func TestNoExpressJumpForSingleAndLowZones(t *testing.T) {
	for _, zt := range []ZoneType{ZoneSingle, ZoneLow} {
		z := ZoneConfig{TotalFloors: 40, Type: zt}
		got, err := ExpressJumpTime(z, ExpressLegacyFraction, 3.5, 2.0, 0, ConstantSpeed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("zone %s: expected no express jump, got %.6f", zt, got)
		}
	}
}
