package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUniformIdentity(t *testing.T) {
	// The weighted model must reproduce the classical closed forms for a
	// flat profile, without branching on uniformity.
	cases := []struct {
		floors     int
		population float64
	}{
		{12, 400},
		{12, 41.6},
		{8, 10},
		{50, 120},
		{1, 5},
	}

	for _, tc := range cases {
		weighted := ComputeOccupancy(UniformWeights(tc.floors, tc.population), tc.population)
		closed := UniformOccupancy(tc.floors, tc.population)

		if !almostEqual(weighted.ExpectedStops, closed.ExpectedStops, 1e-9) {
			t.Errorf("floors=%d P=%g: S weighted=%.10f closed=%.10f",
				tc.floors, tc.population, weighted.ExpectedStops, closed.ExpectedStops)
		}
		if !almostEqual(weighted.HighestReversal, closed.HighestReversal, 1e-9) {
			t.Errorf("floors=%d P=%g: H weighted=%.10f closed=%.10f",
				tc.floors, tc.population, weighted.HighestReversal, closed.HighestReversal)
		}
	}
}

func TestOccupancyDegenerate(t *testing.T) {
	if occ := ComputeOccupancy(nil, 100); occ != (Occupancy{}) {
		t.Errorf("expected zero occupancy for empty profile, got %+v", occ)
	}
	if occ := ComputeOccupancy([]float64{10, 20}, 0); occ != (Occupancy{}) {
		t.Errorf("expected zero occupancy for P=0, got %+v", occ)
	}
	if occ := UniformOccupancy(0, 100); occ != (Occupancy{}) {
		t.Errorf("expected zero closed-form occupancy for n=0, got %+v", occ)
	}
}

func TestOccupancySingleLoadedFloor(t *testing.T) {
	// All population on the first floor: the car makes exactly one stop and
	// reverses there.
	weights := []float64{80, 0, 0, 0, 0}
	occ := ComputeOccupancy(weights, 80)

	if !almostEqual(occ.ExpectedStops, 1, 1e-9) {
		t.Errorf("expected S=1, got %.6f", occ.ExpectedStops)
	}
	if !almostEqual(occ.HighestReversal, 1, 1e-9) {
		t.Errorf("expected H=1, got %.6f", occ.HighestReversal)
	}
}

func TestOccupancyGrowsWithPopulation(t *testing.T) {
	lo := ComputeOccupancy(UniformWeights(12, 20), 20)
	hi := ComputeOccupancy(UniformWeights(12, 40), 40)

	if hi.ExpectedStops <= lo.ExpectedStops {
		t.Errorf("S should grow with P: S(20)=%.4f S(40)=%.4f", lo.ExpectedStops, hi.ExpectedStops)
	}
	if hi.HighestReversal <= lo.HighestReversal {
		t.Errorf("H should grow with P: H(20)=%.4f H(40)=%.4f", lo.HighestReversal, hi.HighestReversal)
	}
}

func TestOccupancyTopHeavyProfileRaisesReversal(t *testing.T) {
	// Moving population to the top floors must not lower H.
	bottomHeavy := ComputeOccupancy([]float64{50, 30, 10, 5, 5}, 100)
	topHeavy := ComputeOccupancy([]float64{5, 5, 10, 30, 50}, 100)

	if topHeavy.HighestReversal < bottomHeavy.HighestReversal {
		t.Errorf("top-heavy H=%.4f should be >= bottom-heavy H=%.4f",
			topHeavy.HighestReversal, bottomHeavy.HighestReversal)
	}
}
