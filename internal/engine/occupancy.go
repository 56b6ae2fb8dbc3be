package engine

import "math"

// ============================================================================
// OCCUPANCY MODEL
// ============================================================================
// Probabilistic model of a single up-peak trip: given the population weight
// of each served floor, computes the expected number of stops (S) and the
// expected highest reversal floor (H). Both follow the classical CIBSE
// Guide D treatment, generalized to a non-uniform population profile.

// Occupancy holds the probabilistic results for one trip.
type Occupancy struct {
	ExpectedStops   float64 `json:"expected_stops"`   // S
	HighestReversal float64 `json:"highest_reversal"` // H
}

// ComputeOccupancy returns S and H for an ordered per-floor population
// profile. weights[i] is the population of served floor i+1 and population
// is the passenger total used as the trial count (normally the sum of the
// weights; the caller reconciles any declared total).
//
// Floors with zero weight contribute nothing to S, so the weighted form
// subsumes the uniform closed form exactly when all weights are equal.
func ComputeOccupancy(weights []float64, population float64) Occupancy {
	if population <= 0 || len(weights) == 0 {
		return Occupancy{}
	}

	var stops, reversal, cumulative float64
	for _, w := range weights {
		if w < 0 {
			w = 0
		}
		p := w / population

		// P(car stops at floor i) = 1 - (1 - p_i)^P
		stops += 1 - math.Pow(1-p, population)

		// P(reversal floor >= i) = 1 - C_{i-1}^P
		reversal += 1 - math.Pow(cumulative, population)
		cumulative += p
	}

	return Occupancy{ExpectedStops: stops, HighestReversal: reversal}
}

// UniformOccupancy returns the classical closed forms for n equally
// populated floors:
//
//	S = n(1 - (1 - 1/n)^P)
//	H = n - Σ_{i=1}^{n-1} (i/n)^P
//
// Kept as an independent formulation so the weighted model can be verified
// against it numerically.
func UniformOccupancy(floors int, population float64) Occupancy {
	if population <= 0 || floors <= 0 {
		return Occupancy{}
	}

	n := float64(floors)
	stops := n * (1 - math.Pow(1-1/n, population))

	reversal := n
	for i := 1; i < floors; i++ {
		reversal -= math.Pow(float64(i)/n, population)
	}

	return Occupancy{ExpectedStops: stops, HighestReversal: reversal}
}

// UniformWeights builds a flat population profile: floors entries summing
// to population. Used by the bulk entry mode.
func UniformWeights(floors int, population float64) []float64 {
	if floors <= 0 {
		return nil
	}
	weights := make([]float64, floors)
	per := population / float64(floors)
	for i := range weights {
		weights[i] = per
	}
	return weights
}
