package engine

import (
	"math"

	"github.com/yourorg/liftpro/internal/validation"
)

// ============================================================================
// TRAVEL TIME MODEL
// ============================================================================
// One-way travel time for a distance under a kinematic regime. Two modes:
//
//   - ConstantSpeed: t = d / v (the legacy constant-velocity assumption)
//   - Kinematic:     acceleration-limited triangular or trapezoidal
//                    velocity profile depending on whether the car reaches
//                    rated speed before the midpoint
//
// Jerk limiting is accepted at the configuration layer but intentionally
// not part of this formula; see FleetConfig.Jerk.

// TravelMode selects the velocity-profile regime.
type TravelMode string

const (
	// ConstantSpeed assumes the car travels the whole distance at rated speed.
	ConstantSpeed TravelMode = "constant"
	// Kinematic applies an acceleration-limited triangular/trapezoidal profile.
	Kinematic TravelMode = "kinematic"
)

// OneWayTravelTime returns the time in seconds to cover distance meters.
//
// In ConstantSpeed mode (or for a non-positive distance) the result is
// distance/speed, or 0 when speed is not positive. In Kinematic mode the
// preconditions distance >= 0, speed > 0 and accel > 0 are enforced up
// front so the square root below can never see a negative argument.
func OneWayTravelTime(distance, speed, accel float64, mode TravelMode) (float64, error) {
	if err := validation.Finite(distance, "distance"); err != nil {
		return 0, err
	}
	if distance < 0 {
		return 0, &validation.ParameterError{
			Field: "distance", Value: distance, Message: "must not be negative",
		}
	}

	if mode != Kinematic || distance == 0 {
		if speed <= 0 {
			return 0, nil
		}
		return distance / speed, nil
	}

	if err := validation.Positive(speed, "rated_speed"); err != nil {
		return 0, err
	}
	if err := validation.Positive(accel, "acceleration"); err != nil {
		return 0, err
	}

	// Distance needed to accelerate from rest to rated speed.
	dAcc := speed * speed / (2 * accel)

	if distance < 2*dAcc {
		// Never reaches rated speed: triangular profile.
		return 2 * math.Sqrt(distance/accel), nil
	}

	// Accelerate, cruise, decelerate: trapezoidal profile.
	return 2*(speed/accel) + (distance-2*dAcc)/speed, nil
}
