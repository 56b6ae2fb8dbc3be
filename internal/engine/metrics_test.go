package engine

import (
	"errors"
	"testing"

	"github.com/yourorg/liftpro/internal/validation"
)

func TestDeriveMetricsWorkedExample(t *testing.T) {
	// RTT 600s, 2 cars of 20 persons, defaults: interval 300, AWT 210,
	// HC_persons = 20*2*300/300 = 40, HC% = 40/400*100 = 10.
	got, err := DeriveMetrics(600, MetricsConfig{
		NumElevators:     2,
		CarCapacity:      20,
		TargetPopulation: 400,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TrafficMetrics{RTT: 600, Interval: 300, AWT: 210, HCPercent: 10, HCPersons: 40}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestMetricsMonotonicInFleetSize(t *testing.T) {
	derive := func(n int) TrafficMetrics {
		m, err := DeriveMetrics(600, MetricsConfig{
			NumElevators:     n,
			CarCapacity:      20,
			TargetPopulation: 400,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return m
	}

	prev := derive(1)
	for n := 2; n <= 6; n++ {
		cur := derive(n)
		if cur.Interval >= prev.Interval {
			t.Errorf("n=%d: interval %.2f should be < %.2f", n, cur.Interval, prev.Interval)
		}
		if cur.AWT >= prev.AWT {
			t.Errorf("n=%d: AWT %.2f should be < %.2f", n, cur.AWT, prev.AWT)
		}
		if cur.HCPersons <= prev.HCPersons {
			t.Errorf("n=%d: HC_persons %.2f should be > %.2f", n, cur.HCPersons, prev.HCPersons)
		}
		prev = cur
	}
}

func TestFleetSizeIsAConfigurationError(t *testing.T) {
	var perr *validation.ParameterError

	_, err := DeriveMetrics(600, MetricsConfig{NumElevators: 0, CarCapacity: 20})
	if !errors.As(err, &perr) {
		t.Fatalf("expected parameter error for zero elevators, got %v", err)
	}
	if perr.Field != "num_elevators" {
		t.Errorf("expected field num_elevators, got %s", perr.Field)
	}
}

func TestWaitingFactorContract(t *testing.T) {
	// Documented band is [0.6, 0.8]; outside values are caller bugs.
	if _, err := DeriveMetrics(600, MetricsConfig{NumElevators: 2, CarCapacity: 20, WaitingFactor: 0.5}); err == nil {
		t.Error("expected error for waiting factor 0.5")
	}

	m, err := DeriveMetrics(600, MetricsConfig{NumElevators: 2, CarCapacity: 20, WaitingFactor: 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.AWT != Round2(300*0.8) {
		t.Errorf("expected AWT 240, got %.2f", m.AWT)
	}
}

func TestPracticalLoadFactor(t *testing.T) {
	m, err := DeriveMetrics(600, MetricsConfig{
		NumElevators:     2,
		CarCapacity:      20,
		LoadFactor:       PracticalLoadFactor,
		TargetPopulation: 400,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HCPersons != 32 {
		t.Errorf("expected HC_persons 32 at 80%% loading, got %.2f", m.HCPersons)
	}
	if m.HCPercent != 8 {
		t.Errorf("expected HC 8%%, got %.2f", m.HCPercent)
	}
}

func TestZeroRTTGivesZeroSentinel(t *testing.T) {
	m, err := DeriveMetrics(0, MetricsConfig{NumElevators: 2, CarCapacity: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsZero() {
		t.Errorf("expected zero sentinel, got %+v", m)
	}
}

func TestHCPercentWithoutPopulation(t *testing.T) {
	m, err := DeriveMetrics(600, MetricsConfig{NumElevators: 2, CarCapacity: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HCPercent != 0 {
		t.Errorf("expected HC%% 0 without a target population, got %.2f", m.HCPercent)
	}
	if m.HCPersons == 0 {
		t.Error("HC_persons should still be computed")
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.006:    1.01,
		631.8749: 631.87,
		-2.345:   -2.35,
		0:        0,
	}
	for in, want := range cases {
		if got := Round2(in); !almostEqual(got, want, 1e-9) {
			t.Errorf("Round2(%g) = %g, expected %g", in, got, want)
		}
	}
}
