package matching

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if d := DistanceKm(52.52, 13.405, 52.52, 13.405); d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDistanceKmBerlinMunich(t *testing.T) {
	// Berlin to Munich is roughly 504 km as the crow flies.
	d := DistanceKm(52.52, 13.405, 48.1351, 11.582)
	if math.Abs(d-504) > 5 {
		t.Fatalf("expected ~504 km, got %f", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(52.52, 13.405, 48.1351, 11.582)
	b := DistanceKm(48.1351, 11.582, 52.52, 13.405)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f vs %f", a, b)
	}
}
