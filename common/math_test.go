package common

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"start", 0, 0},
		{"half", 0.5, 0.875},
		{"end", 1, 1},
		{"below_range", -1, 0},
		{"above_range", 2, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EaseOutCubic(c.in); math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("EaseOutCubic(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	if got := ToPixels(2.5); got != 25 {
		t.Fatalf("ToPixels(2.5) = %v, want 25", got)
	}
	if got := ToMeters(ToPixels(3.7)); math.Abs(got-3.7) > 1e-12 {
		t.Fatalf("round trip = %v, want 3.7", got)
	}
}
