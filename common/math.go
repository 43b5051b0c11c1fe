package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// EaseOutCubic maps t in [0,1] onto 1-(1-t)^3: fast start, slow finish.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
