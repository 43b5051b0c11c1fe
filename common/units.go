package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// PixelsPerMeter is the fixed scale between simulation units and screen pixels.
const PixelsPerMeter = 10.0

const (
	StepInterval     = 1.0 / 60.0
	SolverIterations = 10
)

func ToPixels(meters float64) float64 {
	return meters * PixelsPerMeter
}

func ToMeters(pixels float64) float64 {
	return pixels / PixelsPerMeter
}
