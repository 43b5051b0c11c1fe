package arena

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// Canvas is the drawing surface arena objects render onto. Coordinates and
// lengths are in meters; angles are radians with y pointing down.
type Canvas interface {
	StrokeCircle(center cp.Vector, radius float64, clr color.Color)
	FillCircle(center cp.Vector, radius float64, clr color.Color)
	StrokeTriangle(a, b, c cp.Vector, clr color.Color)
	StrokeRect(bb cp.BB, clr color.Color)
	FillSector(center cp.Vector, radius, from, to float64, clr color.Color)
	StrokeArc(center cp.Vector, radius, from, to float64, clr color.Color)
	Text(at cp.Vector, s string, clr color.Color)
}

var (
	playerColor    = colornames.Red
	reloadColor    = colornames.Orange
	chargeColor    = colornames.Skyblue
	rocketColor    = colornames.White
	explosionColor = colornames.Yellow
	wallColor      = colornames.Lightslategray
	waveColor      = colornames.Lightcyan
	labelColor     = colornames.White
)

// fade returns c with its alpha scaled by f in [0,1].
func fade(c color.RGBA, f float64) color.Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * f)}
}
