package view

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/common"
)

// Camera maps world meters onto a screen of fixed pixel size. Pos is the
// world point shown at the center of the screen.
type Camera struct {
	Pos cp.Vector

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	// world bounds in meters (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: 1, smooth: 0.15}
	c.SetZoom(zoom)
	return c
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds limits the view to [0,w]x[0,h] meters.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Scale is the number of screen pixels per world meter.
func (c *Camera) Scale() float64 {
	return c.zoom * common.PixelsPerMeter
}

// ViewSize is the visible area in meters.
func (c *Camera) ViewSize() cp.Vector {
	s := c.Scale()
	return cp.Vector{X: float64(c.screenW) / s, Y: float64(c.screenH) / s}
}

// ViewTopLeft is the world point drawn at the screen origin.
func (c *Camera) ViewTopLeft() cp.Vector {
	return c.Pos.Sub(c.ViewSize().Mult(0.5))
}

// Visible is the world rectangle currently on screen.
func (c *Camera) Visible() cp.BB {
	tl := c.ViewTopLeft()
	size := c.ViewSize()
	return cp.NewBBForExtents(tl.Add(size.Mult(0.5)), size.X/2, size.Y/2)
}

func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	tl := c.ViewTopLeft()
	s := c.Scale()
	return (p.X - tl.X) * s, (p.Y - tl.Y) * s
}

func (c *Camera) ScreenToWorld(x, y float64) cp.Vector {
	tl := c.ViewTopLeft()
	s := c.Scale()
	return cp.Vector{X: tl.X + x/s, Y: tl.Y + y/s}
}

// Update moves the camera toward target. Call once per fixed step so the
// smoothing does not depend on the frame rate.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 || c.smooth >= 1 {
		c.Pos = target
	} else {
		c.Pos = c.Pos.Add(target.Sub(c.Pos).Mult(c.smooth))
	}
	c.settle()
}

// SnapTo centers the camera on target immediately, e.g. after a level load.
func (c *Camera) SnapTo(target cp.Vector) {
	c.Pos = target
	c.settle()
}

// settle snaps to the pixel grid and clamps to the world bounds.
func (c *Camera) settle() {
	s := c.Scale()
	c.Pos.X = math.Round(c.Pos.X*s) / s
	c.Pos.Y = math.Round(c.Pos.Y*s) / s

	half := c.ViewSize().Mult(0.5)
	c.Pos.X = clampAxis(c.Pos.X, half.X, c.worldW)
	c.Pos.Y = clampAxis(c.Pos.Y, half.Y, c.worldH)
}

func clampAxis(v, half, size float64) float64 {
	if size <= 0 {
		return v
	}
	if size-half < half {
		// world smaller than view: center on world
		return size / 2
	}
	return common.Clamp(v, half, size-half)
}
