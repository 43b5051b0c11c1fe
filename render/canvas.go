package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/view"
)

const (
	strokeWidth = 2
	// arcStep is the largest angle one straight segment of an arc may span.
	arcStep = math.Pi / 24
)

// whiteSubImage is the fill source for triangles. It is the inner pixel of a
// 3x3 white image so sampling never touches the edges.
var whiteSubImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Canvas draws world-space shapes onto an ebiten image through a camera.
type Canvas struct {
	screen *ebiten.Image
	cam    *view.Camera

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas(screen *ebiten.Image, cam *view.Camera) *Canvas {
	return &Canvas{screen: screen, cam: cam}
}

// Reset points the canvas at a new frame's screen.
func (c *Canvas) Reset(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) point(p cp.Vector) (float32, float32) {
	x, y := c.cam.WorldToScreen(p)
	return float32(x), float32(y)
}

func (c *Canvas) length(m float64) float32 {
	return float32(m * c.cam.Scale())
}

func (c *Canvas) StrokeCircle(center cp.Vector, radius float64, clr color.Color) {
	x, y := c.point(center)
	vector.StrokeCircle(c.screen, x, y, c.length(radius), strokeWidth, clr, true)
}

func (c *Canvas) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	x, y := c.point(center)
	vector.FillCircle(c.screen, x, y, c.length(radius), clr, true)
}

func (c *Canvas) StrokeTriangle(a, b, d cp.Vector, clr color.Color) {
	c.line(a, b, clr)
	c.line(b, d, clr)
	c.line(d, a, clr)
}

func (c *Canvas) StrokeRect(bb cp.BB, clr color.Color) {
	x, y := c.point(cp.Vector{X: bb.L, Y: bb.B})
	vector.StrokeRect(c.screen, x, y, c.length(bb.R-bb.L), c.length(bb.T-bb.B), strokeWidth, clr, false)
}

// StrokeArc draws the circle arc from angle from to angle to, in radians,
// as a polyline.
func (c *Canvas) StrokeArc(center cp.Vector, radius, from, to float64, clr color.Color) {
	pts := arcPoints(center, radius, from, to)
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], clr)
	}
}

// FillSector fills the pie slice between angles from and to as a triangle
// fan around center.
func (c *Canvas) FillSector(center cp.Vector, radius, from, to float64, clr color.Color) {
	pts := arcPoints(center, radius, from, to)
	if len(pts) < 2 {
		return
	}
	r, g, b, a := straightAlpha(clr)
	vertex := func(p cp.Vector) ebiten.Vertex {
		x, y := c.point(p)
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a}
	}

	c.vertices = append(c.vertices[:0], vertex(center))
	c.indices = c.indices[:0]
	for i, p := range pts {
		c.vertices = append(c.vertices, vertex(p))
		if i > 0 {
			c.indices = append(c.indices, 0, uint16(i), uint16(i+1))
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.screen.DrawTriangles(c.vertices, c.indices, fillSource(), op)
}

// Text prints a debug label with its top-left corner at the world point p.
func (c *Canvas) Text(p cp.Vector, s string, _ color.Color) {
	x, y := c.cam.WorldToScreen(p)
	ebitenutil.DebugPrintAt(c.screen, s, int(x), int(y))
}

func (c *Canvas) line(a, b cp.Vector, clr color.Color) {
	x1, y1 := c.point(a)
	x2, y2 := c.point(b)
	vector.StrokeLine(c.screen, x1, y1, x2, y2, strokeWidth, clr, true)
}

func arcPoints(center cp.Vector, radius, from, to float64) []cp.Vector {
	span := to - from
	if radius <= 0 || span == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(span) / arcStep))
	pts := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, center.Add(cp.ForAngle(from+span*float64(i)/float64(n)).Mult(radius)))
	}
	return pts
}

func straightAlpha(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
