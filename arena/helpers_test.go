package arena

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

// flatTuning is the default tuning without gravity, so bodies only move when
// something pushes them.
func flatTuning() Tuning {
	t := DefaultTuning()
	t.World.GravityY = 0
	return t
}

func newTestSimulation(t *testing.T, tune Tuning, layout Layout) *Simulation {
	t.Helper()
	s, err := NewSimulation(tune, layout)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func wallAt(x, y, w, h float64) WallSpec {
	return WallSpec{TopLeft: cp.Vector{X: x, Y: y}, Size: cp.Vector{X: w, Y: h}}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func drain(s *Simulation, kind EventKind) []Event {
	var out []Event
	for _, e := range s.Events().Drain() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type recordingCanvas struct {
	calls map[string]int
	texts []string
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{calls: make(map[string]int)}
}

func (c *recordingCanvas) StrokeCircle(cp.Vector, float64, color.Color) { c.calls["stroke_circle"]++ }
func (c *recordingCanvas) FillCircle(cp.Vector, float64, color.Color)   { c.calls["fill_circle"]++ }
func (c *recordingCanvas) StrokeTriangle(_, _, _ cp.Vector, _ color.Color) {
	c.calls["stroke_triangle"]++
}
func (c *recordingCanvas) StrokeRect(cp.BB, color.Color) { c.calls["stroke_rect"]++ }
func (c *recordingCanvas) FillSector(cp.Vector, float64, float64, float64, color.Color) {
	c.calls["fill_sector"]++
}
func (c *recordingCanvas) StrokeArc(cp.Vector, float64, float64, float64, color.Color) {
	c.calls["stroke_arc"]++
}
func (c *recordingCanvas) Text(_ cp.Vector, s string, _ color.Color) {
	c.calls["text"]++
	c.texts = append(c.texts, s)
}
