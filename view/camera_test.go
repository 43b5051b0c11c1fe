package view

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/common"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(common.BaseWidth, common.BaseHeight, 3)
	c.SnapTo(cp.Vector{X: 40, Y: 20})

	cases := []cp.Vector{{X: 40, Y: 20}, {X: 30, Y: 12}, {X: 55.5, Y: 31.25}}
	for _, p := range cases {
		x, y := c.WorldToScreen(p)
		back := c.ScreenToWorld(x, y)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Fatalf("round trip of %v gave %v", p, back)
		}
	}

	x, y := c.WorldToScreen(c.Pos)
	if math.Abs(x-common.BaseWidth/2) > 1e-9 || math.Abs(y-common.BaseHeight/2) > 1e-9 {
		t.Fatalf("center maps to (%v,%v)", x, y)
	}
}

func TestCameraScale(t *testing.T) {
	c := NewCamera(common.BaseWidth, common.BaseHeight, 3)
	if got := c.Scale(); got != 30 {
		t.Fatalf("scale = %v, want 30 px/m", got)
	}
	c.SetZoom(-1)
	if c.Zoom() != 3 {
		t.Fatalf("non-positive zoom accepted")
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	cases := []struct {
		name   string
		worldW float64
		worldH float64
		target cp.Vector
		want   cp.Vector
	}{
		{"inside", 100, 50, cp.Vector{X: 50, Y: 25}, cp.Vector{X: 50, Y: 25}},
		{"top_left", 100, 50, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 1280.0 / 60, Y: 12}},
		{"bottom_right", 100, 50, cp.Vector{X: 100, Y: 50}, cp.Vector{X: 100 - 1280.0/60, Y: 38}},
		{"narrow_world", 30, 120, cp.Vector{X: 2, Y: 60}, cp.Vector{X: 15, Y: 60}},
		{"unbounded", 0, 0, cp.Vector{X: -500, Y: 900}, cp.Vector{X: -500, Y: 900}},
	}
	for _, tc := range cases {
		c := NewCamera(common.BaseWidth, common.BaseHeight, 3)
		c.SetWorldBounds(tc.worldW, tc.worldH)
		c.SnapTo(tc.target)
		// one pixel of snapping slack
		if math.Abs(c.Pos.X-tc.want.X) > 1.0/30 || math.Abs(c.Pos.Y-tc.want.Y) > 1.0/30 {
			t.Fatalf("%s: camera at %v, want %v", tc.name, c.Pos, tc.want)
		}
	}
}

func TestCameraSmoothing(t *testing.T) {
	c := NewCamera(common.BaseWidth, common.BaseHeight, 3)
	c.SetSmooth(0.5)
	c.Update(cp.Vector{X: 10})
	if math.Abs(c.Pos.X-5) > 1.0/30 {
		t.Fatalf("after one update x = %v, want about 5", c.Pos.X)
	}
	for i := 0; i < 40; i++ {
		c.Update(cp.Vector{X: 10})
	}
	if math.Abs(c.Pos.X-10) > 1.0/30 {
		t.Fatalf("camera did not converge: %v", c.Pos)
	}
}
