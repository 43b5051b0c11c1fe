package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/arena"
	"github.com/milk9111/rocketjump/view"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.4
)

// DrawPhysicsDebug outlines every shape in the space, colored by kind, and
// labels each object.
func DrawPhysicsDebug(sim *arena.Simulation, cam *view.Camera, screen *ebiten.Image) {
	if sim == nil || cam == nil || screen == nil {
		return
	}
	drawer := &physicsDebugDrawer{canvas: NewCanvas(screen, cam), world: sim.World()}
	cp.DrawSpace(sim.World().Space(), drawer)
	sim.DrawLabels(drawer.canvas)
}

// DrawSimulationDebug prints step counters and the player's timers.
func DrawSimulationDebug(sim *arena.Simulation, screen *ebiten.Image) {
	if sim == nil || screen == nil {
		return
	}
	p := sim.Player()
	v := p.Body().Velocity()
	text := fmt.Sprintf("Step: %d  Time: %.2fs  Bodies: %d\nPlayer: (%.2f, %.2f) v=(%.2f, %.2f)\nAmmo: %d/%d  Reload: %.2f\nRecoil: charging=%v charge=%.2f cooldown=%.2f\nRockets: %d  Explosions: %d  Overlaps: %d",
		sim.Steps(), sim.Time(), sim.World().Len(),
		p.Position().X, p.Position().Y, v.X, v.Y,
		p.Ammo(), p.MaxRockets(), p.RocketReload().Progress(),
		p.Charging(), p.RecoilCharge().Progress(), p.RecoilReload().Progress(),
		len(sim.Rockets()), len(sim.Explosions()), len(sim.Contacts().Overlapping()))
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}

type physicsDebugDrawer struct {
	canvas *Canvas
	world  *arena.World
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawPolygon(circlePoints(pos, radius), outline)
	end := pos.Add(cp.ForAngle(angle).Mult(radius))
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawPolygon(circlePoints(a, radius), outline)
		d.drawPolygon(circlePoints(b, radius), outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(pos.Sub(cp.Vector{X: half}), pos.Add(cp.Vector{X: half}), fill)
	d.drawLine(pos.Sub(cp.Vector{Y: half}), pos.Add(cp.Vector{Y: half}), fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

// ShapeColor tints shapes by the kind of object that owns them.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	obj, ok := d.world.Lookup(shape)
	if !ok {
		return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	}
	switch obj.Kind() {
	case arena.KindPlayer:
		return cp.FColor{R: 0.2, G: 0.6, B: 1, A: 0.9}
	case arena.KindRocket:
		return cp.FColor{R: 1, G: 0.8, B: 0.2, A: 0.9}
	case arena.KindExplosion:
		return cp.FColor{R: 1, G: 0.3, B: 0.1, A: 0.9}
	case arena.KindRecoilWave:
		return cp.FColor{R: 0.6, G: 0.9, B: 1, A: 0.9}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, clr cp.FColor) {
	d.canvas.line(a, b, toNRGBA(clr))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, clr cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func circlePoints(center cp.Vector, radius float64) []cp.Vector {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := 2 * math.Pi * float64(i) / debugCircleSegments
		points = append(points, center.Add(cp.ForAngle(t).Mult(radius)))
	}
	return points
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
