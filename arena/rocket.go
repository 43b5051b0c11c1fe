package arena

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var ErrZeroDirection = errors.New("arena: rocket direction must be non-zero")

// rocketShapeRatio stretches the drawn triangle along the flight direction.
const rocketShapeRatio = 1.2

// minDirectionSq rejects directions too short to normalize reliably.
const minDirectionSq = 1e-12

// Rocket flies in a straight line on a kinematic body, so gravity and contacts
// never deflect it. It detonates at most once, either by hitting something or
// by running out of lifetime.
type Rocket struct {
	entity
	direction cp.Vector
	radius    float64
	remaining float64
	exploded  bool
}

func NewRocket(w *World, pos, direction cp.Vector) (*Rocket, error) {
	if direction.LengthSq() < minDirectionSq {
		return nil, ErrZeroDirection
	}
	t := w.tuning.Rocket
	dir := direction.Normalize()

	body := cp.NewKinematicBody()
	body.SetAngle(dir.ToAngle())
	body.SetPosition(pos)
	body.SetVelocityVector(dir.Mult(t.Speed))
	shape := cp.NewCircle(body, t.Radius, cp.Vector{})

	r := &Rocket{
		direction: dir,
		radius:    t.Radius,
		remaining: t.Lifetime,
	}
	if err := w.attach(&r.entity, r, KindRocket, body, shape); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rocket) Update(dt float64) {
	r.remaining -= dt
}

// ShouldExplodeByAge reports an expired rocket that has not gone off yet.
func (r *Rocket) ShouldExplodeByAge() bool {
	return r.remaining <= 0 && !r.exploded
}

// Collide marks the rocket as detonated. It returns true only for the call
// that made the transition; later calls change nothing.
func (r *Rocket) Collide() bool {
	if r.exploded {
		return false
	}
	r.exploded = true
	return true
}

func (r *Rocket) HasExploded() bool {
	return r.exploded
}

func (r *Rocket) Remaining() float64 {
	return r.remaining
}

func (r *Rocket) Direction() cp.Vector {
	return r.direction
}

func (r *Rocket) Draw(c Canvas) {
	if !r.Alive() {
		return
	}
	pos := r.Position()
	length := r.radius * rocketShapeRatio
	side := r.direction.Perp().Mult(r.radius)
	tip := pos.Add(r.direction.Mult(length))
	tail := pos.Sub(r.direction.Mult(length))
	c.StrokeTriangle(tip, tail.Add(side), tail.Sub(side), rocketColor)
}
