package arena

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/common"
	"github.com/milk9111/rocketjump/prefabs"
)

// Explosion is a growing sensor circle. Its push is strongest at birth and
// weakens as the radius eases out toward its maximum.
type Explosion struct {
	entity
	circle *cp.Circle
	tuning prefabs.ExplosionSpec
	age    float64
}

func NewExplosion(w *World, pos cp.Vector) (*Explosion, error) {
	t := w.tuning.Explosion

	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewCircle(body, t.InitialRadius, cp.Vector{})

	e := &Explosion{
		circle: shape.Class.(*cp.Circle),
		tuning: t,
	}
	if err := w.attach(&e.entity, e, KindExplosion, body, shape); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Explosion) Update(dt float64) {
	e.age += dt
	e.circle.SetRadius(e.Radius())
}

// Ratio is the fraction of the lifetime already spent, clamped to [0,1].
func (e *Explosion) Ratio() float64 {
	return math.Min(e.age/e.tuning.Lifetime, 1)
}

func (e *Explosion) Radius() float64 {
	t := e.tuning
	return t.InitialRadius + (t.MaxRadius-t.InitialRadius)*common.EaseOutCubic(e.Ratio())
}

// Strength is the force magnitude applied to anything the explosion overlaps.
func (e *Explosion) Strength() float64 {
	return e.tuning.BaseStrength / e.Radius()
}

func (e *Explosion) IsOver() bool {
	return e.age >= e.tuning.Lifetime
}

func (e *Explosion) Draw(c Canvas) {
	if !e.Alive() {
		return
	}
	c.FillCircle(e.Position(), e.Radius(), fade(explosionColor, 0.25*(1-e.Ratio())))
	c.StrokeCircle(e.Position(), e.Radius(), fade(explosionColor, 1-e.Ratio()*0.8))
}
