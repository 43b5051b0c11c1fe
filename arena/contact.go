package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/ecs"
)

// Detonation is a rocket that has gone off and still needs its explosion.
type Detonation struct {
	Rocket ecs.Entity
	At     cp.Vector
	Cause  DetonationCause
}

// ContactController turns cp contact callbacks into arena effects. Callbacks
// run inside the space step, so they only record: detonations go into an
// outbox that Flush drains after the step, and player/explosion overlap is
// tracked as a set that the step applies forces from.
type ContactController struct {
	world    *World
	pending  ecs.Queue[Detonation]
	overlaps []ecs.Entity
}

func NewContactController(w *World) *ContactController {
	c := &ContactController{world: w}
	for i, a := range allKinds {
		for _, b := range allKinds[i:] {
			handler := w.space.NewCollisionHandler(a.CollisionType(), b.CollisionType())
			handler.UserData = c
			handler.BeginFunc = beginContact
			handler.SeparateFunc = endContact
		}
	}
	return c
}

func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	c, ok := userData.(*ContactController)
	if !ok || c == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := c.world.Lookup(shapeA)
	b, okB := c.world.Lookup(shapeB)
	if !okA || !okB {
		return false
	}
	if !c.world.rules.Allows(a.Kind(), b.Kind()) {
		return false
	}

	a, b = canonicalObjects(a, b)
	switch {
	case a.Kind() == KindWall && b.Kind() == KindRocket:
		rocket := b.(*Rocket)
		at := rocket.Position()
		if set := arb.ContactPointSet(); set.Count > 0 {
			at = set.Points[0].PointA
		}
		c.Detonate(rocket, at, CauseWall)
	case a.Kind() == KindRocket && b.Kind() == KindExplosion:
		rocket := a.(*Rocket)
		c.Detonate(rocket, rocket.Position(), CauseExplosion)
	case a.Kind() == KindPlayer && b.Kind() == KindExplosion:
		c.addOverlap(b.Handle())
	}
	return true
}

func endContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
	c, ok := userData.(*ContactController)
	if !ok || c == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := c.world.Lookup(shapeA)
	b, okB := c.world.Lookup(shapeB)
	if !okA || !okB {
		return
	}
	a, b = canonicalObjects(a, b)
	if a.Kind() == KindPlayer && b.Kind() == KindExplosion {
		c.removeOverlap(b.Handle())
	}
}

func canonicalObjects(a, b Object) (Object, Object) {
	if b.Kind() < a.Kind() {
		return b, a
	}
	return a, b
}

// Detonate marks r as gone off and queues its explosion at the given point.
// It returns false if r had already detonated, so every rocket yields at most
// one explosion whichever path reaches it first.
func (c *ContactController) Detonate(r *Rocket, at cp.Vector, cause DetonationCause) bool {
	if r == nil || !r.Collide() {
		return false
	}
	c.pending.Push(Detonation{Rocket: r.Handle(), At: at, Cause: cause})
	return true
}

// Reset forgets pending detonations and overlaps without spawning anything.
func (c *ContactController) Reset() {
	c.pending.Clear()
	c.overlaps = nil
}

func (c *ContactController) Pending() int {
	return c.pending.Len()
}

// Flush spawns one explosion per pending detonation. It must run outside the
// space step.
func (c *ContactController) Flush() ([]*Explosion, []Detonation, error) {
	c.world.mustBeUnlocked("flush detonations")
	dets := c.pending.Drain()
	spawned := make([]*Explosion, 0, len(dets))
	for i, d := range dets {
		e, err := NewExplosion(c.world, d.At)
		if err != nil {
			return spawned, dets[:i], err
		}
		spawned = append(spawned, e)
	}
	return spawned, dets, nil
}

// ApplyOverlapForces makes p feel every live explosion it currently overlaps
// and returns how many pushed it.
func (c *ContactController) ApplyOverlapForces(p *Player) int {
	if p == nil || !p.Alive() {
		return 0
	}
	n := 0
	live := c.overlaps[:0]
	for _, h := range c.overlaps {
		obj, ok := c.world.Get(h)
		if !ok {
			continue
		}
		live = append(live, h)
		if e, ok := obj.(*Explosion); ok {
			p.FeelExplosion(e)
			n++
		}
	}
	c.overlaps = live
	return n
}

// Overlapping lists the explosions touching the player in the order they
// first touched.
func (c *ContactController) Overlapping() []ecs.Entity {
	return append([]ecs.Entity(nil), c.overlaps...)
}

func (c *ContactController) addOverlap(h ecs.Entity) {
	for _, o := range c.overlaps {
		if o == h {
			return
		}
	}
	c.overlaps = append(c.overlaps, h)
}

func (c *ContactController) removeOverlap(h ecs.Entity) {
	for i, o := range c.overlaps {
		if o == h {
			c.overlaps = append(c.overlaps[:i], c.overlaps[i+1:]...)
			return
		}
	}
}
