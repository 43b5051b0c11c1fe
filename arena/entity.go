package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/ecs"
)

// Object is anything living in the arena. Each one owns exactly one cp body
// and one shape.
type Object interface {
	Handle() ecs.Entity
	Kind() Kind
	Body() *cp.Body
	Shape() *cp.Shape
	Position() cp.Vector
	Alive() bool
	Update(dt float64)
	Draw(c Canvas)
	Destroy()
}

// entity is embedded by every concrete kind and carries the body/shape pair.
type entity struct {
	world  *World
	handle ecs.Entity
	kind   Kind
	body   *cp.Body
	shape  *cp.Shape
	alive  bool
}

// attach registers owner under a fresh handle, configures the shape for kind
// and adds both to the space. The body becomes owned by the entity.
func (w *World) attach(e *entity, owner Object, kind Kind, body *cp.Body, shape *cp.Shape) error {
	w.mustBeUnlocked("attach " + kind.String())
	if body == nil || shape == nil || shape.Body() != body {
		return ErrNoBody
	}

	e.world = w
	e.kind = kind
	e.body = body
	e.shape = shape
	e.handle = w.entities.Insert(owner)

	shape.SetSensor(kind.Sensor())
	shape.SetCollisionType(kind.CollisionType())
	shape.SetFilter(w.rules.Filter(kind))
	shape.UserData = e.handle

	w.space.AddBody(body)
	w.space.AddShape(shape)
	e.alive = true
	return nil
}

// destroy removes the shape, then the body, then the handle. Safe to call
// more than once.
func (e *entity) destroy() {
	if e == nil || !e.alive {
		return
	}
	e.world.mustBeUnlocked("destroy " + e.kind.String())
	e.alive = false
	// Removing the shape may run separate callbacks, which still need the
	// handle to resolve.
	e.world.space.RemoveShape(e.shape)
	e.world.space.RemoveBody(e.body)
	e.world.entities.Remove(e.handle)
}

func (e *entity) Handle() ecs.Entity {
	return e.handle
}

func (e *entity) Kind() Kind {
	return e.kind
}

func (e *entity) Body() *cp.Body {
	return e.body
}

func (e *entity) Shape() *cp.Shape {
	return e.shape
}

func (e *entity) Position() cp.Vector {
	return e.body.Position()
}

func (e *entity) Alive() bool {
	return e != nil && e.alive
}

func (e *entity) Destroy() {
	e.destroy()
}
