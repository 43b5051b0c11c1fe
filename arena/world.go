package arena

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/ecs"
)

var (
	ErrNoBody      = errors.New("arena: entity needs a body and a shape")
	ErrWorldLocked = errors.New("arena: world is stepping")
)

// World owns the cp space and every object living in it. Objects are reached
// through generational handles; the handle is what cp carries around in
// shape.UserData.
type World struct {
	space    *cp.Space
	tuning   Tuning
	rules    Rules
	entities *ecs.Registry[Object]
	stepping bool
}

func NewWorld(t Tuning) *World {
	space := cp.NewSpace()
	space.Iterations = uint(max(t.World.Iterations, 1))
	space.SetGravity(cp.Vector{X: 0, Y: t.World.GravityY})
	return &World{
		space:    space,
		tuning:   t,
		rules:    rulesFor(t),
		entities: ecs.NewRegistry[Object](),
	}
}

func (w *World) Space() *cp.Space {
	return w.space
}

func (w *World) Tuning() Tuning {
	return w.tuning
}

func (w *World) Rules() Rules {
	return w.rules
}

// Step advances the physics space. Contact callbacks run inside it; anything
// that adds or removes bodies while it runs panics.
func (w *World) Step(dt float64) {
	w.stepping = true
	defer func() { w.stepping = false }()
	w.space.Step(dt)
}

// Lookup resolves the object owning shape. It fails for shapes that were never
// attached or whose owner has been destroyed.
func (w *World) Lookup(shape *cp.Shape) (Object, bool) {
	if shape == nil {
		return nil, false
	}
	h, ok := shape.UserData.(ecs.Entity)
	if !ok {
		return nil, false
	}
	return w.entities.Get(h)
}

func (w *World) Get(h ecs.Entity) (Object, bool) {
	return w.entities.Get(h)
}

func (w *World) Len() int {
	return w.entities.Len()
}

// Each visits live objects in creation order.
func (w *World) Each(fn func(Object)) {
	w.entities.Each(func(_ ecs.Entity, o Object) {
		fn(o)
	})
}

// Close destroys every object still alive.
func (w *World) Close() {
	w.Each(func(o Object) {
		o.Destroy()
	})
}

func (w *World) mustBeUnlocked(op string) {
	if w.stepping {
		panic(fmt.Errorf("%w: %s", ErrWorldLocked, op))
	}
}
