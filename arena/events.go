package arena

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/ecs"
)

// DetonationCause records what set a rocket off.
type DetonationCause int

const (
	CauseWall DetonationCause = iota
	CauseExplosion
	CauseAge
	CauseDisplaced
)

func (c DetonationCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseExplosion:
		return "explosion"
	case CauseAge:
		return "age"
	case CauseDisplaced:
		return "displaced"
	}
	return "unknown"
}

type EventKind int

const (
	EventRocketFired EventKind = iota
	EventRocketDetonated
	EventExplosionSpawned
	EventExplosionExpired
	EventRecoilFired
)

func (k EventKind) String() string {
	switch k {
	case EventRocketFired:
		return "rocket_fired"
	case EventRocketDetonated:
		return "rocket_detonated"
	case EventExplosionSpawned:
		return "explosion_spawned"
	case EventExplosionExpired:
		return "explosion_expired"
	case EventRecoilFired:
		return "recoil_fired"
	}
	return "unknown"
}

// Event is something that happened during a step, for the HUD and logs.
type Event struct {
	Kind    EventKind
	Step    uint64
	Entity  ecs.Entity
	At      cp.Vector
	Cause   DetonationCause
	Impulse float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventRocketDetonated:
		return fmt.Sprintf("step %d %s %s cause=%s at=(%.2f, %.2f)", e.Step, e.Kind, e.Entity, e.Cause, e.At.X, e.At.Y)
	case EventRecoilFired:
		return fmt.Sprintf("step %d %s impulse=%.2f toward=(%.2f, %.2f)", e.Step, e.Kind, e.Impulse, e.At.X, e.At.Y)
	}
	return fmt.Sprintf("step %d %s %s at=(%.2f, %.2f)", e.Step, e.Kind, e.Entity, e.At.X, e.At.Y)
}
