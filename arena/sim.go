package arena

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/common"
	"github.com/milk9111/rocketjump/ecs"
)

// Simulation is one round in an arena: the world, its roster and the fixed
// step loop that drives them.
type Simulation struct {
	world      *World
	contacts   *ContactController
	scheduler  *ecs.Scheduler[*Simulation]
	player     *Player
	wave       *RecoilWave
	walls      []*Wall
	rockets    *RocketRing
	explosions *ExplosionQueue
	events     ecs.Queue[Event]

	dt          float64
	maxFrame    float64
	accumulator float64
	steps       uint64
}

func NewSimulation(t Tuning, layout Layout) (*Simulation, error) {
	if err := ValidateTuning(t); err != nil {
		return nil, err
	}

	w := NewWorld(t)
	s := &Simulation{
		world:      w,
		contacts:   NewContactController(w),
		rockets:    NewRocketRing(t.Player.MaxRockets),
		explosions: &ExplosionQueue{},
		dt:         common.StepInterval,
		maxFrame:   t.World.MaxFrameTime,
	}
	s.scheduler = ecs.NewScheduler[*Simulation](
		physicsPhase{},
		explosionPhase{},
		playerPhase{},
		rocketPhase{},
		rocketCleanupPhase{},
		wavePhase{},
	)

	for i, spec := range layout.Walls {
		wall, err := NewWall(w, spec.TopLeft, spec.Size)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("arena: wall %d: %w", i, err)
		}
		s.walls = append(s.walls, wall)
	}

	var err error
	if s.player, err = NewPlayer(w, layout.Spawn); err != nil {
		w.Close()
		return nil, fmt.Errorf("arena: player: %w", err)
	}
	if s.wave, err = NewRecoilWave(w); err != nil {
		w.Close()
		return nil, fmt.Errorf("arena: recoil wave: %w", err)
	}
	return s, nil
}

// Advance feeds one frame's worth of real time into the accumulator and runs
// as many fixed steps as it covers. Frames longer than the configured maximum
// are clamped. It returns the number of steps run.
func (s *Simulation) Advance(frame float64) int {
	if !(frame > 0) {
		return 0
	}
	s.accumulator += math.Min(frame, s.maxFrame)
	n := 0
	for s.accumulator >= s.dt {
		s.accumulator -= s.dt
		s.Step()
		n++
	}
	return n
}

// Step runs exactly one physics step and one logic update.
func (s *Simulation) Step() {
	s.steps++
	s.scheduler.Update(s)
}

// Shoot fires a rocket from the player toward target. If every ring slot is
// taken, the oldest rocket still in flight goes off where it is first.
func (s *Simulation) Shoot(target cp.Vector) bool {
	rocket, ok := s.player.ShootRocketTowards(target)
	if !ok {
		return false
	}
	if old := s.rockets.Put(rocket); old != nil {
		s.contacts.Detonate(old, old.Position(), CauseDisplaced)
		old.destroy()
	}
	s.emit(Event{Kind: EventRocketFired, Entity: rocket.Handle(), At: rocket.Position()})
	return true
}

func (s *Simulation) StartChargingRecoil() bool {
	return s.player.StartChargingRecoil()
}

// ReleaseRecoil fires a charged recoil away from origin.
func (s *Simulation) ReleaseRecoil(origin cp.Vector) bool {
	impulse, ok := s.player.RecoilFrom(origin, s.wave)
	if !ok {
		return false
	}
	s.emit(Event{Kind: EventRecoilFired, Entity: s.player.Handle(), At: origin, Impulse: impulse})
	return true
}

func (s *Simulation) CancelRecoil() {
	s.player.CancelRecoil()
}

func (s *Simulation) emit(e Event) {
	e.Step = s.steps
	s.events.Push(e)
}

// Events is the queue of things that happened since it was last drained.
func (s *Simulation) Events() *ecs.Queue[Event] {
	return &s.events
}

func (s *Simulation) Draw(c Canvas) {
	for _, w := range s.walls {
		w.Draw(c)
	}
	s.explosions.Each(func(e *Explosion) { e.Draw(c) })
	s.rockets.Each(func(r *Rocket) { r.Draw(c) })
	s.wave.Draw(c)
	s.player.Draw(c)
}

// DrawLabels names every live object at its position with its kind and
// handle.
func (s *Simulation) DrawLabels(c Canvas) {
	s.world.Each(func(o Object) {
		c.Text(o.Position(), fmt.Sprintf("%s %s", o.Kind(), o.Handle()), labelColor)
	})
}

// Close destroys everything in the world and drops undelivered events.
func (s *Simulation) Close() {
	s.world.Close()
	s.contacts.Reset()
	s.events.Clear()
}

func (s *Simulation) World() *World {
	return s.world
}

func (s *Simulation) Contacts() *ContactController {
	return s.contacts
}

func (s *Simulation) Player() *Player {
	return s.player
}

func (s *Simulation) Wave() *RecoilWave {
	return s.wave
}

func (s *Simulation) Walls() []*Wall {
	return s.walls
}

func (s *Simulation) Rockets() []*Rocket {
	return s.rockets.Rockets()
}

func (s *Simulation) Explosions() []*Explosion {
	return s.explosions.Explosions()
}

func (s *Simulation) Steps() uint64 {
	return s.steps
}

// Time is the simulated time in seconds.
func (s *Simulation) Time() float64 {
	return float64(s.steps) * s.dt
}

// Alpha is how far the accumulator has progressed into the next step.
func (s *Simulation) Alpha() float64 {
	return s.accumulator / s.dt
}
