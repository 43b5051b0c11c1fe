package arena

import (
	"testing"

	"github.com/jakecoffman/cp"
)

// A rocket aimed at a wall 10m away reaches it in about a third of a second,
// well inside a half second lifetime.
func TestRocketHitsWallBeforeAgeTimeout(t *testing.T) {
	tune := flatTuning()
	tune.Rocket.Lifetime = 0.5
	s := newTestSimulation(t, tune, Layout{
		Spawn: cp.Vector{},
		Walls: []WallSpec{wallAt(10, -5, 2, 10)},
	})

	if !s.Shoot(cp.Vector{X: 10, Y: 0}) {
		t.Fatalf("Shoot refused")
	}
	rocket := s.Rockets()[0]
	s.Events().Drain()

	var detonations, spawned []Event
	for i := 0; i < 60; i++ {
		s.Step()
		for _, e := range s.Events().Drain() {
			switch e.Kind {
			case EventRocketDetonated:
				detonations = append(detonations, e)
			case EventExplosionSpawned:
				spawned = append(spawned, e)
			}
		}
	}

	if len(detonations) != 1 || len(spawned) != 1 {
		t.Fatalf("detonations=%d explosions=%d, want 1 and 1", len(detonations), len(spawned))
	}
	d := detonations[0]
	if d.Cause != CauseWall {
		t.Fatalf("cause = %s, want wall", d.Cause)
	}
	if d.Step >= 30 {
		t.Fatalf("wall hit at step %d, not before the age timeout", d.Step)
	}
	if d.At.X < 9 || d.At.X > 11 {
		t.Fatalf("detonation at %v, expected on the wall face", d.At)
	}
	if !rocket.HasExploded() || rocket.Alive() {
		t.Fatalf("rocket exploded=%v alive=%v", rocket.HasExploded(), rocket.Alive())
	}
	if len(s.Rockets()) != 0 {
		t.Fatalf("%d rockets still in flight", len(s.Rockets()))
	}
}

// With nothing to hit, a rocket goes off when its lifetime runs out.
func TestRocketDetonatesByAge(t *testing.T) {
	tune := flatTuning()
	tune.Rocket.Lifetime = 0.5
	s := newTestSimulation(t, tune, Layout{Spawn: cp.Vector{}})

	s.Shoot(cp.Vector{X: 1})
	s.Events().Drain()

	var detonations, spawned []Event
	for i := 0; i < 90; i++ {
		s.Step()
		for _, e := range s.Events().Drain() {
			switch e.Kind {
			case EventRocketDetonated:
				detonations = append(detonations, e)
			case EventExplosionSpawned:
				spawned = append(spawned, e)
			}
		}
	}

	if len(detonations) != 1 || len(spawned) != 1 {
		t.Fatalf("detonations=%d explosions=%d, want 1 and 1", len(detonations), len(spawned))
	}
	d := detonations[0]
	if d.Cause != CauseAge {
		t.Fatalf("cause = %s, want age", d.Cause)
	}
	if d.Step != 30 && d.Step != 31 {
		t.Fatalf("age detonation at step %d, want 30 or 31", d.Step)
	}
	// 0.5m per step along +x.
	if want := float64(d.Step) * 0.5; d.At.X < want-0.01 || d.At.X > want+0.01 || !near(d.At.Y, 0) {
		t.Fatalf("detonation at %v, want (%v, 0)", d.At, want)
	}
}

func TestSimultaneousWallHitsAllDetonate(t *testing.T) {
	s := newTestSimulation(t, flatTuning(), Layout{
		Spawn: cp.Vector{},
		Walls: []WallSpec{wallAt(10, -5, 2, 10), wallAt(-12, -5, 2, 10)},
	})
	s.Shoot(cp.Vector{X: 10})
	s.Shoot(cp.Vector{X: -10})
	s.Events().Drain()

	steps := map[uint64]int{}
	for i := 0; i < 40; i++ {
		s.Step()
		for _, e := range drain(s, EventExplosionSpawned) {
			steps[e.Step]++
		}
	}
	if len(steps) != 1 {
		t.Fatalf("explosions spread over steps %v, want one step", steps)
	}
	for step, n := range steps {
		if n != 2 {
			t.Fatalf("step %d spawned %d explosions, want 2", step, n)
		}
	}
}

func TestChainReactions(t *testing.T) {
	cases := []struct {
		name  string
		chain bool
		want  DetonationCause
	}{
		{"disabled", false, CauseWall},
		{"enabled", true, CauseExplosion},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tune := flatTuning()
			tune.World.ChainReactions = c.chain
			s := newTestSimulation(t, tune, Layout{
				Spawn: cp.Vector{},
				Walls: []WallSpec{wallAt(10, -5, 2, 10)},
			})

			s.Shoot(cp.Vector{X: 10})
			for i := 0; i < 40 && len(s.Explosions()) == 0; i++ {
				s.Step()
			}
			if len(s.Explosions()) != 1 {
				t.Fatalf("first rocket never exploded")
			}
			s.Events().Drain()

			s.Shoot(cp.Vector{X: 10})
			var second []Event
			for i := 0; i < 30 && len(second) == 0; i++ {
				s.Step()
				second = drain(s, EventRocketDetonated)
			}
			if len(second) != 1 {
				t.Fatalf("second rocket detonations = %d", len(second))
			}
			if second[0].Cause != c.want {
				t.Fatalf("cause = %s, want %s", second[0].Cause, c.want)
			}
		})
	}
}

func TestDetonateIsOncePerRocket(t *testing.T) {
	s := newTestSimulation(t, flatTuning(), Layout{Spawn: cp.Vector{}})
	s.Shoot(cp.Vector{X: 1})
	r := s.Rockets()[0]

	c := s.Contacts()
	if !c.Detonate(r, r.Position(), CauseWall) {
		t.Fatalf("first Detonate refused")
	}
	if c.Detonate(r, r.Position(), CauseAge) {
		t.Fatalf("second Detonate accepted")
	}
	if c.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", c.Pending())
	}

	s.Step()
	if n := len(s.Explosions()); n != 1 {
		t.Fatalf("explosions = %d, want 1", n)
	}
	if c.Pending() != 0 {
		t.Fatalf("outbox not drained")
	}
	if r.Alive() {
		t.Fatalf("detonated rocket not cleaned up")
	}
}

func TestFlushRejectedWhileStepping(t *testing.T) {
	s := newTestSimulation(t, flatTuning(), Layout{Spawn: cp.Vector{}})
	s.world.stepping = true
	defer func() {
		s.world.stepping = false
		if recover() == nil {
			t.Fatalf("Flush did not panic while stepping")
		}
	}()
	s.Contacts().Flush()
}
