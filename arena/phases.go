package arena

import "log"

// The per-step phases, in the order NewSimulation schedules them.

// physicsPhase advances the space. Contact callbacks fire in here.
type physicsPhase struct{}

func (physicsPhase) Update(s *Simulation) {
	s.world.Step(s.dt)
}

// explosionPhase ages every explosion and retires the expired ones from the
// front of the queue.
type explosionPhase struct{}

func (explosionPhase) Update(s *Simulation) {
	s.explosions.Each(func(e *Explosion) {
		e.Update(s.dt)
	})
	for {
		e, ok := s.explosions.Front()
		if !ok || !e.IsOver() {
			break
		}
		s.explosions.PopFront()
		s.emit(Event{Kind: EventExplosionExpired, Entity: e.Handle(), At: e.Position()})
		e.destroy()
	}
}

// playerPhase applies explosion pushes, then runs the player's timers.
type playerPhase struct{}

func (playerPhase) Update(s *Simulation) {
	s.contacts.ApplyOverlapForces(s.player)
	s.player.Update(s.dt)
}

// rocketPhase ages rockets, detonates expired ones and turns every pending
// detonation into an explosion.
type rocketPhase struct{}

func (rocketPhase) Update(s *Simulation) {
	s.rockets.Each(func(r *Rocket) {
		r.Update(s.dt)
		if r.ShouldExplodeByAge() {
			s.contacts.Detonate(r, r.Position(), CauseAge)
		}
	})
	s.flush()
}

// rocketCleanupPhase destroys rockets that have detonated.
type rocketCleanupPhase struct{}

func (rocketCleanupPhase) Update(s *Simulation) {
	s.rockets.Sweep((*Rocket).HasExploded)
}

// wavePhase runs the recoil wave's fade timer.
type wavePhase struct{}

func (wavePhase) Update(s *Simulation) {
	s.wave.Update(s.dt)
}

func (s *Simulation) flush() {
	spawned, dets, err := s.contacts.Flush()
	for i, d := range dets {
		s.emit(Event{Kind: EventRocketDetonated, Entity: d.Rocket, At: d.At, Cause: d.Cause})
		if i < len(spawned) {
			s.explosions.Push(spawned[i])
			s.emit(Event{Kind: EventExplosionSpawned, Entity: spawned[i].Handle(), At: d.At})
		}
	}
	if err != nil {
		log.Printf("Simulation: spawn explosion: %v", err)
	}
}
