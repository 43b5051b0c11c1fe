package arena

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/common"
	"github.com/milk9111/rocketjump/component"
	"github.com/milk9111/rocketjump/prefabs"
)

// recoilFallback is the push direction when the recoil origin sits exactly on
// the player: straight up.
var recoilFallback = cp.Vector{X: 0, Y: -1}

// Player is a round dynamic body with fixed rotation. It carries a rocket
// magazine that refills one rocket per reload interval and a chargeable
// recoil with its own cooldown.
type Player struct {
	entity
	tuning prefabs.PlayerSpec
	radius float64

	ammo         int
	rocketReload *component.Timer

	charging     bool
	recoilCharge *component.Timer
	recoilReload *component.Timer
}

func NewPlayer(w *World, pos cp.Vector) (*Player, error) {
	t := w.tuning.Player

	body := cp.NewBody(t.Mass, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewCircle(body, t.Radius, cp.Vector{})
	shape.SetFriction(0.8)

	p := &Player{
		tuning: t,
		radius: t.Radius,
		ammo:   t.MaxRockets,
	}

	var err error
	if p.rocketReload, err = component.NewTimer(t.RocketReload, p.reloadRocket); err != nil {
		return nil, err
	}
	if p.recoilCharge, err = component.NewTimer(t.RecoilCharge, nil); err != nil {
		return nil, err
	}
	if p.recoilReload, err = component.NewTimer(t.RecoilReload, nil); err != nil {
		return nil, err
	}
	// Recoil is ready at spawn.
	p.recoilReload.SetToComplete()

	if err := w.attach(&p.entity, p, KindPlayer, body, shape); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) reloadRocket() {
	if p.ammo < p.tuning.MaxRockets {
		p.ammo++
	}
	p.rocketReload.Reset()
}

// Update advances the reload and recoil timers. The rocket reload only runs
// while the magazine has room.
func (p *Player) Update(dt float64) {
	if p.ammo < p.tuning.MaxRockets {
		p.rocketReload.Update(dt)
	}
	if p.charging {
		p.recoilCharge.Update(dt)
	} else {
		p.recoilReload.Update(dt)
	}
}

// ShootRocketTowards fires a rocket from the player's center toward target.
// It returns false without spending ammo when the magazine is empty or the
// target is the player's own center.
func (p *Player) ShootRocketTowards(target cp.Vector) (*Rocket, bool) {
	if p.ammo <= 0 {
		return nil, false
	}
	pos := p.Position()
	dir := target.Sub(pos)
	if dir.LengthSq() < minDirectionSq {
		return nil, false
	}
	rocket, err := NewRocket(p.world, pos, dir)
	if err != nil {
		log.Printf("Player: shoot rocket: %v", err)
		return nil, false
	}
	p.ammo--
	return rocket, true
}

// StartChargingRecoil begins a charge if the recoil cooldown has finished.
func (p *Player) StartChargingRecoil() bool {
	if p.charging || !p.recoilReload.Done() {
		return false
	}
	p.charging = true
	p.recoilCharge.Reset()
	return true
}

// CancelRecoil drops a charge in progress without firing it. The cooldown is
// left as it was.
func (p *Player) CancelRecoil() {
	if !p.charging {
		return
	}
	p.charging = false
	p.recoilCharge.Reset()
}

// RecoilFrom releases the charge, pushing the player away from origin with an
// impulse eased between the configured minimum and maximum by how long the
// charge was held. wave, if non-nil, is moved to show the push. It returns the
// impulse magnitude applied.
func (p *Player) RecoilFrom(origin cp.Vector, wave *RecoilWave) (float64, bool) {
	if !p.charging {
		return 0, false
	}
	pos := p.Position()
	dir := pos.Sub(origin)
	if dir.LengthSq() < minDirectionSq {
		dir = recoilFallback
	} else {
		dir = dir.Normalize()
	}

	magnitude := common.Lerp(p.tuning.MinImpulse, p.tuning.MaxImpulse, common.EaseOutCubic(p.recoilCharge.Progress()))
	p.body.ApplyImpulseAtWorldPoint(dir.Mult(magnitude), pos)
	if wave != nil {
		wave.MoveTo(pos, dir)
	}

	p.charging = false
	p.recoilCharge.Reset()
	p.recoilReload.Reset()
	return magnitude, true
}

// FeelExplosion pushes the player away from e's center with e's current
// strength. It adds to the body's force for the next step, so it is meant to
// be called once per step for every explosion the player overlaps.
func (p *Player) FeelExplosion(e *Explosion) {
	if e == nil || !e.Alive() {
		return
	}
	pos := p.Position()
	dir := pos.Sub(e.Position())
	if dir.LengthSq() < minDirectionSq {
		return
	}
	p.body.ApplyForceAtWorldPoint(dir.Normalize().Mult(e.Strength()), pos)
}

func (p *Player) Ammo() int {
	return p.ammo
}

func (p *Player) MaxRockets() int {
	return p.tuning.MaxRockets
}

func (p *Player) Charging() bool {
	return p.charging
}

func (p *Player) RocketReload() *component.Timer {
	return p.rocketReload
}

func (p *Player) RecoilCharge() *component.Timer {
	return p.recoilCharge
}

func (p *Player) RecoilReload() *component.Timer {
	return p.recoilReload
}

func (p *Player) Radius() float64 {
	return p.radius
}

// ReloadWedges describes the magazine as one fill fraction per rocket slot: 1
// for a loaded rocket, the reload progress for the slot being refilled, 0 for
// the rest.
func (p *Player) ReloadWedges() []float64 {
	wedges := make([]float64, p.tuning.MaxRockets)
	for i := range wedges {
		switch {
		case i < p.ammo:
			wedges[i] = 1
		case i == p.ammo:
			wedges[i] = p.rocketReload.Progress()
		}
	}
	return wedges
}

func (p *Player) Draw(c Canvas) {
	if !p.Alive() {
		return
	}
	pos := p.Position()
	wedges := p.ReloadWedges()
	span := 2 * math.Pi / float64(len(wedges))
	for i, fill := range wedges {
		if fill <= 0 {
			continue
		}
		from := -math.Pi/2 + float64(i)*span
		c.FillSector(pos, p.radius*0.6, from, from+span*fill, fade(reloadColor, 0.8))
	}
	c.StrokeCircle(pos, p.radius, playerColor)
	if p.charging {
		c.StrokeArc(pos, p.radius*1.3, -math.Pi/2, -math.Pi/2+2*math.Pi*p.recoilCharge.Progress(), chargeColor)
	}
}
