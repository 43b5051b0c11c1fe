package arena

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/component"
	"github.com/milk9111/rocketjump/prefabs"
)

// waveHalfAngle is half the opening of the drawn wave sector.
const waveHalfAngle = math.Pi / 6

// RecoilWave telegraphs a recoil: a thin slab that slides away from the player
// toward the point it pushed off from and fades out. Its filter touches
// nothing. There is a single wave per arena, moved on every recoil.
type RecoilWave struct {
	entity
	tuning   prefabs.RecoilWaveSpec
	duration *component.Timer
	active   bool
}

func NewRecoilWave(w *World) (*RecoilWave, error) {
	t := w.tuning.RecoilWave

	body := cp.NewBody(1, math.Inf(1))
	body.SetVelocityUpdateFunc(dampedVelocity(t.Damping))
	shape := cp.NewBox2(body, cp.BB{
		L: -t.Offset - t.Depth,
		B: -t.Width / 2,
		R: -t.Offset,
		T: t.Width / 2,
	}, 0)

	wave := &RecoilWave{tuning: t}
	timer, err := component.NewTimer(t.Lifetime, wave.disable)
	if err != nil {
		return nil, err
	}
	wave.duration = timer
	if err := w.attach(&wave.entity, wave, KindRecoilWave, body, shape); err != nil {
		return nil, err
	}
	return wave, nil
}

// dampedVelocity integrates velocity without gravity, shrinking it by
// 1/(1+dt*damping) each step.
func dampedVelocity(damping float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, _ cp.Vector, _ float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, 1/(1+dt*damping), dt)
	}
}

// MoveTo re-arms the wave at pos, facing direction. The wave then travels
// against direction.
func (r *RecoilWave) MoveTo(pos, direction cp.Vector) {
	dir := direction.Normalize()
	r.body.SetAngle(dir.ToAngle())
	r.body.SetPosition(pos)
	r.body.SetVelocityVector(dir.Mult(-r.tuning.Speed))
	r.duration.Reset()
	r.active = true
}

func (r *RecoilWave) Update(dt float64) {
	if !r.active {
		return
	}
	r.duration.Update(dt)
}

func (r *RecoilWave) disable() {
	r.active = false
}

func (r *RecoilWave) Active() bool {
	return r.active
}

// TimeLeft is the remaining visible fraction, 1 right after MoveTo.
func (r *RecoilWave) TimeLeft() float64 {
	if !r.active {
		return 0
	}
	return r.duration.TimeLeft() / r.duration.Length()
}

func (r *RecoilWave) Angle() float64 {
	return r.body.Angle()
}

func (r *RecoilWave) Draw(c Canvas) {
	if !r.active {
		return
	}
	back := r.Angle() + math.Pi
	c.FillSector(r.Position(), r.tuning.Offset+r.tuning.Depth, back-waveHalfAngle, back+waveHalfAngle, fade(waveColor, r.TimeLeft()))
}
