package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/rocketjump/common"
	"github.com/milk9111/rocketjump/prefabs"
)

// Tuning is the gameplay configuration, loaded from prefabs/tuning.yaml.
type Tuning = prefabs.TuningSpec

// DefaultTuning matches the embedded tuning.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		World: prefabs.WorldSpec{
			GravityY:     10,
			Iterations:   common.SolverIterations,
			MaxFrameTime: 0.25,
		},
		Player: prefabs.PlayerSpec{
			Radius:       1,
			Mass:         1,
			MaxRockets:   3,
			RocketReload: 1,
			RecoilReload: 1,
			RecoilCharge: 2,
			MinImpulse:   5,
			MaxImpulse:   25,
		},
		Rocket: prefabs.RocketSpec{
			Radius:   0.5,
			Speed:    30,
			Lifetime: 1.5,
		},
		Explosion: prefabs.ExplosionSpec{
			InitialRadius: 1,
			MaxRadius:     2.5,
			Lifetime:      0.5,
			BaseStrength:  60,
		},
		RecoilWave: prefabs.RecoilWaveSpec{
			Lifetime: 1,
			Speed:    30,
			Offset:   1,
			Width:    1,
			Depth:    0.2,
			Damping:  10,
		},
		Camera: prefabs.CameraSpec{Zoom: 3},
	}
}

// LoadTuning reads tuning.yaml (disk copy first, then the embedded one) and
// validates it.
func LoadTuning() (Tuning, error) {
	spec, err := prefabs.LoadTuningSpec()
	if err != nil {
		return Tuning{}, err
	}
	if err := ValidateTuning(*spec); err != nil {
		return Tuning{}, err
	}
	return *spec, nil
}

func ValidateTuning(t Tuning) error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if math.IsNaN(t.World.GravityY) || math.IsInf(t.World.GravityY, 0) {
		errs = append(errs, fmt.Errorf("world.gravity_y must be finite, got %v", t.World.GravityY))
	}
	if t.World.Iterations < 1 {
		errs = append(errs, fmt.Errorf("world.iterations must be at least 1, got %d", t.World.Iterations))
	}
	if !(t.World.MaxFrameTime >= common.StepInterval) {
		errs = append(errs, fmt.Errorf("world.max_frame_time must be at least one step (%v), got %v", common.StepInterval, t.World.MaxFrameTime))
	}

	positive("player.radius", t.Player.Radius)
	positive("player.mass", t.Player.Mass)
	positive("player.rocket_reload", t.Player.RocketReload)
	positive("player.recoil_reload", t.Player.RecoilReload)
	positive("player.recoil_charge", t.Player.RecoilCharge)
	if t.Player.MaxRockets < 1 {
		errs = append(errs, fmt.Errorf("player.max_rockets must be at least 1, got %d", t.Player.MaxRockets))
	}
	if !(t.Player.MinImpulse >= 0) || !(t.Player.MaxImpulse >= t.Player.MinImpulse) || math.IsInf(t.Player.MaxImpulse, 0) {
		errs = append(errs, fmt.Errorf("player.min_impulse %v and player.max_impulse %v do not form a valid range", t.Player.MinImpulse, t.Player.MaxImpulse))
	}

	positive("rocket.radius", t.Rocket.Radius)
	positive("rocket.speed", t.Rocket.Speed)
	positive("rocket.lifetime", t.Rocket.Lifetime)

	positive("explosion.initial_radius", t.Explosion.InitialRadius)
	positive("explosion.lifetime", t.Explosion.Lifetime)
	positive("explosion.base_strength", t.Explosion.BaseStrength)
	if !(t.Explosion.MaxRadius >= t.Explosion.InitialRadius) {
		errs = append(errs, fmt.Errorf("explosion.max_radius %v is below initial_radius %v", t.Explosion.MaxRadius, t.Explosion.InitialRadius))
	}

	positive("recoil_wave.lifetime", t.RecoilWave.Lifetime)
	positive("recoil_wave.width", t.RecoilWave.Width)
	positive("recoil_wave.depth", t.RecoilWave.Depth)
	positive("recoil_wave.speed", t.RecoilWave.Speed)
	if !(t.RecoilWave.Offset >= 0) {
		errs = append(errs, fmt.Errorf("recoil_wave.offset must not be negative, got %v", t.RecoilWave.Offset))
	}
	if !(t.RecoilWave.Damping >= 0) {
		errs = append(errs, fmt.Errorf("recoil_wave.damping must not be negative, got %v", t.RecoilWave.Damping))
	}

	positive("camera.zoom", t.Camera.Zoom)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("arena: invalid tuning: %w", errors.Join(errs...))
}

func rulesFor(t Tuning) Rules {
	return Rules{ChainReactions: t.World.ChainReactions}
}
