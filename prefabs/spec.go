package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeSpec re-encodes a loosely typed value (a map decoded from a script or
// another document) and decodes it over dst. Fields missing from raw keep the
// values dst already holds.
func DecodeSpec[T any](raw any, dst *T) error {
	if raw == nil || dst == nil {
		return nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("prefabs: encode override: %w", err)
	}
	if err := yaml.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("prefabs: decode override: %w", err)
	}
	return nil
}

const TuningFile = "tuning.yaml"

// TuningSpec is the on-disk shape of the gameplay tuning. Distances are in
// meters and durations in seconds.
type TuningSpec struct {
	World      WorldSpec      `yaml:"world"`
	Player     PlayerSpec     `yaml:"player"`
	Rocket     RocketSpec     `yaml:"rocket"`
	Explosion  ExplosionSpec  `yaml:"explosion"`
	RecoilWave RecoilWaveSpec `yaml:"recoil_wave"`
	Camera     CameraSpec     `yaml:"camera"`
}

type WorldSpec struct {
	GravityY       float64 `yaml:"gravity_y"`
	Iterations     int     `yaml:"iterations"`
	MaxFrameTime   float64 `yaml:"max_frame_time"`
	ChainReactions bool    `yaml:"chain_reactions"`
}

type PlayerSpec struct {
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	MaxRockets   int     `yaml:"max_rockets"`
	RocketReload float64 `yaml:"rocket_reload"`
	RecoilReload float64 `yaml:"recoil_reload"`
	RecoilCharge float64 `yaml:"recoil_charge"`
	MinImpulse   float64 `yaml:"min_impulse"`
	MaxImpulse   float64 `yaml:"max_impulse"`
}

type RocketSpec struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

type ExplosionSpec struct {
	InitialRadius float64 `yaml:"initial_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	Lifetime      float64 `yaml:"lifetime"`
	BaseStrength  float64 `yaml:"base_strength"`
}

type RecoilWaveSpec struct {
	Lifetime float64 `yaml:"lifetime"`
	Speed    float64 `yaml:"speed"`
	Offset   float64 `yaml:"offset"`
	Width    float64 `yaml:"width"`
	Depth    float64 `yaml:"depth"`
	Damping  float64 `yaml:"damping"`
}

type CameraSpec struct {
	Zoom float64 `yaml:"zoom"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
