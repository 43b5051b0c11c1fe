// Package script compiles tengo scenario files into timed lists of player
// actions that can be replayed against a simulation.
package script

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/prefabs"
)

const defaultDuration = 5.0

var (
	ErrEmptyScript   = errors.New("script: empty scenario")
	ErrBadTime       = errors.New("script: action time out of range")
	ErrBadDuration   = errors.New("script: duration must be positive")
	ErrTuneArgument  = errors.New("script: tune expects a map")
	ErrUnknownAction = errors.New("script: unknown action")
)

type Op int

const (
	OpShoot Op = iota + 1
	OpCharge
	OpRelease
	OpCancel
)

func (o Op) String() string {
	switch o {
	case OpShoot:
		return "shoot"
	case OpCharge:
		return "charge"
	case OpRelease:
		return "release"
	case OpCancel:
		return "cancel"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Action is one input at a scenario time in seconds. Target is the aim point
// for shoot and the push origin for release.
type Action struct {
	At     float64
	Op     Op
	Target cp.Vector
}

func (a Action) String() string {
	switch a.Op {
	case OpShoot, OpRelease:
		return fmt.Sprintf("%.3fs %s (%.2f, %.2f)", a.At, a.Op, a.Target.X, a.Target.Y)
	}
	return fmt.Sprintf("%.3fs %s", a.At, a.Op)
}

// Scenario is a compiled script.
type Scenario struct {
	Name      string
	Duration  float64
	Actions   []Action
	Overrides map[string]any
}

// Tune applies the scenario's tuning overrides on top of t.
func (s *Scenario) Tune(t *prefabs.TuningSpec) error {
	if s == nil || len(s.Overrides) == 0 {
		return nil
	}
	if err := prefabs.DecodeSpec(s.Overrides, t); err != nil {
		return fmt.Errorf("script: %s: %w", s.Name, err)
	}
	return nil
}

// Load compiles the named script from prefabs/scripts.
func Load(name string, spawn cp.Vector) (*Scenario, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return Compile(name, src, spawn)
}

// Compile runs src once with a `scenario` builder and the spawn point bound
// as `spawn_x` and `spawn_y`, and collects what it recorded. Actions are
// ordered by time; actions at the same time keep their script order.
func Compile(name string, src []byte, spawn cp.Vector) (*Scenario, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScript, name)
	}

	b := &builder{sc: &Scenario{Name: name, Duration: defaultDuration}}
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := s.Add("scenario", b.module()); err != nil {
		return nil, err
	}
	if err := s.Add("spawn_x", spawn.X); err != nil {
		return nil, err
	}
	if err := s.Add("spawn_y", spawn.Y); err != nil {
		return nil, err
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run %s: %w", name, err)
	}

	sc := b.sc
	slices.SortStableFunc(sc.Actions, func(a, b Action) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})
	if n := len(sc.Actions); n > 0 && sc.Actions[n-1].At > sc.Duration {
		return nil, fmt.Errorf("%w: %s: %s is after the %.2fs end", ErrBadTime, name, sc.Actions[n-1], sc.Duration)
	}
	return sc, nil
}

type builder struct {
	sc *Scenario
}

func (b *builder) module() *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"duration": &tengo.UserFunction{Name: "duration", Value: b.duration},
		"shoot":    &tengo.UserFunction{Name: "shoot", Value: b.aimed(OpShoot)},
		"release":  &tengo.UserFunction{Name: "release", Value: b.aimed(OpRelease)},
		"charge":   &tengo.UserFunction{Name: "charge", Value: b.timed(OpCharge)},
		"cancel":   &tengo.UserFunction{Name: "cancel", Value: b.timed(OpCancel)},
		"tune":     &tengo.UserFunction{Name: "tune", Value: b.tune},
	}}
}

func (b *builder) duration(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	d, err := number(args[0], "seconds")
	if err != nil {
		return nil, err
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadDuration, d)
	}
	b.sc.Duration = d
	return tengo.UndefinedValue, nil
}

func (b *builder) timed(op Op) tengo.CallableFunc {
	return func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		at, err := actionTime(args[0])
		if err != nil {
			return nil, err
		}
		b.sc.Actions = append(b.sc.Actions, Action{At: at, Op: op})
		return tengo.UndefinedValue, nil
	}
}

func (b *builder) aimed(op Op) tengo.CallableFunc {
	return func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		at, err := actionTime(args[0])
		if err != nil {
			return nil, err
		}
		x, err := number(args[1], "x")
		if err != nil {
			return nil, err
		}
		y, err := number(args[2], "y")
		if err != nil {
			return nil, err
		}
		b.sc.Actions = append(b.sc.Actions, Action{At: at, Op: op, Target: cp.Vector{X: x, Y: y}})
		return tengo.UndefinedValue, nil
	}
}

// tune merges a map of tuning overrides, in the tuning.yaml layout, into the
// scenario. Later calls win on conflicting keys.
func (b *builder) tune(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	raw, ok := tengo.ToInterface(args[0]).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrTuneArgument, args[0].TypeName())
	}
	if b.sc.Overrides == nil {
		b.sc.Overrides = map[string]any{}
	}
	mergeOverrides(b.sc.Overrides, raw)
	return tengo.UndefinedValue, nil
}

func mergeOverrides(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		cur, ok := dst[k].(map[string]any)
		if !ok {
			cur = map[string]any{}
			dst[k] = cur
		}
		mergeOverrides(cur, sub)
	}
}

func number(o tengo.Object, name string) (float64, error) {
	v, ok := tengo.ToFloat64(o)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "float", Found: o.TypeName()}
	}
	return v, nil
}

func actionTime(o tengo.Object) (float64, error) {
	at, err := number(o, "at")
	if err != nil {
		return 0, err
	}
	if at < 0 || math.IsNaN(at) || math.IsInf(at, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadTime, at)
	}
	return at, nil
}
