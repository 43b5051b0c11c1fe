// Package control turns raw player input into simulation actions.
package control

import "github.com/jakecoffman/cp"

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source
//go:generate go tool mockgen -destination=./mocks/projector_mock.go -package=mocks . Projector
//go:generate go tool mockgen -destination=./mocks/actions_mock.go -package=mocks . Actions

// Source reports the state of the input devices for the current frame.
// Cursor coordinates are screen pixels.
type Source interface {
	CursorPosition() (float64, float64)
	ShootPressed() bool
	RecoilPressed() bool
	RecoilReleased() bool
	CancelPressed() bool
	PausePressed() bool
	RestartPressed() bool
}

// Projector maps screen pixels to world meters.
type Projector interface {
	ScreenToWorld(x, y float64) cp.Vector
}

// Actions is what the player can ask of the simulation.
type Actions interface {
	Shoot(target cp.Vector) bool
	StartChargingRecoil() bool
	ReleaseRecoil(origin cp.Vector) bool
	CancelRecoil()
}

// Intent is one frame of input, with the cursor already in world space.
type Intent struct {
	Cursor cp.Vector

	Shoot       bool
	StartCharge bool
	Release     bool
	Cancel      bool

	Pause   bool
	Restart bool
}

// Gameplay reports whether the intent asks anything of the simulation.
func (in Intent) Gameplay() bool {
	return in.Shoot || in.StartCharge || in.Release || in.Cancel
}

// Outcome is what the simulation accepted from an Intent.
type Outcome struct {
	Shot     bool
	Charging bool
	Recoiled bool
}

type Controller struct {
	src  Source
	proj Projector
}

func NewController(src Source, proj Projector) *Controller {
	return &Controller{src: src, proj: proj}
}

// Poll samples the source once. The cursor is projected a single time so
// every action in the frame aims at the same world point.
func (c *Controller) Poll() Intent {
	x, y := c.src.CursorPosition()
	return Intent{
		Cursor:      c.proj.ScreenToWorld(x, y),
		Shoot:       c.src.ShootPressed(),
		StartCharge: c.src.RecoilPressed(),
		Release:     c.src.RecoilReleased(),
		Cancel:      c.src.CancelPressed(),
		Pause:       c.src.PausePressed(),
		Restart:     c.src.RestartPressed(),
	}
}

// Dispatch forwards the gameplay part of in to a. A cancel wins over a
// release in the same frame, and a press and release in the same frame fire
// the shortest possible charge.
func Dispatch(in Intent, a Actions) Outcome {
	var out Outcome
	if in.Shoot {
		out.Shot = a.Shoot(in.Cursor)
	}
	if in.Cancel {
		a.CancelRecoil()
		return out
	}
	if in.StartCharge {
		out.Charging = a.StartChargingRecoil()
	}
	if in.Release {
		out.Recoiled = a.ReleaseRecoil(in.Cursor)
		if out.Recoiled {
			out.Charging = false
		}
	}
	return out
}
