package arena

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var ErrEmptyWall = errors.New("arena: wall size must be positive")

// Wall is static, axis-aligned terrain.
type Wall struct {
	entity
	bounds cp.BB
}

// NewWall builds a wall from its top-left corner and size in meters.
func NewWall(w *World, topLeft, size cp.Vector) (*Wall, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrEmptyWall
	}
	body := cp.NewStaticBody()
	body.SetPosition(topLeft.Add(size.Mult(0.5)))
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetFriction(0.8)

	wall := &Wall{bounds: cp.NewBBForExtents(topLeft.Add(size.Mult(0.5)), size.X/2, size.Y/2)}
	if err := w.attach(&wall.entity, wall, KindWall, body, shape); err != nil {
		return nil, err
	}
	return wall, nil
}

func (w *Wall) Bounds() cp.BB {
	return w.bounds
}

func (w *Wall) Update(float64) {}

func (w *Wall) Draw(c Canvas) {
	c.StrokeRect(w.bounds, wallColor)
}
