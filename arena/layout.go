package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/levels"
)

// WallSpec is a wall by top-left corner and size, in meters.
type WallSpec struct {
	TopLeft cp.Vector
	Size    cp.Vector
}

// Layout is the static part of a round: where the player starts and where the
// walls are.
type Layout struct {
	Spawn cp.Vector
	Walls []WallSpec
}

func LayoutFromLevel(a *levels.Arena) (Layout, error) {
	spawn, err := a.Spawn()
	if err != nil {
		return Layout{}, err
	}
	layout := Layout{Spawn: cp.Vector{X: spawn.X, Y: spawn.Y}}
	for _, w := range a.Walls() {
		layout.Walls = append(layout.Walls, WallSpec{
			TopLeft: cp.Vector{X: w.X, Y: w.Y},
			Size:    cp.Vector{X: w.W, Y: w.H},
		})
	}
	return layout, nil
}
