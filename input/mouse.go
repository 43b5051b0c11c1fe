// Package input reads the mouse and keyboard through ebiten.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rocketjump/control"
)

var _ control.Source = (*Mouse)(nil)

// Mouse is the desktop control scheme: left click shoots, holding the right
// button charges the recoil and letting go fires it.
type Mouse struct{}

func NewMouse() *Mouse {
	return &Mouse{}
}

func (m *Mouse) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (m *Mouse) ShootPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (m *Mouse) RecoilPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

func (m *Mouse) RecoilReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
}

func (m *Mouse) CancelPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (m *Mouse) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func (m *Mouse) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
