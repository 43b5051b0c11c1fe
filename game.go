package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/arena"
	"github.com/milk9111/rocketjump/common"
	"github.com/milk9111/rocketjump/control"
	"github.com/milk9111/rocketjump/input"
	"github.com/milk9111/rocketjump/levels"
	"github.com/milk9111/rocketjump/prefabs"
	"github.com/milk9111/rocketjump/render"
	"github.com/milk9111/rocketjump/script"
	"github.com/milk9111/rocketjump/view"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type GameOptions struct {
	Arena string
	Debug bool
	Watch bool
	Chain bool
	Demo  string
}

type Game struct {
	opts   GameOptions
	frames int
	paused bool

	sim    *arena.Simulation
	level  *levels.Arena
	cam    *view.Camera
	canvas *render.Canvas
	ctrl   *control.Controller
	cursor cp.Vector

	demo *script.Runner

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	now       func() time.Time
	lastFrame time.Time
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{opts: opts, now: time.Now}
	g.cam = view.NewCamera(common.BaseWidth, common.BaseHeight, 1)
	g.ctrl = control.NewController(input.NewMouse(), g.cam)
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("Game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// restart builds a fresh round from the current tuning and arena files.
// The running round is kept if anything fails to load.
func (g *Game) restart() error {
	lvl, err := levels.LoadArenaFromFS(g.opts.Arena)
	if err != nil {
		return err
	}
	layout, err := arena.LayoutFromLevel(lvl)
	if err != nil {
		return err
	}
	tune, err := arena.LoadTuning()
	if err != nil {
		return err
	}

	var demo *script.Runner
	if g.opts.Demo != "" {
		sc, err := script.Load(g.opts.Demo, layout.Spawn)
		if err != nil {
			return err
		}
		if err := sc.Tune(&tune); err != nil {
			return err
		}
		demo = script.NewRunner(sc)
	}
	if g.opts.Chain {
		tune.World.ChainReactions = true
	}

	sim, err := arena.NewSimulation(tune, layout)
	if err != nil {
		return err
	}
	if g.sim != nil {
		g.sim.Close()
	}
	g.sim = sim
	g.level = lvl
	g.demo = demo

	g.cam.SetZoom(tune.Camera.Zoom)
	g.cam.SetWorldBounds(lvl.Width, lvl.Height)
	g.cam.SnapTo(layout.Spawn)
	g.lastFrame = time.Time{}
	log.Printf("Game: started %s (chain reactions %v)", lvl.Name, tune.World.ChainReactions)
	return nil
}

// setPaused drops any recoil charge when pausing, since a button release
// during the pause never reaches the simulation.
func (g *Game) setPaused(paused bool) {
	if paused && !g.paused && g.sim != nil {
		g.sim.CancelRecoil()
	}
	g.paused = paused
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}
	g.frames++
	g.pollWatcher()

	in := g.ctrl.Poll()
	g.cursor = in.Cursor
	if in.Pause {
		g.setPaused(!g.paused)
	}
	if in.Restart {
		g.Restart()
	}
	if g.paused {
		g.pauseUI.Update()
		g.lastFrame = time.Time{}
		return nil
	}

	if out := control.Dispatch(in, g.sim); g.opts.Debug && in.Gameplay() {
		log.Printf("Game: input %+v -> %+v", in, out)
	}
	if g.demo != nil {
		if _, err := g.demo.RunUntil(g.sim.Time(), g.sim); err != nil {
			log.Printf("Game: demo: %v", err)
			g.demo = nil
		} else if g.demo.Done(g.sim.Time()) {
			g.Restart()
		}
	}

	now := g.now()
	if !g.lastFrame.IsZero() {
		g.sim.Advance(now.Sub(g.lastFrame).Seconds())
	}
	g.lastFrame = now

	for _, e := range g.sim.Events().Drain() {
		if g.opts.Debug {
			log.Printf("Game: %s", e)
		}
	}
	g.cam.Update(g.sim.Player().Position())
	return nil
}

// Restart starts the round over, logging instead of failing so a bad edit to
// a tuning file does not close the window.
func (g *Game) Restart() {
	if err := g.restart(); err != nil {
		log.Printf("Game: restart: %v", err)
	}
	g.paused = false
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: watcher: %v", err)
			}
		default:
		}
		change, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if change.Kind == prefabs.ChangeScript && !g.isDemoScript(change.Path) {
			continue
		}
		log.Printf("Game: %s changed, restarting", change.Path)
		g.Restart()
	}
}

func (g *Game) isDemoScript(path string) bool {
	if g.opts.Demo == "" {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base == strings.TrimSuffix(filepath.Base(g.opts.Demo), filepath.Ext(g.opts.Demo))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.canvas == nil {
		g.canvas = render.NewCanvas(screen, g.cam)
	}
	g.canvas.Reset(screen)
	g.sim.Draw(g.canvas)
	g.drawCrosshair(screen)

	if g.opts.Debug {
		render.DrawPhysicsDebug(g.sim, g.cam, screen)
		render.DrawSimulationDebug(g.sim, screen)
	}
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawCrosshair(screen *ebiten.Image) {
	x, y := g.cam.WorldToScreen(g.cursor)
	const arm = 6
	vector.StrokeLine(screen, float32(x-arm), float32(y), float32(x+arm), float32(y), 1, colornames.White, false)
	vector.StrokeLine(screen, float32(x), float32(y-arm), float32(x), float32(y+arm), 1, colornames.White, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.sim.Player()
	recoil := "ready"
	switch {
	case p.Charging():
		recoil = fmt.Sprintf("charging %.0f%%", p.RecoilCharge().Progress()*100)
	case !p.RecoilReload().Done():
		recoil = fmt.Sprintf("cooldown %.1fs", p.RecoilReload().TimeLeft())
	}
	text := fmt.Sprintf("Frames: %d    FPS: %.2f    Rockets: %d/%d    Recoil: %s",
		g.frames, ebiten.ActualFPS(), p.Ammo(), p.MaxRockets(), recoil)
	if g.demo != nil {
		text += "    [demo " + g.opts.Demo + "]"
	}
	ebitenutil.DebugPrint(screen, text)
}

// Close releases the round and stops watching files.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
		g.watcher = nil
	}
	if g.sim != nil {
		g.sim.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
