package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocketjump/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	arenaName := flag.String("arena", levels.DefaultArena, "arena name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "restart the round when prefabs/ files change on disk")
	chain := flag.Bool("chain", false, "let rockets detonate on explosions")
	demo := flag.String("demo", "", "play a scenario script from prefabs/scripts on a loop")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("rocketjump")
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame(GameOptions{
		Arena: *arenaName,
		Debug: *debug,
		Watch: *watch,
		Chain: *chain,
		Demo:  *demo,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The crosshair replaces the OS cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
