package main

import (
	"testing"

	"github.com/milk9111/rocketjump/arena"
)

func TestIsDemoScript(t *testing.T) {
	cases := []struct {
		demo string
		path string
		want bool
	}{
		{"", "prefabs/scripts/rocket_jump.tengo", false},
		{"rocket_jump", "prefabs/scripts/rocket_jump.tengo", true},
		{"rocket_jump.tengo", "/abs/prefabs/scripts/rocket_jump.tengo", true},
		{"rocket_jump", "prefabs/scripts/recoil_hop.tengo", false},
	}
	for _, tc := range cases {
		g := &Game{opts: GameOptions{Demo: tc.demo}}
		if got := g.isDemoScript(tc.path); got != tc.want {
			t.Fatalf("demo %q path %q: got %v, want %v", tc.demo, tc.path, got, tc.want)
		}
	}
}

func TestPauseCancelsRecoilCharge(t *testing.T) {
	sim, err := arena.NewSimulation(arena.DefaultTuning(), arena.Layout{})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	defer sim.Close()
	g := &Game{sim: sim}

	if !sim.StartChargingRecoil() {
		t.Fatalf("StartChargingRecoil refused")
	}
	g.setPaused(true)
	if !g.paused {
		t.Fatalf("game not paused")
	}
	if sim.Player().Charging() {
		t.Fatalf("recoil charge survived the pause")
	}

	g.setPaused(false)
	if g.paused {
		t.Fatalf("game still paused")
	}
	if !sim.StartChargingRecoil() {
		t.Fatalf("charge refused after resume")
	}
	g.setPaused(false)
	if !sim.Player().Charging() {
		t.Fatalf("staying unpaused cancelled the charge")
	}
}
