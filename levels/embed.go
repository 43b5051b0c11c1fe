package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultArena = "arena"

var ErrNoSpawn = errors.New("levels: arena has no spawn entity")

const (
	EntitySpawn = "spawn"
	EntityWall  = "wall"
)

// Arena is a level laid out in meters with y growing downward. Walls are given
// by their top-left corner and size.
type Arena struct {
	Name     string   `json:"name"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Entities []Entity `json:"entities"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	W     float64                `json:"w,omitempty"`
	H     float64                `json:"h,omitempty"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Spawn returns the first spawn entity.
func (a *Arena) Spawn() (Entity, error) {
	for _, e := range a.Entities {
		if e.Type == EntitySpawn {
			return e, nil
		}
	}
	return Entity{}, ErrNoSpawn
}

func (a *Arena) Walls() []Entity {
	var walls []Entity
	for _, e := range a.Entities {
		if e.Type == EntityWall {
			walls = append(walls, e)
		}
	}
	return walls
}

func LoadArenaFromFS(name string) (*Arena, error) {
	if name == "" {
		name = DefaultArena
	}
	if path.Ext(name) == "" {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var arena Arena
	if err := json.Unmarshal(data, &arena); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, w := range arena.Walls() {
		if w.W <= 0 || w.H <= 0 {
			return nil, fmt.Errorf("level %s: wall %d has non-positive size %vx%v", name, i, w.W, w.H)
		}
	}
	if _, err := arena.Spawn(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &arena, nil
}

// Names lists the embedded arenas without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names
}
