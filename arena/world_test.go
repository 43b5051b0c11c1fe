package arena

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestWorldLookupAndDestroy(t *testing.T) {
	w := NewWorld(flatTuning())
	wall, err := NewWall(w, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 4, Y: 1})
	if err != nil {
		t.Fatalf("NewWall: %v", err)
	}
	rocket, err := NewRocket(w, cp.Vector{X: 10, Y: 10}, cp.Vector{X: 1})
	if err != nil {
		t.Fatalf("NewRocket: %v", err)
	}

	cases := []struct {
		name string
		obj  Object
		kind Kind
	}{
		{"wall", wall, KindWall},
		{"rocket", rocket, KindRocket},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := w.Lookup(c.obj.Shape())
			if !ok || got != c.obj {
				t.Fatalf("Lookup = %v, %v", got, ok)
			}
			if got.Kind() != c.kind {
				t.Fatalf("kind = %s, want %s", got.Kind(), c.kind)
			}
			if c.obj.Shape().Sensor() != c.kind.Sensor() {
				t.Fatalf("sensor = %v for %s", c.obj.Shape().Sensor(), c.kind)
			}
		})
	}

	shape, body := rocket.Shape(), rocket.Body()
	rocket.Destroy()
	rocket.Destroy()
	if rocket.Alive() {
		t.Fatalf("rocket alive after Destroy")
	}
	if _, ok := w.Lookup(shape); ok {
		t.Fatalf("destroyed rocket still resolves")
	}
	if w.Space().ContainsShape(shape) || w.Space().ContainsBody(body) {
		t.Fatalf("destroyed rocket left its shape or body in the space")
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.Len())
	}

	w.Close()
	if wall.Alive() || w.Len() != 0 {
		t.Fatalf("Close left objects behind: len %d", w.Len())
	}
}

func TestWorldRejectsMutationWhileStepping(t *testing.T) {
	w := NewWorld(flatTuning())
	w.stepping = true
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrWorldLocked) {
			t.Fatalf("recover() = %v, want ErrWorldLocked", r)
		}
	}()
	_, _ = NewWall(w, cp.Vector{}, cp.Vector{X: 1, Y: 1})
	t.Fatalf("NewWall did not panic while stepping")
}

func TestLookupUnknownShape(t *testing.T) {
	w := NewWorld(flatTuning())
	stray := cp.NewCircle(cp.NewStaticBody(), 1, cp.Vector{})
	if _, ok := w.Lookup(stray); ok {
		t.Fatalf("stray shape resolved")
	}
	if _, ok := w.Lookup(nil); ok {
		t.Fatalf("nil shape resolved")
	}
}

func TestNewWallRejectsEmptySize(t *testing.T) {
	w := NewWorld(flatTuning())
	if _, err := NewWall(w, cp.Vector{}, cp.Vector{X: 0, Y: 3}); !errors.Is(err, ErrEmptyWall) {
		t.Fatalf("err = %v, want ErrEmptyWall", err)
	}
}
