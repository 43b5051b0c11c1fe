package component

import (
	"errors"
	"math"
	"testing"
)

func TestNewTimerRejectsInvalidLength(t *testing.T) {
	for _, length := range []float64{0, -1, math.NaN()} {
		if _, err := NewTimer(length, nil); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NewTimer(%v) err = %v, want ErrInvalidLength", length, err)
		}
	}
}

func TestTimerProgressAndReset(t *testing.T) {
	cases := []struct {
		name   string
		length float64
		steps  []float64
		done   bool
		prog   float64
	}{
		{"partial", 2, []float64{0.5, 0.5}, false, 0.5},
		{"exact", 1, []float64{0.25, 0.25, 0.5}, true, 1},
		{"overshoot_saturates", 1, []float64{0.75, 0.75}, true, 1},
		{"negative_dt_ignored", 1, []float64{0.5, -3}, false, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tm := MustTimer(c.length, nil)
			for _, dt := range c.steps {
				tm.Update(dt)
			}
			if tm.Done() != c.done {
				t.Fatalf("Done() = %v, want %v", tm.Done(), c.done)
			}
			if math.Abs(tm.Progress()-c.prog) > 1e-9 {
				t.Fatalf("Progress() = %v, want %v", tm.Progress(), c.prog)
			}
			if tm.Elapsed() < 0 || tm.Elapsed() > tm.Length() {
				t.Fatalf("elapsed %v outside [0, %v]", tm.Elapsed(), tm.Length())
			}
			if math.Abs(tm.TimeLeft()-(tm.Length()-tm.Elapsed())) > 1e-12 {
				t.Fatalf("TimeLeft() = %v inconsistent with elapsed %v", tm.TimeLeft(), tm.Elapsed())
			}

			tm.Reset()
			if tm.Progress() != 0 || tm.Done() {
				t.Fatalf("after Reset: progress %v done %v", tm.Progress(), tm.Done())
			}
		})
	}
}

func TestTimerFiresOncePerCompletion(t *testing.T) {
	calls := 0
	tm := MustTimer(1, func() { calls++ })

	for i := 0; i < 10; i++ {
		tm.Update(0.3)
	}
	if calls != 1 {
		t.Fatalf("calls = %d after repeated updates, want 1", calls)
	}

	tm.SetToComplete()
	if calls != 1 {
		t.Fatalf("SetToComplete on a fired timer re-fired: calls = %d", calls)
	}

	tm.Reset()
	tm.Update(1)
	if calls != 2 {
		t.Fatalf("calls = %d after reset and completion, want 2", calls)
	}

	if !tm.TriggerActionAgainIfDone() {
		t.Fatalf("TriggerActionAgainIfDone on a done timer reported no run")
	}
	if calls != 3 {
		t.Fatalf("TriggerActionAgainIfDone: calls = %d, want 3", calls)
	}
}

func TestTimerSetToComplete(t *testing.T) {
	calls := 0
	tm := MustTimer(2, func() { calls++ })
	tm.SetToComplete()
	if !tm.Done() || tm.Progress() != 1 || calls != 1 {
		t.Fatalf("done=%v progress=%v calls=%d", tm.Done(), tm.Progress(), calls)
	}
	if !tm.TriggerActionAgainIfDone() {
		t.Fatalf("TriggerActionAgainIfDone on a completed timer reported no run")
	}
	tm.Reset()
	if tm.TriggerActionAgainIfDone() {
		t.Fatalf("TriggerActionAgainIfDone ran on a running timer")
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestTimerActionMayResetItself(t *testing.T) {
	var tm *Timer
	calls := 0
	tm = MustTimer(1, func() {
		calls++
		tm.Reset()
	})
	for i := 0; i < 4; i++ {
		tm.Update(1)
	}
	if calls != 4 {
		t.Fatalf("calls = %d, want 4", calls)
	}
	if tm.Done() {
		t.Fatalf("self-resetting timer should not stay done")
	}
}

func TestTriggerActionAgainIfDoneWithoutAction(t *testing.T) {
	cases := []struct {
		name string
		tm   *Timer
	}{
		{"nil_timer", nil},
		{"no_action", MustTimer(1, nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.tm.SetToComplete()
			if tc.tm.TriggerActionAgainIfDone() {
				t.Fatalf("reported a run with no action")
			}
		})
	}
}
