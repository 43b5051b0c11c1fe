package component

import "errors"

var ErrInvalidLength = errors.New("component: timer length must be positive")

// Timer counts elapsed seconds up to a fixed length. When it first reaches the
// length it runs its action once; Reset re-arms it.
type Timer struct {
	length  float64
	elapsed float64
	action  func()
	fired   bool
}

// NewTimer returns a Timer of the given length in seconds. action may be nil.
func NewTimer(length float64, action func()) (*Timer, error) {
	if !(length > 0) {
		return nil, ErrInvalidLength
	}
	return &Timer{length: length, action: action}, nil
}

// MustTimer is NewTimer for lengths known to be valid at compile time.
func MustTimer(length float64, action func()) *Timer {
	t, err := NewTimer(length, action)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Timer) Update(dt float64) {
	if t == nil || dt <= 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.length {
		t.elapsed = t.length
	}
	if t.Done() {
		t.fire()
	}
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.fired = false
}

// SetToComplete jumps to the end of the timer, running the action if it has not
// run since the last Reset.
func (t *Timer) SetToComplete() {
	if t == nil {
		return
	}
	t.elapsed = t.length
	t.fire()
}

// TriggerActionAgainIfDone runs the action a second time for an already
// completed timer and reports whether it ran. It does nothing while the timer
// is still running.
func (t *Timer) TriggerActionAgainIfDone() bool {
	if t == nil || !t.Done() || t.action == nil {
		return false
	}
	t.action()
	return true
}

func (t *Timer) fire() {
	if t.fired {
		return
	}
	// Mark first so an action that calls Reset leaves the timer re-armed.
	t.fired = true
	if t.action != nil {
		t.action()
	}
}

func (t *Timer) Done() bool {
	return t != nil && t.elapsed >= t.length
}

func (t *Timer) Progress() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed / t.length
}

func (t *Timer) TimeLeft() float64 {
	if t == nil {
		return 0
	}
	return t.length - t.elapsed
}

func (t *Timer) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}

func (t *Timer) Length() float64 {
	if t == nil {
		return 0
	}
	return t.length
}
