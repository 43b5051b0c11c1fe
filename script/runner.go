package script

import (
	"fmt"

	"github.com/milk9111/rocketjump/control"
)

// Result records whether the simulation accepted a dispatched action.
type Result struct {
	Action   Action
	Accepted bool
}

// Runner replays a scenario against a simulation clock.
type Runner struct {
	sc   *Scenario
	next int
}

func NewRunner(sc *Scenario) *Runner {
	return &Runner{sc: sc}
}

// RunUntil dispatches every action scheduled at or before t seconds that has
// not run yet, in order.
func (r *Runner) RunUntil(t float64, a control.Actions) ([]Result, error) {
	var results []Result
	for r.next < len(r.sc.Actions) && r.sc.Actions[r.next].At <= t {
		act := r.sc.Actions[r.next]
		r.next++
		ok, err := dispatch(act, a)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Action: act, Accepted: ok})
	}
	return results, nil
}

// Pending is the number of actions not yet dispatched.
func (r *Runner) Pending() int {
	return len(r.sc.Actions) - r.next
}

// Done reports whether the scenario has run its full duration at time t.
// Actions scheduled after the end, which a shortened duration can leave
// behind, are dropped.
func (r *Runner) Done(t float64) bool {
	if t < r.sc.Duration {
		return false
	}
	return r.next >= len(r.sc.Actions) || r.sc.Actions[r.next].At > r.sc.Duration
}

func dispatch(act Action, a control.Actions) (bool, error) {
	switch act.Op {
	case OpShoot:
		return a.Shoot(act.Target), nil
	case OpCharge:
		return a.StartChargingRecoil(), nil
	case OpRelease:
		return a.ReleaseRecoil(act.Target), nil
	case OpCancel:
		a.CancelRecoil()
		return true, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownAction, act.Op)
}
