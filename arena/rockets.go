package arena

// RocketRing holds in-flight rockets in a fixed number of slots, reusing the
// oldest slot when full.
type RocketRing struct {
	slots []*Rocket
	next  int
}

func NewRocketRing(capacity int) *RocketRing {
	return &RocketRing{slots: make([]*Rocket, max(capacity, 1))}
}

// Put stores r in the next slot. If that slot still held a live rocket, the
// old rocket is returned so the caller can retire it.
func (rr *RocketRing) Put(r *Rocket) *Rocket {
	old := rr.slots[rr.next]
	rr.slots[rr.next] = r
	rr.next = (rr.next + 1) % len(rr.slots)
	if old != nil && old.Alive() {
		return old
	}
	return nil
}

// Each visits live rockets, oldest slot first.
func (rr *RocketRing) Each(fn func(*Rocket)) {
	for i := range rr.slots {
		r := rr.slots[(rr.next+i)%len(rr.slots)]
		if r != nil && r.Alive() {
			fn(r)
		}
	}
}

// Sweep destroys and clears every rocket for which done returns true.
func (rr *RocketRing) Sweep(done func(*Rocket) bool) []*Rocket {
	var removed []*Rocket
	for i, r := range rr.slots {
		if r == nil {
			continue
		}
		if !r.Alive() {
			rr.slots[i] = nil
			continue
		}
		if done(r) {
			r.destroy()
			rr.slots[i] = nil
			removed = append(removed, r)
		}
	}
	return removed
}

func (rr *RocketRing) Len() int {
	n := 0
	rr.Each(func(*Rocket) { n++ })
	return n
}

func (rr *RocketRing) Cap() int {
	return len(rr.slots)
}

func (rr *RocketRing) Rockets() []*Rocket {
	out := make([]*Rocket, 0, len(rr.slots))
	rr.Each(func(r *Rocket) { out = append(out, r) })
	return out
}
