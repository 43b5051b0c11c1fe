package arena

// ExplosionQueue keeps explosions in spawn order. They all share one
// lifetime, so the front is always the first to expire.
type ExplosionQueue struct {
	items []*Explosion
}

func (q *ExplosionQueue) Push(e *Explosion) {
	q.items = append(q.items, e)
}

func (q *ExplosionQueue) Front() (*Explosion, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

func (q *ExplosionQueue) PopFront() (*Explosion, bool) {
	e, ok := q.Front()
	if !ok {
		return nil, false
	}
	q.items[0] = nil
	q.items = q.items[1:]
	return e, true
}

func (q *ExplosionQueue) Each(fn func(*Explosion)) {
	for _, e := range q.items {
		fn(e)
	}
}

func (q *ExplosionQueue) Len() int {
	return len(q.items)
}

func (q *ExplosionQueue) Explosions() []*Explosion {
	return append([]*Explosion(nil), q.items...)
}
