package ecs

// Registry owns values of one type behind generational handles. A handle that
// outlives its value resolves to nothing, even after the slot is reused.
type Registry[T any] struct {
	store  entityStore
	values map[entityID]T
	order  []Entity
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{values: make(map[entityID]T)}
}

func (r *Registry[T]) Insert(v T) Entity {
	e := r.store.create()
	r.order = append(r.order, e)
	r.values[e.id()] = v
	return e
}

func (r *Registry[T]) Get(e Entity) (T, bool) {
	var zero T
	if !r.store.isAlive(e) {
		return zero, false
	}
	v, ok := r.values[e.id()]
	return v, ok
}

func (r *Registry[T]) IsAlive(e Entity) bool {
	return r.store.isAlive(e)
}

func (r *Registry[T]) Remove(e Entity) bool {
	if !r.store.destroy(e) {
		return false
	}
	delete(r.values, e.id())
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry[T]) Len() int {
	return len(r.values)
}

// Each visits live values in insertion order. fn may remove the value it is
// given.
func (r *Registry[T]) Each(fn func(Entity, T)) {
	snapshot := append([]Entity(nil), r.order...)
	for _, e := range snapshot {
		if v, ok := r.Get(e); ok {
			fn(e, v)
		}
	}
}
