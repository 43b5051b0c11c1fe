package ecs

// Queue is a simple FIFO queue.
type Queue[T any] struct {
	items []T
}

// Push adds an item.
func (q *Queue[T]) Push(item T) {
	if q == nil {
		return
	}
	q.items = append(q.items, item)
}

// Drain returns all items and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops pending items.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
