package ecs

// Queue is a single-buffered FIFO event queue.
// Events pushed during a pass are returned by the next Drain; each event is
// returned exactly once.
type Queue[T any] struct {
	items []T
}

// Push appends an event
func (q *Queue[T]) Push(evt T) {
	q.items = append(q.items, evt)
}

// Drain returns all pending events in push order and clears the queue
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops all pending events without returning them
func (q *Queue[T]) Clear() {
	q.items = nil
}
