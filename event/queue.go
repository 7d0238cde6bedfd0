package event

// Queue collects the events of the tick in progress
// It is owned by a single session and never shared across goroutines
type Queue struct {
	events []GameEvent
	tick   uint64
}

func NewQueue(capacity int) *Queue {
	return &Queue{events: make([]GameEvent, 0, capacity)}
}

// Begin starts collecting for a new tick, discarding anything left over
func (q *Queue) Begin(tick uint64) {
	q.events = q.events[:0]
	q.tick = tick
}

// Push stamps and appends an event
func (q *Queue) Push(ev GameEvent) {
	ev.Tick = q.tick
	q.events = append(q.events, ev)
}

// Drain returns a copy of the collected events and empties the queue
func (q *Queue) Drain() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int { return len(q.events) }

// Count returns the number of pending events of the given type
func (q *Queue) Count(t EventType) int {
	n := 0
	for _, ev := range q.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
