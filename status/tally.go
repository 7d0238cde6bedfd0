package status

import (
	"sync/atomic"

	"github.com/lixenwraith/duck-hunt/event"
)

// Metric keys
const (
	KeySessions = "sessions.played"
	KeyBest     = "score.best"
	eventPrefix = "events."
)

// Tally accumulates run statistics across sessions from game events
// Hot counters are cached at construction; readers may run on other goroutines
type Tally struct {
	Ints *MetricMap[atomic.Int64]

	shots    *atomic.Int64
	kills    *atomic.Int64
	sessions *atomic.Int64
	best     *atomic.Int64
}

// NewTally creates an empty tally
func NewTally() *Tally {
	ints := NewMetricMap[atomic.Int64]()
	return &Tally{
		Ints:     ints,
		shots:    ints.Get(EventKey(event.EventShot)),
		kills:    ints.Get(EventKey(event.EventKill)),
		sessions: ints.Get(KeySessions),
		best:     ints.Get(KeyBest),
	}
}

// EventKey names the counter for an event type
func EventKey(t event.EventType) string {
	return eventPrefix + t.String()
}

// Record counts each event by type
func (t *Tally) Record(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventShot:
			t.shots.Add(1)
		case event.EventKill:
			t.kills.Add(1)
		default:
			t.Ints.Get(EventKey(ev.Type)).Add(1)
		}
	}
}

// EndSession counts a finished session and keeps the best score
func (t *Tally) EndSession(score int) {
	t.sessions.Add(1)
	for {
		cur := t.best.Load()
		if int64(score) <= cur || t.best.CompareAndSwap(cur, int64(score)) {
			return
		}
	}
}

// Count returns the number of events of type typ recorded so far
func (t *Tally) Count(typ event.EventType) int64 {
	return t.Ints.Get(EventKey(typ)).Load()
}

// Sessions returns the number of finished sessions
func (t *Tally) Sessions() int64 {
	return t.sessions.Load()
}

// Best returns the highest finished-session score
func (t *Tally) Best() int {
	return int(t.best.Load())
}

// Accuracy returns kills per shot; ok is false before the first shot
func (t *Tally) Accuracy() (ratio float64, ok bool) {
	shots := t.shots.Load()
	if shots == 0 {
		return 0, false
	}
	return float64(t.kills.Load()) / float64(shots), true
}

// Range visits every counter in key order
func (t *Tally) Range(fn func(key string, value int64)) {
	t.Ints.Range(func(key string, ptr *atomic.Int64) {
		fn(key, ptr.Load())
	})
}
