package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/duck-hunt/core"
)

func TestQueueStampsTick(t *testing.T) {
	q := NewQueue(4)
	q.Begin(7)
	q.Push(GameEvent{Type: EventShot, Pos: core.Point{X: 1, Y: 2}})
	q.Push(GameEvent{Type: EventKill})

	require.Equal(t, 2, q.Len())
	assert.Equal(t, 1, q.Count(EventKill))

	out := q.Drain()
	require.Len(t, out, 2)
	assert.Equal(t, uint64(7), out[0].Tick)
	assert.Equal(t, core.Point{X: 1, Y: 2}, out[0].Pos)
	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainCopies(t *testing.T) {
	q := NewQueue(1)
	q.Begin(1)
	q.Push(GameEvent{Type: EventSpawn})
	out := q.Drain()

	q.Begin(2)
	q.Push(GameEvent{Type: EventEscape})
	assert.Equal(t, EventSpawn, out[0].Type, "drained slice must not alias the buffer")
}

func TestQueueBeginDiscards(t *testing.T) {
	q := NewQueue(1)
	q.Begin(1)
	q.Push(GameEvent{Type: EventShot})
	q.Begin(2)
	assert.Nil(t, q.Drain())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "dry_fire", EventDryFire.String())
	assert.Equal(t, "game_over", EventGameOver.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
