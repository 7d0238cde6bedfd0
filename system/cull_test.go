package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/physics"
)

func TestCullBirdsPreservesOrder(t *testing.T) {
	s := NewCullSystem(physics.Bounds{ScreenWidth: 120, ScreenHeight: 30, BirdWidth: 10})
	q := newTestQueue()

	fallen := component.NewBird(40, 31, component.DirRight)
	fallen.MarkDead()
	birds := []component.Bird{
		component.NewBird(10, 1, component.DirRight),
		component.NewBird(131, 2, component.DirRight),
		fallen,
		component.NewBird(50, 3, component.DirLeft),
		component.NewBird(-11, 4, component.DirLeft),
	}

	birds = s.Birds(birds, q)

	require.Len(t, birds, 2)
	assert.Equal(t, 1, birds[0].Y())
	assert.Equal(t, 3, birds[1].Y())
	assert.Equal(t, 2, q.Count(event.EventEscape), "falling corpses are not escapes")
}

func TestCullBullets(t *testing.T) {
	s := NewCullSystem(physics.Bounds{ScreenWidth: 20, ScreenHeight: 10, BirdWidth: 3})

	gone := component.NewBullet(core.PointF{X: 0, Y: 5}, 0)
	gone.UpdatePosition()
	gone.CheckBounds(20, 10)
	live := component.NewBullet(core.PointF{X: 10, Y: 5}, 0)
	live.UpdatePosition()
	live.CheckBounds(20, 10)

	bullets := s.Bullets([]component.Bullet{gone, live})

	require.Len(t, bullets, 1)
	assert.False(t, bullets[0].OutOfBounds())
}
