package system

import (
	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/physics"
)

// CullSystem removes entities that left the playfield
// It runs after hit resolution in each tick
type CullSystem struct {
	bounds physics.Bounds
}

func NewCullSystem(bounds physics.Bounds) *CullSystem {
	return &CullSystem{bounds: bounds}
}

// Birds filters the collection in place, preserving spawn order
// Live birds leaving by the side are reported as escapes
func (s *CullSystem) Birds(birds []component.Bird, q *event.Queue) []component.Bird {
	kept := birds[:0]
	for i := range birds {
		b := &birds[i]
		if !physics.ShouldRemoveBird(b, s.bounds) {
			kept = append(kept, *b)
			continue
		}
		if !b.Dead() {
			q.Push(event.GameEvent{Type: event.EventEscape, Pos: b.Pos()})
		}
	}
	clearTail(birds, len(kept))
	return kept
}

// Bullets filters out-of-bounds bullets in place
func (s *CullSystem) Bullets(bullets []component.Bullet) []component.Bullet {
	kept := bullets[:0]
	for i := range bullets {
		if !physics.ShouldRemoveBullet(&bullets[i]) {
			kept = append(kept, bullets[i])
		}
	}
	clearTail(bullets, len(kept))
	return kept
}

func clearTail[T any](s []T, n int) {
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
}
