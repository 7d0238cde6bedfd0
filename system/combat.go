package system

import (
	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/physics"
	"github.com/lixenwraith/duck-hunt/vmath"
)

// Reward is the ammo and score granted for a kill
type Reward struct {
	Ammo  int
	Score int
}

// CombatSystem resolves shots against birds
// Birds are scanned in spawn order and the first match wins
type CombatSystem struct {
	box       physics.Hitbox
	instant   Reward
	ballistic Reward
}

func NewCombatSystem(box physics.Hitbox, instant, ballistic Reward) *CombatSystem {
	return &CombatSystem{box: box, instant: instant, ballistic: ballistic}
}

// InstantShot fires a hitscan shot at aim
// Returns the index of the killed bird, or -1 on a miss or dry fire
func (s *CombatSystem) InstantShot(birds []component.Bird, aim core.Point, econ *Economy, q *event.Queue) int {
	if !econ.TryConsume() {
		q.Push(event.GameEvent{Type: event.EventDryFire, Pos: aim})
		return -1
	}
	q.Push(event.GameEvent{Type: event.EventShot, Pos: aim})

	idx := physics.FirstHit(birds, aim, s.box)
	if idx < 0 {
		return -1
	}
	s.kill(&birds[idx], s.instant, econ, q)
	return idx
}

// FireBullet spends a round and launches a bullet from anchor toward aim
func (s *CombatSystem) FireBullet(anchor, aim core.Point, econ *Economy, q *event.Queue) (component.Bullet, bool) {
	if !econ.TryConsume() {
		q.Push(event.GameEvent{Type: event.EventDryFire, Pos: aim})
		return component.Bullet{}, false
	}
	q.Push(event.GameEvent{Type: event.EventShot, Pos: anchor})

	theta := vmath.AimAngle(aim, anchor)
	return component.NewBullet(anchor.ToPointF(), theta), true
}

// ResolveBullets tests every in-bounds bullet against every live bird
// A bullet kills at most one bird and is consumed by the hit
// Out-of-bounds bullets are skipped on purpose and kept for the cull sweep
// Every onscreen position of a bullet was already tested as Cur in an earlier substep,
// so skipping loses no hit and keeps offscreen bullets off birds waiting to enter
// Survivors are compacted in place and returned
func (s *CombatSystem) ResolveBullets(bullets []component.Bullet, birds []component.Bird, econ *Economy, q *event.Queue) []component.Bullet {
	kept := bullets[:0]
	for i := range bullets {
		if bullets[i].OutOfBounds() {
			kept = append(kept, bullets[i])
			continue
		}
		idx := physics.FirstBulletHit(&bullets[i], birds, s.box)
		if idx < 0 {
			kept = append(kept, bullets[i])
			continue
		}
		s.kill(&birds[idx], s.ballistic, econ, q)
	}
	clearTail(bullets, len(kept))
	return kept
}

func (s *CombatSystem) kill(b *component.Bird, r Reward, econ *Economy, q *event.Queue) {
	b.MarkDead()
	econ.Reward(r.Ammo, r.Score)
	q.Push(event.GameEvent{Type: event.EventKill, Pos: b.Pos()})
}
