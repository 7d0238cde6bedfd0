package component

import (
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/vmath"
)

// Trail holds the bullet position now and at the start of the last update
type Trail struct {
	Cur, Prev core.PointF
}

// Bullet is a constant-velocity projectile
type Bullet struct {
	trail       Trail
	offset      core.PointF
	outOfBounds bool
}

// NewBullet launches a bullet from origin
// theta is measured from the target back to the origin, see vmath.AimAngle
func NewBullet(origin core.PointF, theta float64) Bullet {
	return Bullet{
		trail:  Trail{Cur: origin, Prev: origin},
		offset: vmath.Direction(theta),
	}
}

func (b *Bullet) Trail() Trail        { return b.trail }
func (b *Bullet) Offset() core.PointF { return b.offset }
func (b *Bullet) OutOfBounds() bool   { return b.outOfBounds }

// UpdatePosition shifts the current position into the trail and advances one step
func (b *Bullet) UpdatePosition() {
	b.trail.Prev = b.trail.Cur
	b.trail.Cur = b.trail.Cur.Add(b.offset)
}

// CheckBounds latches outOfBounds once the current position leaves the playfield
func (b *Bullet) CheckBounds(width, height int) {
	c := b.trail.Cur
	if c.X < 0 || c.X >= float64(width) || c.Y < 0 || c.Y >= float64(height) {
		b.outOfBounds = true
	}
}
