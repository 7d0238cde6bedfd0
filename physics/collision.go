package physics

import (
	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/core"
)

// Hitbox is the bird bounding box size used by every hit test
type Hitbox struct {
	Width, Height int
}

// PointHitsBird tests a single cell against a live bird's box
func PointHitsBird(b *component.Bird, p core.Point, box Hitbox) bool {
	if b.Dead() {
		return false
	}
	return b.Contains(p.X, p.Y, box.Width, box.Height)
}

// BulletHitsBird tests both trail positions so a fast bullet cannot step over a bird
func BulletHitsBird(bullet *component.Bullet, b *component.Bird, box Hitbox) bool {
	tr := bullet.Trail()
	return PointHitsBird(b, tr.Cur.Floor(), box) || PointHitsBird(b, tr.Prev.Floor(), box)
}

// FirstHit returns the index of the first bird in spawn order containing p, or -1
func FirstHit(birds []component.Bird, p core.Point, box Hitbox) int {
	for i := range birds {
		if PointHitsBird(&birds[i], p, box) {
			return i
		}
	}
	return -1
}

// FirstBulletHit returns the index of the first bird in spawn order struck by the bullet, or -1
func FirstBulletHit(bullet *component.Bullet, birds []component.Bird, box Hitbox) int {
	for i := range birds {
		if BulletHitsBird(bullet, &birds[i], box) {
			return i
		}
	}
	return -1
}
