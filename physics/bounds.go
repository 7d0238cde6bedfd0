package physics

import "github.com/lixenwraith/duck-hunt/component"

// Bounds describes the playfield and the bird width used for exit checks
type Bounds struct {
	ScreenWidth, ScreenHeight int
	BirdWidth                 int
}

// ShouldRemoveBird reports whether a bird has left the playfield
// Dead birds leave only by falling below the screen, live birds only by
// flying past the edge they were heading for
func ShouldRemoveBird(b *component.Bird, bounds Bounds) bool {
	if b.Dead() {
		return b.Y() > bounds.ScreenHeight
	}
	return EscapedSide(b, bounds)
}

// EscapedSide reports whether a bird flew off the side it was travelling toward
func EscapedSide(b *component.Bird, bounds Bounds) bool {
	switch b.Direction() {
	case component.DirRight:
		return b.X() > bounds.ScreenWidth+bounds.BirdWidth
	case component.DirLeft:
		return b.X() < -bounds.BirdWidth
	}
	return false
}

// ShouldRemoveBullet reports whether a bullet has left the playfield
func ShouldRemoveBullet(b *component.Bullet) bool {
	return b.OutOfBounds()
}
