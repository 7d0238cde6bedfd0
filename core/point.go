package core

import "math"

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Add returns the componentwise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// PointF is a sub-cell coordinate used by projectiles
type PointF struct {
	X, Y float64
}

// Add returns the componentwise sum
func (p PointF) Add(o PointF) PointF {
	return PointF{X: p.X + o.X, Y: p.Y + o.Y}
}

// Floor maps the sub-cell coordinate to the cell containing it
func (p PointF) Floor() Point {
	return Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// ToPointF lifts a cell coordinate to sub-cell space
func (p Point) ToPointF() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}
