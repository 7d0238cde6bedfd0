package core

// Area represents a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether the point lies inside the area
// Intervals are half-open: a point at X+Width or Y+Height is outside
func (a Area) Contains(px, py int) bool {
	return px >= a.X && px < a.X+a.Width && py >= a.Y && py < a.Y+a.Height
}

// ClampPoint restricts p to the area, inclusive of the last row and column
func (a Area) ClampPoint(p Point) Point {
	return Point{
		X: clamp(p.X, a.X, a.X+a.Width-1),
		Y: clamp(p.Y, a.Y, a.Y+a.Height-1),
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
