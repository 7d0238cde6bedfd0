package vmath

import (
	"math"

	"github.com/lixenwraith/duck-hunt/core"
)

// AimAngle returns the angle in radians of the vector from target c back to pivot m
// A projectile moving by (-cos, -sin) of this angle travels from m towards c
func AimAngle(c, m core.Point) float64 {
	return math.Atan2(float64(m.Y-c.Y), float64(m.X-c.X))
}

// GunOffset returns the barrel tip offset from the pivot for a barrel of the given length
// Both components are scaled by stretch after flooring
func GunOffset(theta float64, length, stretch int) core.Point {
	return core.Point{
		X: -int(math.Floor(math.Cos(theta)*float64(length))) * stretch,
		Y: -int(math.Floor(math.Sin(theta)*float64(length))) * stretch,
	}
}

// Direction returns the unit step for an angle produced by AimAngle
func Direction(theta float64) core.PointF {
	return core.PointF{X: -math.Cos(theta), Y: -math.Sin(theta)}
}
