package component

import "github.com/lixenwraith/duck-hunt/core"

// Direction is the horizontal heading of a bird, fixed at spawn
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Frame is a bird animation frame
// Live birds cycle through 0..FrameCount-1, dead birds are pinned to FrameDead
type Frame uint8

const (
	FrameCount Frame = 4
	FrameDead  Frame = 4
)

// Bird is a flying target
// Fields are unexported so the frame range and the one-way death latch cannot be bypassed
type Bird struct {
	x, y      int
	direction Direction
	frame     Frame
	dead      bool
}

// NewBird creates a live bird at frame 0
func NewBird(x, y int, dir Direction) Bird {
	if dir != DirLeft {
		dir = DirRight
	}
	return Bird{x: x, y: y, direction: dir}
}

func (b *Bird) X() int               { return b.x }
func (b *Bird) Y() int               { return b.y }
func (b *Bird) Pos() core.Point      { return core.Point{X: b.x, Y: b.y} }
func (b *Bird) Direction() Direction { return b.direction }
func (b *Bird) Frame() Frame         { return b.frame }
func (b *Bird) Dead() bool           { return b.dead }

// AdvanceFrame moves the animation one frame forward
func (b *Bird) AdvanceFrame() {
	if b.dead {
		b.frame = FrameDead
		return
	}
	b.frame = (b.frame + 1) % FrameCount
}

// Step applies one tick of motion: live birds fly horizontally, dead birds fall
func (b *Bird) Step() {
	if b.dead {
		b.y++
		return
	}
	b.x += int(b.direction)
}

// Contains reports whether (px, py) falls within the bird's box
func (b *Bird) Contains(px, py, width, height int) bool {
	return core.Area{X: b.x, Y: b.y, Width: width, Height: height}.Contains(px, py)
}

// MarkDead kills the bird; there is no way back
func (b *Bird) MarkDead() {
	if b.dead {
		return
	}
	b.dead = true
	b.frame = FrameDead
}
