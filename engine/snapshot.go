package engine

import (
	"slices"

	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/event"
)

// BirdView is the read-only state of a bird
type BirdView struct {
	X, Y      int
	Frame     component.Frame
	Dead      bool
	Direction component.Direction
}

// BulletView is the read-only state of a bullet and its trail
type BulletView struct {
	Cur, Prev   core.PointF
	OutOfBounds bool
}

// Snapshot is an immutable copy of the session after a tick
// Every handout carries its own slices; writes never reach the session
type Snapshot struct {
	SessionID string
	Tick      uint64

	Width, Height         int
	BirdWidth, BirdHeight int

	Birds   []BirdView
	Bullets []BulletView

	Crosshair core.Point
	Anchor    core.Point
	AimAngle  float64
	GunOffset core.Point

	Ammo       int
	AmmoMax    int
	Score      int
	SpawnDelay int

	BulletsEnabled bool
	GameOver       bool

	// Events raised during the tick, or during every tick of an Advance
	Events []event.GameEvent
}

// clone copies the slices so the caller cannot write through to the session
func (s Snapshot) clone() Snapshot {
	s.Birds = slices.Clone(s.Birds)
	s.Bullets = slices.Clone(s.Bullets)
	s.Events = slices.Clone(s.Events)
	return s
}

// LiveBirds counts birds that have not been hit
func (s *Snapshot) LiveBirds() int {
	n := 0
	for _, b := range s.Birds {
		if !b.Dead {
			n++
		}
	}
	return n
}

// HasEvent reports whether an event of type t was raised
func (s *Snapshot) HasEvent(t event.EventType) bool {
	for _, ev := range s.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
