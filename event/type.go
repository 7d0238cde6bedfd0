package event

import "github.com/lixenwraith/duck-hunt/core"

// EventType represents the type of game event
type EventType int

const (
	// EventShot fires when a shot consumes ammo
	// Pos: crosshair for instant shots, gun anchor for ballistic shots
	EventShot EventType = iota

	// EventDryFire fires when a shot is attempted with no ammo left
	// Pos: crosshair
	EventDryFire

	// EventKill fires when a bird is hit
	// Pos: bird top-left at the moment of the hit
	EventKill

	// EventSpawn fires when the scheduler admits a new bird
	// Pos: spawn position
	EventSpawn

	// EventEscape fires when a live bird leaves the playfield unharmed
	// Pos: last bird position
	EventEscape

	// EventGameOver fires once, on the tick the session ends
	EventGameOver
)

var typeNames = [...]string{
	EventShot:     "shot",
	EventDryFire:  "dry_fire",
	EventKill:     "kill",
	EventSpawn:    "spawn",
	EventEscape:   "escape",
	EventGameOver: "game_over",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// GameEvent is a single occurrence within a tick
type GameEvent struct {
	Type EventType
	Pos  core.Point
	Tick uint64
}
