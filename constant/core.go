package constant

import "time"

// Game Loop Timing
const (
	// GameUpdateInterval is the fixed simulation tick
	GameUpdateInterval = 50 * time.Millisecond

	// MaxCatchUpTicks bounds how many ticks a late frame may replay
	MaxCatchUpTicks = 5
)

// Session Limits
const (
	// EventBufferCapacity is the initial per-tick event buffer size
	EventBufferCapacity = 8
)
