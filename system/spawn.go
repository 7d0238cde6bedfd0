package system

import (
	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/parameter"
	"github.com/lixenwraith/duck-hunt/vmath"
)

// SpawnConfig holds the scheduler inputs fixed for a session
type SpawnConfig struct {
	ScreenWidth  int
	ScreenHeight int
	BirdWidth    int
	BirdHeight   int
	DelayInitial int
	DelayFloor   int
}

// SpawnScheduler admits birds on a tightening cadence
// spawnDelay only ever decreases, only on a spawn, and never below the floor
type SpawnScheduler struct {
	cfg          SpawnConfig
	spawnDelay   int
	frameCounter int
}

func NewSpawnScheduler(cfg SpawnConfig) *SpawnScheduler {
	if cfg.DelayFloor < 1 {
		cfg.DelayFloor = 1
	}
	if cfg.DelayInitial < cfg.DelayFloor {
		cfg.DelayInitial = cfg.DelayFloor
	}
	return &SpawnScheduler{cfg: cfg, spawnDelay: cfg.DelayInitial}
}

func (s *SpawnScheduler) Delay() int        { return s.spawnDelay }
func (s *SpawnScheduler) Floor() int        { return s.cfg.DelayFloor }
func (s *SpawnScheduler) FrameCounter() int { return s.frameCounter }

// Tick advances the frame counter and returns a new bird on spawn events
func (s *SpawnScheduler) Tick(rng vmath.RandomSource) (component.Bird, bool) {
	s.frameCounter++
	if s.frameCounter%s.spawnDelay != 0 {
		return component.Bird{}, false
	}

	bird := s.spawn(rng)

	if s.spawnDelay > s.cfg.DelayFloor {
		s.spawnDelay--
	}
	return bird, true
}

// spawn places a bird just off one edge, heading inward
// The side draw is taken before the row draw
func (s *SpawnScheduler) spawn(rng vmath.RandomSource) component.Bird {
	draw := rng.Intn(parameter.SpawnDrawRange)
	y := rng.Intn(s.flightBand())

	if draw > parameter.SpawnDrawRange/2 {
		return component.NewBird(s.cfg.ScreenWidth, y, component.DirLeft)
	}
	return component.NewBird(-s.cfg.BirdWidth, y, component.DirRight)
}

// flightBand is the number of rows birds may spawn on: the upper half of the sky,
// reduced so the sprite fits
func (s *SpawnScheduler) flightBand() int {
	band := s.cfg.ScreenHeight / 2
	if band+s.cfg.BirdHeight > s.cfg.ScreenHeight {
		band = s.cfg.ScreenHeight - s.cfg.BirdHeight
	}
	if band < 1 {
		band = 1
	}
	return band
}
