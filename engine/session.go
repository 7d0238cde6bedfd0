package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/config"
	"github.com/lixenwraith/duck-hunt/constant"
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/physics"
	"github.com/lixenwraith/duck-hunt/system"
	"github.com/lixenwraith/duck-hunt/vmath"
)

// Session owns the complete simulation state
// It is driven by a single caller; no method blocks, locks, or starts goroutines
type Session struct {
	id  string
	cfg config.Config
	log *slog.Logger

	// rng is injected by WithRandom or seeded from cfg.Seed
	rng         vmath.RandomSource
	injectedRng bool

	field     core.Area
	crosshair core.Point
	anchor    core.Point

	birds   []component.Bird
	bullets []component.Bullet

	econ    system.Economy
	spawner *system.SpawnScheduler
	combat  *system.CombatSystem
	cull    *system.CullSystem
	events  *event.Queue

	tick     uint64
	gameOver bool
	last     Snapshot
}

// Option customises a session at construction
type Option func(*Session)

// WithRandom injects the spawn random source
// The same source keeps being used across Reset
func WithRandom(rng vmath.RandomSource) Option {
	return func(s *Session) {
		s.rng = rng
		s.injectedRng = true
	}
}

// WithLogger sets the lifecycle logger, discarded by default
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession creates a session ready for its first tick
// cfg is expected to be validated by the caller
func NewSession(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.init()
	s.log.Debug("session started",
		"session", s.id,
		"bullets", cfg.BulletsEnabled,
		"screen_width", cfg.ScreenWidth,
		"screen_height", cfg.ScreenHeight,
		"seed", cfg.Seed,
	)
	return s
}

// Reset discards all state and starts a fresh session with a new ID
func (s *Session) Reset() {
	prev := s.id
	s.init()
	s.log.Debug("session reset", "session", s.id, "previous", prev)
}

func (s *Session) init() {
	cfg := s.cfg

	s.id = uuid.NewString()
	if !s.injectedRng {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = vmath.NewFastRand(seed)
	}

	s.field = core.Area{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight}
	s.crosshair = core.Point{X: cfg.ScreenWidth / 2, Y: cfg.ScreenHeight / 2}
	s.anchor = core.Point{X: cfg.ScreenWidth / 2, Y: cfg.ScreenHeight - 1}

	s.birds = s.birds[:0]
	s.bullets = s.bullets[:0]

	s.econ = system.NewEconomy(cfg.AmmoInitial, cfg.AmmoMax)
	s.spawner = system.NewSpawnScheduler(system.SpawnConfig{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		BirdWidth:    cfg.BirdWidth,
		BirdHeight:   cfg.BirdHeight,
		DelayInitial: cfg.SpawnDelayInitial,
		DelayFloor:   cfg.SpawnDelayFloor,
	})
	s.combat = system.NewCombatSystem(
		physics.Hitbox{Width: cfg.BirdWidth, Height: cfg.BirdHeight},
		system.Reward{Ammo: cfg.InstantHitReward, Score: cfg.InstantHitScore},
		system.Reward{Ammo: cfg.BallisticHitReward, Score: cfg.BallisticHitScore},
	)
	s.cull = system.NewCullSystem(physics.Bounds{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		BirdWidth:    cfg.BirdWidth,
	})
	if s.events == nil {
		s.events = event.NewQueue(constant.EventBufferCapacity)
	}
	s.events.Begin(0)

	s.tick = 0
	s.gameOver = false
	s.last = s.snapshot(nil)
}

func (s *Session) ID() string            { return s.id }
func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) GameOver() bool        { return s.gameOver }
func (s *Session) TickCount() uint64     { return s.tick }
func (s *Session) Snapshot() Snapshot    { return s.last.clone() }

// Tick advances the simulation by one step
// Order: intent, spawn, motion, ballistic resolution, animation, cull, game over
// Instant shots resolve during intent, against bird positions from before motion
// After game over the call is a no-op returning the final state without events
func (s *Session) Tick(in Intent) Snapshot {
	if s.gameOver {
		snap := s.last.clone()
		snap.Events = nil
		return snap
	}

	prevScore, prevDelay := s.econ.Score(), s.spawner.Delay()

	s.tick++
	s.events.Begin(s.tick)

	s.applyIntent(in.normalized())

	if bird, ok := s.spawner.Tick(s.rng); ok {
		s.birds = append(s.birds, bird)
		s.events.Push(event.GameEvent{Type: event.EventSpawn, Pos: bird.Pos()})
	}

	s.moveBirds()
	s.moveBullets()

	if s.tick%uint64(s.cfg.AnimationInterval) == 0 {
		s.animate()
	}

	s.birds = s.cull.Birds(s.birds, s.events)
	s.bullets = s.cull.Bullets(s.bullets)

	s.checkGameOver()

	if debugAssertions {
		if err := s.checkInvariants(prevScore, prevDelay); err != nil {
			panic(err)
		}
	}

	s.last = s.snapshot(s.events.Drain())
	return s.last.clone()
}

// Advance runs elapsed ticks, applying in on the first and Idle on the rest
// Events of every tick are merged into the returned snapshot
func (s *Session) Advance(in Intent, elapsed int) Snapshot {
	if elapsed < 1 {
		return s.last.clone()
	}
	var events []event.GameEvent
	var snap Snapshot
	for i := 0; i < elapsed; i++ {
		if i == 1 {
			in = Idle
		}
		snap = s.Tick(in)
		events = append(events, snap.Events...)
		if s.gameOver {
			break
		}
	}
	snap.Events = events
	return snap
}

func (s *Session) applyIntent(in Intent) {
	step := core.Point{X: in.MoveX * s.cfg.CrosshairSpeed, Y: in.MoveY * s.cfg.CrosshairSpeed}
	s.crosshair = s.field.ClampPoint(s.crosshair.Add(step))

	if !in.Fire {
		return
	}

	if !s.cfg.BulletsEnabled {
		s.combat.InstantShot(s.birds, s.crosshair, &s.econ, s.events)
		return
	}

	if b, ok := s.combat.FireBullet(s.anchor, s.crosshair, &s.econ, s.events); ok {
		s.bullets = append(s.bullets, b)
	}
}

func (s *Session) moveBirds() {
	for i := range s.birds {
		s.birds[i].Step()
	}
}

// moveBullets advances bullets in substeps, resolving hits after each substep
func (s *Session) moveBullets() {
	if len(s.bullets) == 0 {
		return
	}
	for step := 0; step < s.cfg.BulletSubsteps; step++ {
		for i := range s.bullets {
			b := &s.bullets[i]
			if b.OutOfBounds() {
				continue
			}
			b.UpdatePosition()
			b.CheckBounds(s.cfg.ScreenWidth, s.cfg.ScreenHeight)
		}
		s.bullets = s.combat.ResolveBullets(s.bullets, s.birds, &s.econ, s.events)
	}
}

func (s *Session) animate() {
	for i := range s.birds {
		s.birds[i].AdvanceFrame()
	}
}

func (s *Session) checkGameOver() {
	if !s.econ.Empty() || len(s.bullets) > 0 {
		return
	}
	s.gameOver = true
	s.events.Push(event.GameEvent{Type: event.EventGameOver, Pos: s.crosshair})
	s.log.LogAttrs(context.Background(), slog.LevelInfo, "game over",
		slog.String("session", s.id),
		slog.Uint64("tick", s.tick),
		slog.Int("score", s.econ.Score()),
	)
}

func (s *Session) snapshot(events []event.GameEvent) Snapshot {
	birds := make([]BirdView, len(s.birds))
	for i := range s.birds {
		b := &s.birds[i]
		birds[i] = BirdView{X: b.X(), Y: b.Y(), Frame: b.Frame(), Dead: b.Dead(), Direction: b.Direction()}
	}
	bullets := make([]BulletView, len(s.bullets))
	for i := range s.bullets {
		tr := s.bullets[i].Trail()
		bullets[i] = BulletView{Cur: tr.Cur, Prev: tr.Prev, OutOfBounds: s.bullets[i].OutOfBounds()}
	}

	theta := vmath.AimAngle(s.crosshair, s.anchor)

	return Snapshot{
		SessionID:      s.id,
		Tick:           s.tick,
		Width:          s.cfg.ScreenWidth,
		Height:         s.cfg.ScreenHeight,
		BirdWidth:      s.cfg.BirdWidth,
		BirdHeight:     s.cfg.BirdHeight,
		Birds:          birds,
		Bullets:        bullets,
		Crosshair:      s.crosshair,
		Anchor:         s.anchor,
		AimAngle:       theta,
		GunOffset:      vmath.GunOffset(theta, s.cfg.BarrelLength, s.cfg.BarrelStretch),
		Ammo:           s.econ.Ammo(),
		AmmoMax:        s.econ.AmmoMax(),
		Score:          s.econ.Score(),
		SpawnDelay:     s.spawner.Delay(),
		BulletsEnabled: s.cfg.BulletsEnabled,
		GameOver:       s.gameOver,
		Events:         events,
	}
}
