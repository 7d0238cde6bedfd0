package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/duck-hunt/audio"
	"github.com/lixenwraith/duck-hunt/config"
	"github.com/lixenwraith/duck-hunt/engine"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/input"
)

func newTestGame(t *testing.T) (*game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 31)
	w, h := screen.Size()
	require.Equal(t, 120, w)
	require.Equal(t, 31, h)

	cfg := config.Default()
	cfg.TickInterval = time.Millisecond
	cfg.Seed = 7

	sound := audio.NewSoundManager(audio.NewAudioConfig(false, 0, 0))
	g := newGame(screen, engine.NewSession(cfg), input.NewHandler(nil), sound, slog.New(slog.DiscardHandler))
	return g, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGameCommands(t *testing.T) {
	g, _ := newTestGame(t)

	g.step(3)
	assert.Equal(t, uint64(3), g.snap.Tick)

	assert.False(t, g.handleKey(key('p')))
	assert.True(t, g.paused)

	assert.False(t, g.handleKey(key('m')))
	assert.True(t, g.sound.IsMuted())

	assert.False(t, g.handleKey(key('r')))
	assert.False(t, g.paused, "reset unpauses")
	assert.Zero(t, g.snap.Tick)
	assert.Equal(t, int64(1), g.tally.Sessions(), "abandoned session is tallied")

	assert.False(t, g.handleKey(key('r')))
	assert.Equal(t, int64(1), g.tally.Sessions(), "untouched session is not tallied")

	assert.True(t, g.handleKey(key('q')))
}

func TestGameStepConsumesIntent(t *testing.T) {
	g, _ := newTestGame(t)

	g.handleKey(key('f'))
	g.step(1)
	assert.True(t, g.snap.HasEvent(event.EventShot))
	assert.Equal(t, g.snap.AmmoMax-1, g.snap.Ammo)
	assert.Equal(t, int64(1), g.tally.Count(event.EventShot))

	g.step(1)
	assert.False(t, g.snap.HasEvent(event.EventShot), "fire is consumed by one step")
}

func TestGamePauseDropsLatchedInput(t *testing.T) {
	g, _ := newTestGame(t)

	g.handleKey(key('f'))
	g.handleKey(key('p'))
	assert.Equal(t, engine.Idle, g.input.Pending())
}

func TestGameRunQuit(t *testing.T) {
	g, screen := newTestGame(t)

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- g.run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not quit")
	}
	assert.True(t, g.paused)
}

func TestGameRunCancel(t *testing.T) {
	g, _ := newTestGame(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop on cancel")
	}
	assert.Positive(t, g.session.TickCount())
}

func TestGameOverTalliedOnce(t *testing.T) {
	g, _ := newTestGame(t)

	// Five misses empty the gun; instant mode ends the session immediately
	for i := 0; i < g.snap.AmmoMax; i++ {
		g.handleKey(key('f'))
		g.step(1)
	}
	require.True(t, g.snap.GameOver)
	g.step(1)
	g.endSession()

	assert.Equal(t, int64(1), g.tally.Sessions())
	assert.Equal(t, int64(1), g.tally.Count(event.EventGameOver))
}
