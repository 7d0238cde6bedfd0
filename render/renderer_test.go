package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/duck-hunt/component"
	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	gotW, gotH := screen.Size()
	require.Equal(t, w, gotW)
	require.Equal(t, h, gotH)
	return screen
}

func baseSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Width:      120,
		Height:     30,
		BirdWidth:  10,
		BirdHeight: 3,
		Crosshair:  core.Point{X: 60, Y: 15},
		Anchor:     core.Point{X: 60, Y: 29},
		GunOffset:  core.Point{X: 0, Y: -3},
		Ammo:       3,
		AmmoMax:    5,
		Score:      42,
	}
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteRune(runeAt(s, x, y))
	}
	return sb.String()
}

func TestRenderCrosshairAndGun(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()

	r.RenderFrame(&snap, Overlay{})

	assert.Equal(t, '+', runeAt(screen, 60, 15))
	assert.Equal(t, '▲', runeAt(screen, 60, 29))
	for y := 26; y <= 28; y++ {
		assert.Equal(t, '|', runeAt(screen, 60, y), "barrel row %d", y)
	}
	assert.Equal(t, '▁', runeAt(screen, 0, 29), "ground row")
}

func TestRenderBirdSprites(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()
	snap.Birds = []engine.BirdView{
		{X: 10, Y: 5, Frame: 0, Direction: component.DirRight},
		{X: 40, Y: 5, Frame: 0, Direction: component.DirLeft},
		{X: 70, Y: 5, Frame: component.FrameDead, Dead: true, Direction: component.DirRight},
	}

	r.RenderFrame(&snap, Overlay{})

	// Right-facing: head then beak
	assert.Equal(t, '(', runeAt(screen, 13, 6))
	assert.Equal(t, 'o', runeAt(screen, 14, 6))
	assert.Equal(t, '>', runeAt(screen, 16, 6))
	assert.Equal(t, '\\', runeAt(screen, 12, 5))

	// Left-facing is mirrored
	assert.Equal(t, '<', runeAt(screen, 43, 6))
	assert.Equal(t, 'o', runeAt(screen, 45, 6))

	// Dead frame
	assert.Equal(t, 'x', runeAt(screen, 73, 5))
	assert.Equal(t, '(', runeAt(screen, 73, 6))
	_, _, style, _ := screen.GetContent(73, 5)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbBirdDead, fg)
}

func TestRenderClipsPartialBird(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()
	snap.Birds = []engine.BirdView{{X: -4, Y: 5, Direction: component.DirRight}}

	require.NotPanics(t, func() { r.RenderFrame(&snap, Overlay{}) })
	assert.Equal(t, 'o', runeAt(screen, 0, 6))
	assert.Equal(t, ')', runeAt(screen, 1, 6))
}

func TestRenderBulletTrail(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()
	snap.BulletsEnabled = true
	snap.Bullets = []engine.BulletView{{
		Cur:  core.PointF{X: 30.5, Y: 10.2},
		Prev: core.PointF{X: 31.4, Y: 11.9},
	}}

	r.RenderFrame(&snap, Overlay{})

	assert.Equal(t, '•', runeAt(screen, 30, 10))
	assert.Equal(t, '·', runeAt(screen, 31, 11))
	assert.Contains(t, rowText(screen, 30, 120), "BULLETS")
}

func TestRenderStatusBar(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()

	r.RenderFrame(&snap, Overlay{Paused: true, Muted: true, BestScore: 30, Accuracy: 0.666, HasAccuracy: true})

	hud := rowText(screen, 30, 120)
	assert.Contains(t, hud, "BEST 00042", "live score beats a lower best")
	assert.Contains(t, hud, "ACC 67%")
	assert.Contains(t, hud, "AMMO ▮▮▮▯▯")
	assert.Contains(t, hud, "SCORE 00042")
	assert.Contains(t, hud, "INSTANT")
	assert.Contains(t, hud, "PAUSED")

	_, _, style, _ := screen.GetContent(1, 30)
	_, bg, _ := style.Decompose()
	assert.Equal(t, RgbMutedBg, bg)
}

func TestRenderGameOverBanner(t *testing.T) {
	screen := newTestScreen(t, 120, 31)
	r := NewRenderer(screen)
	snap := baseSnapshot()
	snap.Ammo = 0
	snap.GameOver = true

	r.RenderFrame(&snap, Overlay{})

	assert.Contains(t, rowText(screen, 15, 120), "GAME OVER  score 42")
}

func TestRenderCentersPlayfield(t *testing.T) {
	screen := newTestScreen(t, 140, 41)
	r := NewRenderer(screen)
	snap := baseSnapshot()

	r.RenderFrame(&snap, Overlay{})

	ox, oy := r.Origin()
	assert.Equal(t, 10, ox)
	assert.Equal(t, 5, oy)
	assert.Equal(t, '+', runeAt(screen, 70, 20))
}

func TestRenderSmallScreen(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	r := NewRenderer(screen)
	snap := baseSnapshot()
	snap.Birds = []engine.BirdView{{X: 100, Y: 20, Direction: component.DirLeft}}

	require.NotPanics(t, func() { r.RenderFrame(&snap, Overlay{}) })
	ox, oy := r.Origin()
	assert.Zero(t, ox)
	assert.Zero(t, oy)
}

func TestBarrelRune(t *testing.T) {
	tests := []struct {
		off  core.Point
		want rune
	}{
		{core.Point{X: 0, Y: -3}, '|'},
		{core.Point{X: 3, Y: 0}, '-'},
		{core.Point{X: -3, Y: -1}, '-'},
		{core.Point{X: -1, Y: -3}, '|'},
		{core.Point{X: -2, Y: -2}, '\\'},
		{core.Point{X: 2, Y: -2}, '/'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, barrelRune(tt.off), "offset %+v", tt.off)
	}
}
