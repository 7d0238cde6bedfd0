package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-hunt/core"
	"github.com/lixenwraith/duck-hunt/engine"
)

// Overlay carries launcher state that is not part of the simulation
type Overlay struct {
	Paused bool
	Muted  bool

	// Run statistics; Accuracy is ignored until HasAccuracy
	BestScore   int
	Accuracy    float64
	HasAccuracy bool
}

// Renderer draws session snapshots to a tcell screen
// The playfield is centered; the HUD occupies the row below it
type Renderer struct {
	screen  tcell.Screen
	originX int
	originY int
}

// NewRenderer creates a renderer bound to an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Resize resynchronizes the screen after a terminal size change
func (r *Renderer) Resize() {
	r.screen.Sync()
}

// Origin returns the screen cell of playfield (0,0) as of the last frame
func (r *Renderer) Origin() (int, int) {
	return r.originX, r.originY
}

// RenderFrame draws one complete frame and shows it
func (r *Renderer) RenderFrame(snap *engine.Snapshot, ov Overlay) {
	r.screen.Clear()
	r.layout(snap.Width, snap.Height+1)

	sky := tcell.StyleDefault.Background(RgbSky)

	r.drawSky(snap, sky)
	r.drawBirds(snap, sky)
	r.drawBullets(snap, sky)
	r.drawGun(snap, sky)
	r.drawCrosshair(snap, sky)
	r.drawStatusBar(snap, ov)
	if snap.GameOver {
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

func (r *Renderer) layout(w, h int) {
	sw, sh := r.screen.Size()
	r.originX = max(0, (sw-w)/2)
	r.originY = max(0, (sh-h)/2)
}

// setField writes a cell in playfield coordinates, clipped to the field
func (r *Renderer) setField(snap *engine.Snapshot, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= snap.Width || y < 0 || y >= snap.Height {
		return
	}
	r.screen.SetContent(r.originX+x, r.originY+y, ch, nil, style)
}

func (r *Renderer) drawSky(snap *engine.Snapshot, sky tcell.Style) {
	grass := sky.Foreground(RgbGrass)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			ch := ' '
			if y == snap.Height-1 {
				ch = '▁'
			}
			style := sky
			if ch != ' ' {
				style = grass
			}
			r.setField(snap, x, y, ch, style)
		}
	}
}

func (r *Renderer) drawBirds(snap *engine.Snapshot, sky tcell.Style) {
	body := sky.Foreground(RgbBirdBody)
	head := sky.Foreground(RgbBirdHead).Bold(true)
	dead := sky.Foreground(RgbBirdDead)

	for _, b := range snap.Birds {
		rows := birdSprite(b.Frame, b.Direction)
		for dy := 0; dy < snap.BirdHeight && dy < len(rows); dy++ {
			col := 0
			for _, ch := range rows[dy] {
				if col >= snap.BirdWidth {
					break
				}
				if ch != ' ' {
					style := body
					switch {
					case b.Dead:
						style = dead
					case ch == '(' || ch == ')' || ch == 'o':
						style = head
					}
					r.setField(snap, b.X+col, b.Y+dy, ch, style)
				}
				col++
			}
		}
	}
}

func (r *Renderer) drawBullets(snap *engine.Snapshot, sky tcell.Style) {
	trail := sky.Foreground(RgbTrail)
	head := sky.Foreground(RgbBullet).Bold(true)

	// Trails first so a head never hides under another bullet's trail
	for _, b := range snap.Bullets {
		p := b.Prev.Floor()
		r.setField(snap, p.X, p.Y, '·', trail)
	}
	for _, b := range snap.Bullets {
		p := b.Cur.Floor()
		r.setField(snap, p.X, p.Y, '•', head)
	}
}

func (r *Renderer) drawGun(snap *engine.Snapshot, sky tcell.Style) {
	style := sky.Foreground(RgbGun).Bold(true)
	r.setField(snap, snap.Anchor.X, snap.Anchor.Y, '▲', style)

	off := snap.GunOffset
	steps := max(abs(off.X), abs(off.Y))
	if steps == 0 {
		return
	}
	ch := barrelRune(off)
	for i := 1; i <= steps; i++ {
		p := snap.Anchor.Add(core.Point{X: off.X * i / steps, Y: off.Y * i / steps})
		r.setField(snap, p.X, p.Y, ch, style)
	}
}

// barrelRune picks the line glyph closest to the barrel's slope
func barrelRune(off core.Point) rune {
	switch {
	case off.X == 0:
		return '|'
	case off.Y == 0:
		return '-'
	case abs(off.X) >= 2*abs(off.Y):
		return '-'
	case abs(off.Y) >= 2*abs(off.X):
		return '|'
	case (off.X > 0) == (off.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

func (r *Renderer) drawCrosshair(snap *engine.Snapshot, sky tcell.Style) {
	style := sky.Foreground(RgbCrosshair).Bold(true)
	r.setField(snap, snap.Crosshair.X, snap.Crosshair.Y, '+', style)
}

func (r *Renderer) drawStatusBar(snap *engine.Snapshot, ov Overlay) {
	y := r.originY + snap.Height
	base := tcell.StyleDefault.Foreground(RgbHudText).Background(RgbHudBg)

	for x := 0; x < snap.Width; x++ {
		r.screen.SetContent(r.originX+x, y, ' ', nil, base)
	}

	x := r.originX
	put := func(s string, style tcell.Style) {
		for _, ch := range s {
			r.screen.SetContent(x, y, ch, nil, style)
			x++
		}
	}

	audioBg := RgbUnmutedBg
	if ov.Muted {
		audioBg = RgbMutedBg
	}
	put(" ♪ ", base.Foreground(tcell.ColorBlack).Background(audioBg))
	put(" AMMO ", base)
	for i := 0; i < snap.AmmoMax; i++ {
		if i < snap.Ammo {
			put("▮", base.Foreground(RgbAmmoFull))
		} else {
			put("▯", base.Foreground(RgbAmmoEmpty))
		}
	}
	put(fmt.Sprintf("  SCORE %05d", snap.Score), base)
	put(fmt.Sprintf("  BIRDS %d", snap.LiveBirds()), base)

	mode := "INSTANT"
	if snap.BulletsEnabled {
		mode = "BULLETS"
	}
	put("  "+mode, base)

	put(fmt.Sprintf("  BEST %05d", max(ov.BestScore, snap.Score)), base)
	if ov.HasAccuracy {
		put(fmt.Sprintf("  ACC %d%%", int(ov.Accuracy*100+0.5)), base)
	}

	if ov.Paused {
		put("  ", base)
		put(" PAUSED ", base.Foreground(tcell.ColorBlack).Background(RgbPausedBg))
	}
}

func (r *Renderer) drawGameOver(snap *engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(RgbHudText).Background(RgbGameOverBg).Bold(true)
	msg := fmt.Sprintf("  GAME OVER  score %d  [r] restart  [q] quit  ", snap.Score)

	runes := []rune(msg)
	x := (snap.Width - len(runes)) / 2
	y := snap.Height / 2
	for i, ch := range runes {
		r.setField(snap, x+i, y, ch, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
