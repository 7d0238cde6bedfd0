package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/duck-hunt/audio"
	"github.com/lixenwraith/duck-hunt/constant"
	"github.com/lixenwraith/duck-hunt/engine"
	"github.com/lixenwraith/duck-hunt/event"
	"github.com/lixenwraith/duck-hunt/input"
	"github.com/lixenwraith/duck-hunt/render"
	"github.com/lixenwraith/duck-hunt/status"
)

// errQuit ends the game loop on a quit command
var errQuit = errors.New("quit")

// game wires the session to the terminal, keyboard and speaker
type game struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	input    *input.Handler
	sound    *audio.SoundManager
	tally    *status.Tally
	log      *slog.Logger

	interval time.Duration
	paused   bool
	snap     engine.Snapshot
}

func newGame(screen tcell.Screen, session *engine.Session, in *input.Handler, sound *audio.SoundManager, log *slog.Logger) *game {
	return &game{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(screen),
		input:    in,
		sound:    sound,
		tally:    status.NewTally(),
		log:      log,
		interval: session.Config().TickInterval,
		snap:     session.Snapshot(),
	}
}

// run drives the poller and the fixed-timestep loop until quit or ctx cancellation
func (g *game) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	eg.Go(func() error { return g.poll(ctx, events) })
	eg.Go(func() error { return g.loop(ctx, events) })

	err := eg.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// poll forwards terminal events; PollEvent blocks, so the loop posts an interrupt on exit
func (g *game) poll(ctx context.Context, out chan<- tcell.Event) error {
	defer g.recoverCrash("event poller")

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	defer g.recoverCrash("game loop")
	defer g.screen.PostEvent(tcell.NewEventInterrupt(nil))

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	last := time.Now()
	var carry time.Duration
	g.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.renderer.Resize()
			case *tcell.EventKey:
				if g.handleKey(ev) {
					return errQuit
				}
			}
			g.draw()

		case now := <-ticker.C:
			elapsed := now.Sub(last) + carry
			last = now
			if g.paused {
				carry = 0
				continue
			}

			ticks := int(elapsed / g.interval)
			carry = elapsed - time.Duration(ticks)*g.interval
			if ticks > constant.MaxCatchUpTicks {
				// Drop backlog after a stall rather than fast-forwarding
				g.log.Debug("tick backlog dropped", "ticks", ticks)
				ticks = constant.MaxCatchUpTicks
				carry = 0
			}
			if ticks == 0 {
				continue
			}

			g.step(ticks)
			g.draw()
		}
	}
}

// step advances the session and plays sounds for the resulting events
func (g *game) step(ticks int) {
	wasOver := g.snap.GameOver
	g.snap = g.session.Advance(g.input.Take(), ticks)
	if wasOver {
		return
	}
	g.sound.HandleEvents(g.snap.Events)
	g.tally.Record(g.snap.Events)
	g.logEvents(g.snap.Events)
	if g.snap.GameOver {
		g.tally.EndSession(g.snap.Score)
	}
}

// endSession records a session abandoned before game over
func (g *game) endSession() {
	if !g.snap.GameOver && g.snap.Tick > 0 {
		g.tally.EndSession(g.snap.Score)
	}
}

// handleKey applies launcher commands and reports whether to quit
func (g *game) handleKey(ev *tcell.EventKey) bool {
	switch g.input.Process(ev) {
	case input.ActionQuit:
		g.endSession()
		g.logSummary()
		return true
	case input.ActionPause:
		g.paused = !g.paused
		g.input.Clear()
		g.log.Debug("pause toggled", "paused", g.paused)
	case input.ActionReset:
		g.endSession()
		g.session.Reset()
		g.snap = g.session.Snapshot()
		g.paused = false
		g.input.Clear()
		g.log.Info("session reset", "session", g.session.ID())
	case input.ActionToggleMute:
		muted := g.sound.ToggleMute()
		g.log.Debug("mute toggled", "muted", muted)
	}
	return false
}

func (g *game) draw() {
	acc, hasAcc := g.tally.Accuracy()
	g.renderer.RenderFrame(&g.snap, render.Overlay{
		Paused:      g.paused,
		Muted:       g.sound.IsMuted(),
		BestScore:   g.tally.Best(),
		Accuracy:    acc,
		HasAccuracy: hasAcc,
	})
}

func (g *game) logSummary() {
	attrs := []slog.Attr{
		slog.Uint64("tick", g.snap.Tick),
		slog.Int("score", g.snap.Score),
	}
	g.tally.Range(func(key string, value int64) {
		attrs = append(attrs, slog.Int64(key, value))
	})
	g.log.LogAttrs(context.Background(), slog.LevelInfo, "run summary", attrs...)
}

func (g *game) logEvents(events []event.GameEvent) {
	if !g.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, ev := range events {
		g.log.Debug("game event",
			"type", ev.Type.String(),
			"tick", ev.Tick,
			"x", ev.Pos.X,
			"y", ev.Pos.Y,
		)
	}
}

// recoverCrash restores the terminal before reporting a panic
func (g *game) recoverCrash(where string) {
	if r := recover(); r != nil {
		g.screen.Fini()
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDUCK-HUNT %s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
